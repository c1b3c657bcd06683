package catalog

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rioatrato/transchoco/services/catalog CatalogRepo

// CatalogRepo represents the catalog repository interface
type CatalogRepo interface {
	ListActiveRoutes(ctx context.Context) ([]*models.Route, error)
	GetRouteByID(ctx context.Context, id int64) (*models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	UpdateRoute(ctx context.Context, routeID int64, payload *models.UpdateRoutePayload) error

	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error)
	PlateExists(ctx context.Context, plate string) (bool, error)
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error

	SearchSchedules(ctx context.Context, routeID int64, date string) ([]*models.Schedule, error)
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	UpdateScheduleStatus(ctx context.Context, scheduleID int64, status string) error
}
