package catalog

import (
	"context"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rioatrato/transchoco/services/catalog CatalogUC

// CatalogUC represents the catalog usecase interface
type CatalogUC interface {
	ListRoutes(ctx context.Context) ([]*models.Route, error)
	CreateRoute(ctx context.Context, payload *models.CreateRoutePayload) (*models.Route, error)
	UpdateRoute(ctx context.Context, routeID int64, payload *models.UpdateRoutePayload) error

	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	CreateVehicle(ctx context.Context, payload *models.CreateVehiclePayload) (*models.Vehicle, error)

	SearchSchedules(ctx context.Context, routeID int64, date string) ([]*models.Schedule, error)
	CreateSchedule(ctx context.Context, payload *models.CreateSchedulePayload) (*models.Schedule, error)
	UpdateScheduleStatus(ctx context.Context, scheduleID int64, status string) error
}
