package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// ListVehicles returns the whole fleet ordered by plate.
func (r *CatalogRepo) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	query := `
		SELECT id, plate, vehicle_type, capacity, brand, model, year, created_at
		FROM vehicles
		ORDER BY plate
	`
	vehicles := []*models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// GetVehicleByID retrieves one fleet entry.
func (r *CatalogRepo) GetVehicleByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := `
		SELECT id, plate, vehicle_type, capacity, brand, model, year, created_at
		FROM vehicles
		WHERE id = $1
	`
	var vehicle models.Vehicle
	if err := r.db.GetContext(ctx, &vehicle, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// PlateExists reports whether the plate is already registered.
func (r *CatalogRepo) PlateExists(ctx context.Context, plate string) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM vehicles WHERE plate = $1`, plate).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check plate: %w", err)
	}
	return true, nil
}

// CreateVehicle inserts a new fleet entry.
func (r *CatalogRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.CreatedAt = time.Now()

	query := `
		INSERT INTO vehicles (plate, vehicle_type, capacity, brand, model, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		vehicle.Plate,
		vehicle.VehicleType,
		vehicle.Capacity,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Year,
		vehicle.CreatedAt,
	).Scan(&vehicle.ID)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}
	return nil
}
