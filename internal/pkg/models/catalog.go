package models

import (
	"database/sql"
	"time"
)

// Route categories
const (
	RouteTypeUrban     = "urban"
	RouteTypeIntercity = "intercity"
	RouteTypeRural     = "rural"
)

// Schedule entry lifecycle
const (
	ScheduleStatusScheduled  = "scheduled"
	ScheduleStatusInProgress = "in_progress"
	ScheduleStatusCompleted  = "completed"
	ScheduleStatusCancelled  = "cancelled"
)

// Route is a static origin/destination pair curated by administrators.
type Route struct {
	ID            int64     `json:"id" db:"id"`
	Origin        string    `json:"origin" db:"origin"`
	Destination   string    `json:"destination" db:"destination"`
	DistanceKm    float64   `json:"distance_km" db:"distance_km"`
	DurationHours float64   `json:"duration_hours" db:"duration_hours"`
	BasePrice     int64     `json:"base_price" db:"base_price"`
	RouteType     string    `json:"route_type" db:"route_type"`
	Description   string    `json:"description" db:"description"`
	Active        bool      `json:"active" db:"active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Vehicle is a static fleet entry.
type Vehicle struct {
	ID          int64         `json:"id" db:"id"`
	Plate       string        `json:"plate" db:"plate"`
	VehicleType string        `json:"vehicle_type" db:"vehicle_type"`
	Capacity    int           `json:"capacity" db:"capacity"`
	Brand       string        `json:"brand" db:"brand"`
	Model       string        `json:"model" db:"model"`
	Year        sql.NullInt64 `json:"-" db:"year"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// Schedule is a departure of one vehicle on one route at a timestamp,
// carrying the mutable remaining-seats counter.
type Schedule struct {
	ID             int64     `json:"id" db:"id"`
	RouteID        int64     `json:"route_id" db:"route_id"`
	VehicleID      int64     `json:"vehicle_id" db:"vehicle_id"`
	DepartureAt    time.Time `json:"departure_at" db:"departure_at"`
	ArrivalAt      time.Time `json:"arrival_at" db:"arrival_at"`
	Price          int64     `json:"price" db:"price"`
	SeatsAvailable int       `json:"seats_available" db:"seats_available"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// Joined fields for schedule search
	Plate         string  `json:"plate,omitempty" db:"plate"`
	VehicleType   string  `json:"vehicle_type,omitempty" db:"vehicle_type"`
	Brand         string  `json:"brand,omitempty" db:"brand"`
	Model         string  `json:"model,omitempty" db:"model"`
	Origin        string  `json:"origin,omitempty" db:"origin"`
	Destination   string  `json:"destination,omitempty" db:"destination"`
	DurationHours float64 `json:"duration_hours,omitempty" db:"duration_hours"`
}

// CreateRoutePayload is the admin body for POST /admin/routes
type CreateRoutePayload struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
	BasePrice     int64   `json:"base_price"`
	RouteType     string  `json:"route_type"`
	Description   string  `json:"description"`
}

// UpdateRoutePayload is the admin body for PUT /admin/routes/:id. Nil
// fields are left unchanged.
type UpdateRoutePayload struct {
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	BasePrice     *int64   `json:"base_price,omitempty"`
	RouteType     *string  `json:"route_type,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

// CreateVehiclePayload is the admin body for POST /admin/vehicles
type CreateVehiclePayload struct {
	Plate       string `json:"plate"`
	VehicleType string `json:"vehicle_type"`
	Capacity    int    `json:"capacity"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
}

// CreateSchedulePayload is the admin body for POST /admin/schedules
type CreateSchedulePayload struct {
	RouteID     int64     `json:"route_id"`
	VehicleID   int64     `json:"vehicle_id"`
	DepartureAt time.Time `json:"departure_at"`
	ArrivalAt   time.Time `json:"arrival_at"`
	Price       int64     `json:"price"`
	// Optional; defaults to the vehicle capacity when zero.
	SeatsAvailable int `json:"seats_available"`
}
