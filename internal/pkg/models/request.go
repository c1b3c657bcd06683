package models

import (
	"database/sql"
	"time"
)

// Service request lifecycle
const (
	RequestStatusPending    = "pending"
	RequestStatusAccepted   = "accepted"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// Vehicle types shared by the fleet and the request board
const (
	VehicleTypeMotorcycle = "motorcycle"
	VehicleTypeCar        = "car"
	VehicleTypeBus        = "bus"
	VehicleType4x4        = "4x4"
)

// ValidVehicleType reports whether t is one of the accepted fleet types.
func ValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeMotorcycle, VehicleTypeCar, VehicleTypeBus, VehicleType4x4:
		return true
	}
	return false
}

// ServiceRequest is a passenger's ad-hoc ride ask, fulfilled by a driver
// through voluntary acceptance.
type ServiceRequest struct {
	ID             int64           `json:"id" db:"id"`
	Code           string          `json:"code" db:"code"`
	PassengerID    int64           `json:"passenger_id" db:"passenger_id"`
	DriverID       sql.NullInt64   `json:"-" db:"driver_id"`
	VehicleType    string          `json:"vehicle_type" db:"vehicle_type"`
	Origin         string          `json:"origin" db:"origin"`
	Destination    string          `json:"destination" db:"destination"`
	OriginLat      sql.NullFloat64 `json:"-" db:"origin_lat"`
	OriginLng      sql.NullFloat64 `json:"-" db:"origin_lng"`
	OriginZone     sql.NullString  `json:"-" db:"origin_zone"`
	ServiceDate    string          `json:"service_date" db:"service_date"`
	ServiceTime    string          `json:"service_time" db:"service_time"`
	PassengerCount int             `json:"passenger_count" db:"passenger_count"`
	ContactPhone   string          `json:"contact_phone" db:"contact_phone"`
	Notes          string          `json:"notes" db:"notes"`
	EstimatedPrice int64           `json:"estimated_price" db:"estimated_price"`
	FinalPrice     sql.NullInt64   `json:"-" db:"final_price"`
	Status         string          `json:"status" db:"status"`
	RequestedAt    time.Time       `json:"requested_at" db:"requested_at"`
	AcceptedAt     sql.NullTime    `json:"-" db:"accepted_at"`

	// Joined contact info, populated by listing queries
	PassengerName  string `json:"passenger_name,omitempty" db:"passenger_name"`
	PassengerPhone string `json:"passenger_phone,omitempty" db:"passenger_phone"`
	DriverName     string `json:"driver_name,omitempty" db:"driver_name"`
	DriverPhone    string `json:"driver_phone,omitempty" db:"driver_phone"`
}

// CreateRequestPayload is the body for POST /requests
type CreateRequestPayload struct {
	VehicleType    string   `json:"vehicle_type"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	OriginLat      *float64 `json:"origin_lat,omitempty"`
	OriginLng      *float64 `json:"origin_lng,omitempty"`
	ServiceDate    string   `json:"service_date"`
	ServiceTime    string   `json:"service_time"`
	PassengerCount int      `json:"passenger_count"`
	ContactPhone   string   `json:"contact_phone"`
	Notes          string   `json:"notes"`
	EstimatedPrice int64    `json:"estimated_price"`
}

// AcceptRequestPayload is the body for POST /requests/:id/accept
type AcceptRequestPayload struct {
	FinalPrice int64 `json:"final_price"`
}
