package models

import (
	"time"
)

// User roles
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

// Driver approval states
const (
	DriverStatusPending   = "pending"
	DriverStatusApproved  = "approved"
	DriverStatusRejected  = "rejected"
	DriverStatusSuspended = "suspended"
)

// User represents an account in the system (passenger, driver or admin)
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	NationalID   string    `json:"national_id" db:"national_id"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	DriverInfo   *Driver   `json:"driver_info,omitempty" db:"-"`
}

// FullName returns the display name used in request listings.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Driver represents the 1:1 extension of a user with role=driver
type Driver struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	LicenseNumber   string    `json:"license_number" db:"license_number"`
	LicenseCategory string    `json:"license_category" db:"license_category"`
	LicenseExpiry   time.Time `json:"license_expiry" db:"license_expiry"`
	YearsExperience int       `json:"years_experience" db:"years_experience"`
	OwnsVehicle     bool      `json:"owns_vehicle" db:"owns_vehicle"`
	Available       bool      `json:"available" db:"available"`
	Rating          float64   `json:"rating" db:"rating"`
	CompletedTrips  int       `json:"completed_trips" db:"completed_trips"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	NationalID      string `json:"national_id"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`

	// Driver-only fields
	LicenseNumber   string `json:"license_number,omitempty"`
	LicenseCategory string `json:"license_category,omitempty"`
	LicenseExpiry   string `json:"license_expiry,omitempty"`
	YearsExperience int    `json:"years_experience,omitempty"`
	OwnsVehicle     bool   `json:"owns_vehicle,omitempty"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	User      UserBrief `json:"user"`
}

// UserBrief is the session-facing summary of a user
type UserBrief struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
