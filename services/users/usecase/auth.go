package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	jwtpkg "github.com/rioatrato/transchoco/internal/pkg/jwt"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/internal/utils"
)

// Register validates the payload, hashes the password and persists the
// account (plus driver profile for driver registrations).
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)
	nationalID := utils.SanitizeString(req.NationalID)

	exists, err := u.userRepo.IdentityExists(ctx, email, nationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check identity: %w", err)
	}
	if exists {
		return nil, apperr.ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    utils.SanitizeString(req.FirstName),
		LastName:     utils.SanitizeString(req.LastName),
		Email:        email,
		Phone:        utils.SanitizeString(req.Phone),
		NationalID:   nationalID,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	var driver *models.Driver
	if req.Role == models.RoleDriver {
		expiry, err := time.Parse("2006-01-02", req.LicenseExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: license_expiry must be YYYY-MM-DD", apperr.ErrValidation)
		}
		driver = &models.Driver{
			LicenseNumber:   utils.SanitizeString(req.LicenseNumber),
			LicenseCategory: utils.SanitizeString(req.LicenseCategory),
			LicenseExpiry:   expiry,
			YearsExperience: req.YearsExperience,
			OwnsVehicle:     req.OwnsVehicle,
		}
	}

	if err := u.userRepo.CreateUser(ctx, user, driver); err != nil {
		return nil, err
	}

	if err := u.userGW.PublishUserRegistered(ctx, user); err != nil {
		logger.Warn("failed to publish registration event",
			logger.ErrorField(err),
			logger.Int64("user_id", user.ID))
	}

	return user, nil
}

// Login checks the credentials, mints a token and records the server-side
// session.
func (u *UserUC) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, jti, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	ttl := time.Duration(u.cfg.JWT.Expiration) * time.Minute
	if err := u.userRepo.CreateSession(ctx, user.ID, jti, ttl); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: models.UserBrief{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
		},
	}, nil
}

// Logout revokes the caller's session.
func (u *UserUC) Logout(ctx context.Context, userID int64) error {
	return u.userRepo.DeleteSession(ctx, userID)
}

func validateRegistration(req *models.RegisterRequest) error {
	required := map[string]string{
		"first_name":  req.FirstName,
		"last_name":   req.LastName,
		"email":       req.Email,
		"phone":       req.Phone,
		"national_id": req.NationalID,
		"password":    req.Password,
		"role":        req.Role,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: field %s is required", apperr.ErrValidation, field)
		}
	}

	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	}

	if !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", apperr.ErrValidation)
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return fmt.Errorf("%w: %s", apperr.ErrValidation, msg)
	}

	if req.Role != models.RolePassenger && req.Role != models.RoleDriver {
		return fmt.Errorf("%w: invalid role", apperr.ErrValidation)
	}

	if req.Role == models.RoleDriver {
		driverRequired := map[string]string{
			"license_number":   req.LicenseNumber,
			"license_category": req.LicenseCategory,
			"license_expiry":   req.LicenseExpiry,
		}
		for field, value := range driverRequired {
			if value == "" {
				return fmt.Errorf("%w: field %s is required for drivers", apperr.ErrValidation, field)
			}
		}
		if req.YearsExperience < 0 {
			return fmt.Errorf("%w: years_experience must not be negative", apperr.ErrValidation)
		}
	}

	return nil
}
