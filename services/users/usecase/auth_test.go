package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperr "github.com/rioatrato/transchoco/internal/pkg/errors"
	"github.com/rioatrato/transchoco/internal/pkg/models"
	"github.com/rioatrato/transchoco/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 60,
			Issuer:     "transchoco-test",
		},
	}
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName:       "Maria",
		LastName:        "Mosquera",
		Email:           "Maria.Mosquera@example.com",
		Phone:           "+573001234567",
		NationalID:      "1077000001",
		Password:        "clave1234",
		ConfirmPassword: "clave1234",
		Role:            models.RolePassenger,
	}
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	req := validRegisterRequest()

	mockRepo.EXPECT().
		IdentityExists(gomock.Any(), "maria.mosquera@example.com", "1077000001").
		Return(false, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, user *models.User, _ *models.Driver) error {
			user.ID = 42
			return nil
		})
	mockGW.EXPECT().
		PublishUserRegistered(gomock.Any(), gomock.Any()).
		Return(nil)

	user, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "maria.mosquera@example.com", user.Email)
	assert.Equal(t, models.RolePassenger, user.Role)

	// stored hash must verify against the original password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave1234")))
}

func TestRegister_DriverCreatesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	req := validRegisterRequest()
	req.Role = models.RoleDriver
	req.LicenseNumber = "COL-998877"
	req.LicenseCategory = "C2"
	req.LicenseExpiry = "2027-06-30"
	req.YearsExperience = 5
	req.OwnsVehicle = true

	mockRepo.EXPECT().
		IdentityExists(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User, driver *models.Driver) error {
			require.NotNil(t, driver)
			assert.Equal(t, "COL-998877", driver.LicenseNumber)
			assert.Equal(t, 5, driver.YearsExperience)
			assert.Equal(t, time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC), driver.LicenseExpiry)
			user.ID = 7
			return nil
		})
	mockGW.EXPECT().
		PublishUserRegistered(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		IdentityExists(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := uc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, apperr.ErrDuplicateIdentity)
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"missing email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"bad email format", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"password too short", func(r *models.RegisterRequest) { r.Password = "ab1"; r.ConfirmPassword = "ab1" }},
		{"password no digit", func(r *models.RegisterRequest) { r.Password = "soloLetras"; r.ConfirmPassword = "soloLetras" }},
		{"password no letter", func(r *models.RegisterRequest) { r.Password = "12345678"; r.ConfirmPassword = "12345678" }},
		{"password mismatch", func(r *models.RegisterRequest) { r.ConfirmPassword = "otra1234" }},
		{"invalid role", func(r *models.RegisterRequest) { r.Role = "dispatcher" }},
		{"admin role rejected", func(r *models.RegisterRequest) { r.Role = models.RoleAdmin }},
		{"driver missing license", func(r *models.RegisterRequest) { r.Role = models.RoleDriver }},
		{"driver bad expiry", func(r *models.RegisterRequest) {
			r.Role = models.RoleDriver
			r.LicenseNumber = "L-1"
			r.LicenseCategory = "B1"
			r.LicenseExpiry = "30/06/2027"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockUserRepo(ctrl)
			mockGW := mocks.NewMockUserGW(ctrl)
			uc := NewUserUC(mockRepo, mockGW, testConfig())

			// the expiry format check happens after the identity check
			mockRepo.EXPECT().
				IdentityExists(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(false, nil).
				AnyTimes()

			req := validRegisterRequest()
			tt.mutate(req)

			_, err := uc.Register(context.Background(), req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestRegister_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		IdentityExists(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil)
	mockGW.EXPECT().
		PublishUserRegistered(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	_, err := uc.Register(context.Background(), validRegisterRequest())
	assert.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("clave1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           42,
		FirstName:    "Maria",
		LastName:     "Mosquera",
		Email:        "maria.mosquera@example.com",
		PasswordHash: string(hash),
		Role:         models.RolePassenger,
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "maria.mosquera@example.com").
		Return(user, nil)
	mockRepo.EXPECT().
		CreateSession(gomock.Any(), int64(42), gomock.Any(), 60*time.Minute).
		Return(nil)

	auth, err := uc.Login(context.Background(), "Maria.Mosquera@example.com", "clave1234")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())
	assert.Equal(t, int64(42), auth.User.ID)
	assert.Equal(t, models.RolePassenger, auth.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("clave1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "maria.mosquera@example.com").
		Return(&models.User{ID: 42, PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), "maria.mosquera@example.com", "equivocada9")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nadie@example.com").
		Return(nil, apperr.ErrNotFound)

	_, err := uc.Login(context.Background(), "nadie@example.com", "clave1234")
	// an unknown email must not be distinguishable from a bad password
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewUserUC(mocks.NewMockUserRepo(ctrl), mocks.NewMockUserGW(ctrl), testConfig())

	_, err := uc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(mockRepo, mocks.NewMockUserGW(ctrl), testConfig())

	mockRepo.EXPECT().DeleteSession(gomock.Any(), int64(42)).Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), 42))
}
