package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rioatrato/transchoco/internal/pkg/config"
	"github.com/rioatrato/transchoco/internal/pkg/database"
	"github.com/rioatrato/transchoco/internal/pkg/health"
	"github.com/rioatrato/transchoco/internal/pkg/logger"
	"github.com/rioatrato/transchoco/internal/pkg/middleware"
	nsqpkg "github.com/rioatrato/transchoco/internal/pkg/nsq"

	catalogHandler "github.com/rioatrato/transchoco/services/catalog/handler"
	catalogHTTP "github.com/rioatrato/transchoco/services/catalog/handler/http"
	catalogRepository "github.com/rioatrato/transchoco/services/catalog/repository"
	catalogUsecase "github.com/rioatrato/transchoco/services/catalog/usecase"
	requestGateway "github.com/rioatrato/transchoco/services/requests/gateway"
	requestHandler "github.com/rioatrato/transchoco/services/requests/handler"
	requestHTTP "github.com/rioatrato/transchoco/services/requests/handler/http"
	requestRepository "github.com/rioatrato/transchoco/services/requests/repository"
	requestUsecase "github.com/rioatrato/transchoco/services/requests/usecase"
	reservationGateway "github.com/rioatrato/transchoco/services/reservations/gateway"
	reservationHandler "github.com/rioatrato/transchoco/services/reservations/handler"
	reservationHTTP "github.com/rioatrato/transchoco/services/reservations/handler/http"
	reservationRepository "github.com/rioatrato/transchoco/services/reservations/repository"
	reservationUsecase "github.com/rioatrato/transchoco/services/reservations/usecase"
	supportGateway "github.com/rioatrato/transchoco/services/support/gateway"
	supportHandler "github.com/rioatrato/transchoco/services/support/handler"
	supportHTTP "github.com/rioatrato/transchoco/services/support/handler/http"
	supportRepository "github.com/rioatrato/transchoco/services/support/repository"
	supportUsecase "github.com/rioatrato/transchoco/services/support/usecase"
	userGateway "github.com/rioatrato/transchoco/services/users/gateway"
	userHandler "github.com/rioatrato/transchoco/services/users/handler"
	userHTTP "github.com/rioatrato/transchoco/services/users/handler/http"
	userRepository "github.com/rioatrato/transchoco/services/users/repository"
	userUsecase "github.com/rioatrato/transchoco/services/users/usecase"
)

func main() {
	appName := "transchoco-api"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/api.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", logger.ErrorField(err))
		os.Exit(1)
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Error("Failed to connect to Redis", logger.ErrorField(err))
		os.Exit(1)
	}
	defer redisClient.Close()

	// The NSQ producer powers the notification pipeline. Publishing is
	// best effort, so the API runs fine without it.
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Error("Failed to connect to NSQ", logger.ErrorField(err))
			os.Exit(1)
		}
		defer producer.Stop()
	} else {
		logger.Warn("NSQ disabled, events will not be published")
	}

	db := postgresClient.GetDB()

	// users
	userRepo := userRepository.NewUserRepo(configs, db, redisClient)
	userGW := userGateway.NewUserGW(producer)
	userUC := userUsecase.NewUserUC(userRepo, userGW, configs)
	usersHandler := userHandler.NewHandler(
		userHTTP.NewAuthHandler(userUC),
		userHTTP.NewUserHandler(userUC),
		userHTTP.NewDriverHandler(userUC),
		configs,
		userRepo,
	)

	// service requests
	requestRepo := requestRepository.NewRequestRepo(configs, db)
	requestGW := requestGateway.NewRequestGW(producer)
	requestUC := requestUsecase.NewRequestUC(requestRepo, requestGW, configs)
	requestsHandler := requestHandler.NewHandler(
		requestHTTP.NewRequestHandler(requestUC),
		configs,
		userRepo,
	)

	// route and schedule catalog
	catalogRepo := catalogRepository.NewCatalogRepo(configs, db)
	catalogUC := catalogUsecase.NewCatalogUC(catalogRepo, configs)
	catalogsHandler := catalogHandler.NewHandler(
		catalogHTTP.NewCatalogHandler(catalogUC),
		configs,
		userRepo,
	)

	// seat reservations
	reservationRepo := reservationRepository.NewReservationRepo(configs, db)
	reservationGW := reservationGateway.NewReservationGW(producer)
	reservationUC := reservationUsecase.NewReservationUC(reservationRepo, reservationGW, configs)
	reservationsHandler := reservationHandler.NewHandler(
		reservationHTTP.NewReservationHandler(reservationUC),
		configs,
		userRepo,
	)

	// support conversations
	supportRepo := supportRepository.NewSupportRepo(configs, db)
	supportGW := supportGateway.NewSupportGW(producer)
	supportUC := supportUsecase.NewSupportUC(supportRepo, supportGW, configs)
	supportsHandler := supportHandler.NewHandler(
		supportHTTP.NewSupportHandler(supportUC),
		configs,
		userRepo,
	)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, appName)

	usersHandler.RegisterRoutes(e)
	requestsHandler.RegisterRoutes(e)
	catalogsHandler.RegisterRoutes(e)
	reservationsHandler.RegisterRoutes(e)
	supportsHandler.RegisterRoutes(e)

	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port))

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		logger.Error("Server stopped", logger.ErrorField(err))
		os.Exit(1)
	}
}
