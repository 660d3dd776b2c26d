package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinidash-core/internal/app/config"
	"clinidash-core/internal/app/delivery/http/controllers"
	"clinidash-core/internal/app/delivery/http/middlewares"
	"clinidash-core/internal/app/delivery/http/routers"
	"clinidash-core/internal/app/drivers/database"
	"clinidash-core/internal/app/drivers/logger"
	"clinidash-core/internal/app/drivers/messaging"
	"clinidash-core/internal/app/services/gateway"
	"clinidash-core/internal/app/services/modals"
	"clinidash-core/internal/app/services/patients"
	"clinidash-core/internal/app/services/plans"
	"clinidash-core/internal/app/services/records"
	"clinidash-core/internal/app/services/session"
	sharedEvents "clinidash-core/internal/app/services/shared/events"
	sharedRedis "clinidash-core/internal/app/services/shared/redis"
	"clinidash-core/internal/app/services/toasts"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err := bootstrapingTheApp(&bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	// Gateway
	apiGateway := gateway.NewAPIGateway(bootstrap.InternalConfig, bootstrap.Logger)

	// Session events
	sessionEventPublisher, err := sharedEvents.NewSessionEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Events.SessionQueue,
		uuid.New().String(),
	)
	if err != nil {
		return err
	}

	// Session
	sessionStore := session.NewSessionStore(
		redisRepository,
		apiGateway,
		sessionEventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		func(route string) {
			bootstrap.Logger.Info("navigating rendering layer", zap.String("route", route))
		},
	)
	apiGateway.SetUnauthorizedHandler(func() {
		sessionStore.ForceLogout("session expired")
	})

	stopWatch, err := sessionStore.StartWatch(context.Background())
	if err != nil {
		return err
	}
	bootstrap.SessionWatchStop = stopWatch

	// Toasts
	toastNotifier := toasts.NewToastNotifier(bootstrap.Logger)

	// Modals
	modalRegistry := modals.NewModalRegistry(bootstrap.InternalConfig, bootstrap.Logger)

	// Domain services
	patientService := patients.NewPatientService(apiGateway, bootstrap.Logger)
	planService := plans.NewPlanService(apiGateway, bootstrap.Logger)
	recordService := records.NewRecordService(apiGateway, bootstrap.Logger)

	// Controllers
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionStore, toastNotifier, bootstrap.InternalConfig)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientService, toastNotifier, bootstrap.InternalConfig)
	planController := controllers.NewPlanController(bootstrap.Logger, planService, toastNotifier, bootstrap.InternalConfig)
	recordController := controllers.NewRecordController(bootstrap.Logger, recordService, toastNotifier, bootstrap.InternalConfig)
	modalController := controllers.NewModalController(bootstrap.Logger, modalRegistry)
	toastController := controllers.NewToastController(bootstrap.Logger, toastNotifier, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		sessionController,
		patientController,
		planController,
		recordController,
		modalController,
		toastController,
	)
	return nil
}
