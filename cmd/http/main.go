package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"

	"schedboard-service/internal/app/config"
	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/delivery/http/middlewares"
	"schedboard-service/internal/app/delivery/http/routers"
	"schedboard-service/internal/app/drivers/database"
	"schedboard-service/internal/app/drivers/logger"
	"schedboard-service/internal/app/drivers/messaging"
	"schedboard-service/internal/app/services/core/bookings"
	"schedboard-service/internal/app/services/core/cancellations"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/leaves"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/teachers"
	"schedboard-service/internal/app/services/core/weekdata"
	"schedboard-service/internal/app/services/shared/notifications"
	"schedboard-service/internal/app/services/shared/redis"
	upstreambookings "schedboard-service/internal/app/services/upstream/bookings"
	upstreamcancellations "schedboard-service/internal/app/services/upstream/cancellations"
	upstreamleaves "schedboard-service/internal/app/services/upstream/leaves"
	"schedboard-service/internal/app/services/upstream/summary"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	log := logger.NewLogrusLogger(internalConfig)

	redisClient := database.NewRedisClient(driverConfig)

	var rabbitMQConn *amqp091.Connection
	if internalConfig.Notifications.Enabled {
		rabbitMQConn = messaging.NewRabbitMQ(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

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
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Notifications
	var publisher *notifications.Publisher
	if bootstrap.InternalConfig.Notifications.Enabled {
		var err error
		publisher, err = notifications.NewPublisher(
			bootstrap.RabbitMQ,
			bootstrap.Logger,
			bootstrap.InternalConfig.Notifications.QueueName,
		)
		if err != nil {
			panic(err)
		}
	}

	// Upstream clients
	upstreamTimeout := time.Duration(bootstrap.InternalConfig.Upstream.TimeoutInSeconds) * time.Second
	summaryClient := summary.NewSummaryApiClient(
		bootstrap.InternalConfig.Upstream.BaseUrl,
		upstreamTimeout,
		bootstrap.InternalConfig.Upstream.RateLimitRPS,
		bootstrap.Logger,
	)
	bookingClient := upstreambookings.NewBookingApiClient(
		bootstrap.InternalConfig.Upstream.BaseUrl,
		upstreamTimeout,
		bootstrap.InternalConfig.Upstream.RateLimitRPS,
		bootstrap.Logger,
	)
	cancellationClient := upstreamcancellations.NewCancellationApiClient(
		bootstrap.InternalConfig.Upstream.BaseUrl,
		upstreamTimeout,
		bootstrap.InternalConfig.Upstream.RateLimitRPS,
		bootstrap.Logger,
	)
	leaveClient := upstreamleaves.NewLeaveApiClient(
		bootstrap.InternalConfig.Upstream.BaseUrl,
		upstreamTimeout,
		bootstrap.InternalConfig.Upstream.RateLimitRPS,
		bootstrap.Logger,
	)

	// Slot resolution
	granularity := grid.GranularityHourly
	if grid.Granularity(bootstrap.InternalConfig.App.GridGranularity) == grid.GranularityHalfHourly {
		granularity = grid.GranularityHalfHourly
	}
	teacherDirectory := teachers.NewDirectory()
	studentDirectory := teachers.NewStudentDirectory()
	scheduleStore := slots.NewScheduleStore(granularity)
	resolver := slots.NewResolver(scheduleStore, teacherDirectory)
	registry := weekdata.NewStatusRegistry()

	// Week data
	weekDataUsecase := weekdata.NewWeekDataUsecase(
		summaryClient,
		redisRepository,
		resolver,
		teacherDirectory,
		studentDirectory,
		registry,
		bootstrap.Logger,
		time.Duration(bootstrap.InternalConfig.Cache.WeekSummaryTTLInSeconds)*time.Second,
	)
	weekDataController := weekdata.NewWeekDataController(bootstrap.Logger, weekDataUsecase)

	// Bookings
	draftManager := bookings.NewDraftManager()
	bookingUsecase := bookings.NewBookingUsecase(
		draftManager,
		studentDirectory,
		bookingClient,
		publisherOrNil(publisher),
		scheduleStore,
		registry,
		bootstrap.Logger,
		bootstrap.InternalConfig.Booking.PlatformCredentials,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Cancellations
	cancellationUsecase := cancellations.NewCancellationUsecase(
		cancellationClient,
		publisherOrNil(publisher),
		scheduleStore,
		registry,
		bootstrap.Logger,
	)
	cancellationController := cancellations.NewCancellationController(bootstrap.Logger, cancellationUsecase)

	// Leaves
	leaveUsecase := leaves.NewLeaveUsecase(
		leaveClient,
		publisherOrNil(publisher),
		registry,
		bootstrap.Logger,
	)
	leaveController := leaves.NewLeaveController(bootstrap.Logger, leaveUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		weekDataController,
		bookingController,
		cancellationController,
		leaveController,
	)
}

// publisherOrNil keeps a disabled publisher a nil interface instead of a
// typed nil, so the usecases' nil checks stay honest.
func publisherOrNil(publisher *notifications.Publisher) contracts.NotificationPublisher {
	if publisher == nil {
		return nil
	}
	return publisher
}
