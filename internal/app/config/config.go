package config

import (
	"schedboard-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			GridGranularity:           utils.GetEnvString("APP_GRID_GRANULARITY", "hour"),
		},
		Upstream: Upstream{
			BaseUrl:          utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:9090"),
			TimeoutInSeconds: utils.GetEnvInt("UPSTREAM_TIMEOUT_IN_SECONDS", 30),
			RateLimitRPS:     utils.GetEnvInt("UPSTREAM_RATE_LIMIT_RPS", 5),
		},
		Booking: Booking{
			PlatformCredentials: utils.GetEnvString("BOOKING_PLATFORM_CREDENTIALS", ""),
		},
		Cache: Cache{
			WeekSummaryTTLInSeconds: utils.GetEnvInt("CACHE_WEEK_SUMMARY_TTL_IN_SECONDS", 60),
		},
		Notifications: Notifications{
			QueueName: utils.GetEnvString("NOTIFICATIONS_QUEUE_NAME", "schedboard_operation_notifications"),
			Enabled:   utils.GetEnvBool("NOTIFICATIONS_ENABLED", true),
		},
	}
}
