package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App           App
		Upstream      Upstream
		Booking       Booking
		Cache         Cache
		Notifications Notifications
	}
	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		ShutdownTimeoutInSeconds  int
		GridGranularity           string
	}
	Upstream struct {
		BaseUrl          string
		TimeoutInSeconds int
		RateLimitRPS     int
	}
	Booking struct {
		PlatformCredentials string
	}
	Cache struct {
		WeekSummaryTTLInSeconds int
	}
	Notifications struct {
		QueueName string
		Enabled   bool
	}
)
