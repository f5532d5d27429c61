package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingDataKey         = "data"
	LoggingQueryParamsKey  = "query_params"
	LoggingResponseKey     = "response"
	LoggingRequestKey      = "request"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingUpstreamUrlKey  = "upstream_url"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
)
