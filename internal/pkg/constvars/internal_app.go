package constvars

type ContextKey string

const (
	ResourceGrid          = "grid"
	ResourceBookings      = "bookings"
	ResourceCancellations = "cancellations"
	ResourceLeaves        = "leaves"
	ResourceTimezones     = "timezones"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	URLParamDraftID      = "draftID"
	URLParamJetLearnerID = "jetLearnerID"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SCHBRD_SVC_"
)
