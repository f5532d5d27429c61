package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"calendar_date": "must be a valid YYYY-MM-DD date",
	"slot_time":     "must be a valid HH:MM slot time",
	"gmt_timezone":  "must carry a parseable GMT offset",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMalformedTimezone             = "the selected timezone cannot be read, please pick another one"
	ErrClientPastDate                      = "the selected date is in the past"
	ErrClientNoStudentSelected             = "select at least one student before booking"
	ErrClientNoScheduleEntry               = "add at least one schedule entry before booking"
	ErrClientMaxScheduleEntries            = "a booking can hold at most three schedule entries"
	ErrClientClassTypeCapacity             = "the selected class type does not allow that many students"
	ErrClientMissingPaidFields             = "paid bookings need a subject, class type and class count"
	ErrClientMissingBatchName              = "batch bookings need a batch name"
	ErrClientCancelReasonRequired          = "pick a cancellation reason first"
	ErrClientLeaveEndBeforeStart           = "the leave end date cannot be before its start date"
	ErrClientLeaveReasonRequired           = "a leave reason is required"
	ErrClientDraftNotFound                 = "this booking draft no longer exists"
	ErrClientUpstreamRejected              = "the scheduling backend rejected the request"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON     = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime       = "cannot parse time into the given format"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevSendHTTPRequest       = "failed to send HTTP request"
	ErrDevServerProcess         = "internal server process failed"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Slot engine codes. These are the workflow rejection codes surfaced to
	// API clients as machine-readable identifiers.
	ErrDevMalformedTimezone         = "MALFORMED_TIMEZONE"
	ErrDevPastDateRejected          = "PAST_DATE_REJECTED"
	ErrDevNoStudentSelected         = "NO_STUDENT_SELECTED"
	ErrDevNoScheduleEntry           = "NO_SCHEDULE_ENTRY"
	ErrDevMaxScheduleEntries        = "MAX_SCHEDULE_ENTRIES_EXCEEDED"
	ErrDevClassTypeCapacityExceeded = "CLASS_TYPE_CAPACITY_EXCEEDED"
	ErrDevMissingPaidFields         = "MISSING_PAID_FIELDS"
	ErrDevMissingBatchName          = "MISSING_BATCH_NAME"
	ErrDevCancelReasonRequired      = "CANCEL_REASON_REQUIRED"
	ErrDevDraftNotFound             = "DRAFT_NOT_FOUND"

	// Upstream backend messages
	ErrDevUpstreamFetchSummary    = "failed to fetch weekly summary from scheduling backend"
	ErrDevUpstreamFetchDetails    = "failed to fetch booking details from scheduling backend"
	ErrDevUpstreamFetchTimezones  = "failed to fetch timezone list from scheduling backend"
	ErrDevUpstreamBookClass       = "failed to book class on scheduling backend"
	ErrDevUpstreamCancelClass     = "failed to cancel class on scheduling backend"
	ErrDevUpstreamApplyLeave      = "failed to apply leave on scheduling backend"
	ErrDevUpstreamDecodeResponse  = "failed to decode response from scheduling backend"
	ErrDevUpstreamRejectedRequest = "scheduling backend returned a non-success status body"

	// Redis messages
	ErrDevRedisGetNoData = "failed to get data from redis with key: %s"
	ErrDevRedisGetData   = "failed to get data from redis"
	ErrDevRedisSetData   = "failed to set data to redis"
	ErrDevRedisDelete    = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue: %s"
)
