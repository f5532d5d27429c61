package constvars

// Date and time layouts shared between the grid engine and the upstream
// scheduling backend. The backend is date-keyed by YYYY-MM-DD and
// time-keyed by HH:MM; cancellation timestamps use the DD-MM-YYYY form.
const (
	DateLayoutYMD               = "2006-01-02"
	TimeLayoutHM                = "15:04"
	CancellationTimestampLayout = "02-01-2006 15:04"
)

const (
	BookingTypeTrial = "Trial"
	BookingTypePaid  = "Paid"
)

const (
	ClassTypeOneToOne = "1:1"
	ClassTypeOneToTwo = "1:2"
	ClassTypeBatch    = "batch"
)

const (
	MaxScheduleEntriesPerBooking = 3
	MaxStudentsPerBooking        = 10
	TrialClassCount              = 1
)

// Summary feed discriminator, required only when no teacher/learner filter
// is present on a summary fetch.
const (
	SummaryFetchTypeAvailability = "Availability"
)

// Identifier prefixes embedded in event summaries. Teacher uids extend the
// learner prefix, so teacher tokens must be matched first.
const (
	LearnerIDPrefix    = "JL"
	TeacherUIDPrefix   = "TJL"
	SummaryFieldNA     = "N/A"
	SummarySegmentMark = " : "
)

const (
	UpstreamStatusSuccess = "success"
)

const (
	CancellationTypeBooking      = "booking"
	CancellationTypeAvailability = "availability"
)

// Leave form defaults restored after a successful application.
const (
	LeaveDefaultStartTime = "00:00"
	LeaveDefaultEndTime   = "23:00"
)
