package constvars

const (
	SuccessBookingCreated    = "booking created"
	SuccessBookingCancelled  = "booking cancelled"
	SuccessNoShowRecorded    = "no-show recorded"
	SuccessAvailabilityFreed = "availability cancelled"
	SuccessLeaveApplied      = "leave application submitted"
	SuccessGetWeekGrid       = "weekly grid resolved"
	SuccessGetSlotEvents     = "slot events fetched"
	SuccessGetTimezones      = "timezones fetched"
	SuccessGetStatuses       = "operation statuses fetched"
	SuccessDraftUpdated      = "booking draft updated"
)

const (
	ResponseUnknown = "unknown"
)
