package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM     = `^([01]\d|2[0-3]):[0-5]\d$`

	// RegexGMTOffset extracts the fixed offset from timezone descriptors of
	// the form "(GMT+05:30) Asia/Kolkata" offered by the upstream list.
	RegexGMTOffset = `GMT([+-])(\d{2}):(\d{2})`
)
