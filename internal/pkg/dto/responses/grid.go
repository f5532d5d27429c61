package responses

// GridCellResponse is one resolved slot of the weekly grid. UTC keys stay
// alongside the converted display values so actions on the cell can be
// submitted without re-deriving the slot key.
type GridCellResponse struct {
	Date        string           `json:"date"`
	UTCTime     string           `json:"utc_time"`
	DisplayDate string           `json:"display_date"`
	DisplayTime string           `json:"display_time"`
	Available   int              `json:"available"`
	Booked      int              `json:"booked"`
	Source      string           `json:"source"`
	Class       string           `json:"class"`
	TeacherUID  string           `json:"teacher_uid,omitempty"`
	Teacher     *TeacherResponse `json:"teacher,omitempty"`
}

type TeacherResponse struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type WeekGridResponse struct {
	WeekStart string             `json:"week_start"`
	Dates     []string           `json:"dates"`
	Timezone  string             `json:"timezone"`
	Times     []string           `json:"times"`
	Cells     []GridCellResponse `json:"cells"`
}

type TimezoneListResponse struct {
	Timezones []string `json:"timezones"`
}

type OperationStatusResponse struct {
	Operation string `json:"operation"`
	IsLoading bool   `json:"is_loading"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}
