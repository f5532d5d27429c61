package models

// Teacher carries both identifiers the platform has ever used for a
// teacher: the remote feed keys by uid, historical local data keys by id.
type Teacher struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type Student struct {
	JetLearnerID string `json:"jetlearner_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Age          int    `json:"age"`
}
