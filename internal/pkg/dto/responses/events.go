package responses

type SlotEventResponse struct {
	Kind        string `json:"kind"`
	LearnerName string `json:"learner_name"`
	LearnerID   string `json:"learner_id"`
	TeacherName string `json:"teacher_name"`
	TeacherUID  string `json:"teacher_uid"`
	Summary     string `json:"summary"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Creator     string `json:"creator"`
}
