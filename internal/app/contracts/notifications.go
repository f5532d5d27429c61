package contracts

import "context"

// OperationNotification is the message published after a workflow finishes
// against the upstream backend.
type OperationNotification struct {
	Operation  string `json:"operation"`
	Resource   string `json:"resource"`
	TeacherUID string `json:"teacher_uid,omitempty"`
	LearnerID  string `json:"learner_id,omitempty"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurred_at"`
}

type NotificationPublisher interface {
	Publish(ctx context.Context, notification OperationNotification) error
}
