package cancellations

import "schedboard-service/internal/pkg/exceptions"

// CancelReason is the closed set of accepted cancellation reasons. The
// upstream backend stores the raw string, so additions here must stay in
// step with its reporting categories.
type CancelReason string

const (
	ReasonBreak                        CancelReason = "break"
	ReasonReturn                       CancelReason = "return"
	ReasonTeacherPlannedCancellation   CancelReason = "teacher_planned_cancellation"
	ReasonTeacherUnplannedCancellation CancelReason = "teacher_unplanned_cancellation"
	ReasonParentPlannedCancellation    CancelReason = "parent_planned_cancellation"
	ReasonParentUnplannedCancellation  CancelReason = "parent_unplanned_cancellation"
	ReasonOpsPlannedCancellation       CancelReason = "ops_planned_cancellation"
	ReasonOpsUnplannedCancellation     CancelReason = "ops_unplanned_cancellation"
	ReasonLearnerNoShow                CancelReason = "learner_no_show"
	ReasonTeacherNoShow                CancelReason = "teacher_no_show"
	ReasonMakeUpClass                  CancelReason = "make_up_class"
	ReasonReserved                     CancelReason = "reserved"
)

var knownReasons = map[CancelReason]struct{}{
	ReasonBreak:                        {},
	ReasonReturn:                       {},
	ReasonTeacherPlannedCancellation:   {},
	ReasonTeacherUnplannedCancellation: {},
	ReasonParentPlannedCancellation:    {},
	ReasonParentUnplannedCancellation:  {},
	ReasonOpsPlannedCancellation:       {},
	ReasonOpsUnplannedCancellation:     {},
	ReasonLearnerNoShow:                {},
	ReasonTeacherNoShow:                {},
	ReasonMakeUpClass:                  {},
	ReasonReserved:                     {},
}

// ParseCancelReason validates a raw reason against the closed set. Empty
// and unknown values are both reported as a missing reason.
func ParseCancelReason(raw string) (CancelReason, error) {
	reason := CancelReason(raw)
	if _, ok := knownReasons[reason]; !ok {
		return "", exceptions.ErrCancelReasonRequired()
	}
	return reason, nil
}

// IsNoShow reports whether the reason records an absence rather than a
// cancellation, which changes the confirmation message.
func (r CancelReason) IsNoShow() bool {
	return r == ReasonLearnerNoShow || r == ReasonTeacherNoShow
}
