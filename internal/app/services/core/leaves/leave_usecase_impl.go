package leaves

import (
	"context"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/weekdata"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

type leaveUsecase struct {
	LeaveClient   contracts.LeaveApiClient
	Notifications contracts.NotificationPublisher
	Registry      *weekdata.StatusRegistry
	Log           *zap.Logger
	Now           func() models.CalendarDate
}

func NewLeaveUsecase(
	leaveClient contracts.LeaveApiClient,
	notifications contracts.NotificationPublisher,
	registry *weekdata.StatusRegistry,
	logger *zap.Logger,
) LeaveUsecase {
	return &leaveUsecase{
		LeaveClient:   leaveClient,
		Notifications: notifications,
		Registry:      registry,
		Log:           logger,
		Now:           models.TodayUTC,
	}
}

// ApplyLeave validates the leave window in field order and submits it
// upstream. Omitted times fall back to the whole-day defaults.
func (uc *leaveUsecase) ApplyLeave(ctx context.Context, request *requests.ApplyLeaveRequest) (*responses.LeaveResponse, error) {
	form := NewLeaveForm(request.TeacherID, request.TeacherEmail)

	startDate, err := models.ParseCalendarDate(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	form.SetStartDate(startDate)

	endDate, err := models.ParseCalendarDate(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if err := form.SetEndDate(endDate); err != nil {
		return nil, err
	}

	if request.StartTime != "" {
		form.StartTime = request.StartTime
	}
	if request.EndTime != "" {
		form.EndTime = request.EndTime
	}
	form.Reason = utils.SanitizeReason(request.Reason)

	if err := form.Validate(uc.Now()); err != nil {
		return nil, err
	}

	payload := requests.LeaveApplicationRequest{
		TeacherEmail: form.TeacherEmail,
		Start:        [2]string{form.StartDate.String(), form.StartTime},
		End:          [2]string{form.EndDate.String(), form.EndTime},
		Reason:       form.Reason,
		TeacherID:    form.TeacherID,
	}

	seq := uc.Registry.Begin(constvars.ResourceLeaves)
	applyErr := utils.LogOperation(uc.Log, "apply_leave", utils.GetRequestID(ctx), func() error {
		return uc.LeaveClient.ApplyLeave(ctx, payload)
	})
	uc.Registry.Finish(constvars.ResourceLeaves, seq, applyErr)
	if applyErr != nil {
		return nil, applyErr
	}

	response := &responses.LeaveResponse{
		Message:   constvars.SuccessLeaveApplied,
		StartDate: form.StartDate.String(),
		StartTime: form.StartTime,
		EndDate:   form.EndDate.String(),
		EndTime:   form.EndTime,
	}

	if uc.Notifications != nil {
		notification := contracts.OperationNotification{
			Operation:  "apply_leave",
			Resource:   constvars.ResourceLeaves,
			TeacherUID: form.TeacherID,
			Message:    constvars.SuccessLeaveApplied,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := uc.Notifications.Publish(ctx, notification); err != nil {
			uc.Log.Warn("Leave notification publish failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
	}

	return response, nil
}
