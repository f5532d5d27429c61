package cancellations

import (
	"context"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/events"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/weekdata"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
	"schedboard-service/internal/pkg/utils"
)

type cancellationUsecase struct {
	CancellationClient contracts.CancellationApiClient
	Notifications      contracts.NotificationPublisher
	Store              *slots.ScheduleStore
	Registry           *weekdata.StatusRegistry
	Log                *zap.Logger
	Now                func() time.Time
}

func NewCancellationUsecase(
	cancellationClient contracts.CancellationApiClient,
	notifications contracts.NotificationPublisher,
	store *slots.ScheduleStore,
	registry *weekdata.StatusRegistry,
	logger *zap.Logger,
) CancellationUsecase {
	return &cancellationUsecase{
		CancellationClient: cancellationClient,
		Notifications:      notifications,
		Store:              store,
		Registry:           registry,
		Log:                logger,
		Now:                func() time.Time { return time.Now().UTC() },
	}
}

// CancelBooking cancels one booked class. The learner and teacher
// identifiers ride inside the event summary, never as separate form
// fields, so they are token-scanned out of the text.
func (uc *cancellationUsecase) CancelBooking(ctx context.Context, request *requests.CancelBookingRequest) (*responses.CancellationResponse, error) {
	reason, err := ParseCancelReason(utils.SanitizeReason(request.Reason))
	if err != nil {
		return nil, err
	}

	learnerID, teacherUID := events.ScanIdentifiers(request.Summary)

	payload := requests.CancelClassRequest{
		CancellationDatetime: uc.Now().Format(constvars.CancellationTimestampLayout),
		JLUID:                learnerID,
		TLID:                 teacherUID,
		Summary:              request.Summary,
		CancellationType:     constvars.CancellationTypeBooking,
	}

	seq := uc.Registry.Begin(constvars.ResourceCancellations)
	cancelErr := utils.LogOperation(uc.Log, "cancel_booking", utils.GetRequestID(ctx), func() error {
		return uc.CancellationClient.CancelClass(ctx, payload)
	})
	uc.Registry.Finish(constvars.ResourceCancellations, seq, cancelErr)
	if cancelErr != nil {
		return nil, cancelErr
	}

	message := constvars.SuccessBookingCancelled
	if reason.IsNoShow() {
		message = constvars.SuccessNoShowRecorded
	}

	uc.publish(ctx, contracts.OperationNotification{
		Operation:  "cancel_booking",
		Resource:   constvars.ResourceCancellations,
		TeacherUID: teacherUID,
		LearnerID:  learnerID,
		Message:    message,
		OccurredAt: uc.Now().Format(time.RFC3339),
	})

	return &responses.CancellationResponse{Message: message, Reason: string(reason)}, nil
}

// CancelAvailability frees one availability slot. The slot is addressed
// directly by its grid coordinates; no summary scan applies.
func (uc *cancellationUsecase) CancelAvailability(ctx context.Context, request *requests.CancelAvailabilitySlotRequest) (*responses.CancellationResponse, error) {
	reason, err := ParseCancelReason(utils.SanitizeReason(request.Reason))
	if err != nil {
		return nil, err
	}

	payload := requests.CancelAvailabilityRequest{
		Date:       request.Date,
		Time:       request.Time,
		TeacherUID: request.TeacherUID,
		Timezone:   request.Timezone,
		Reason:     string(reason),
	}

	seq := uc.Registry.Begin(constvars.ResourceCancellations)
	cancelErr := utils.LogOperation(uc.Log, "cancel_availability", utils.GetRequestID(ctx), func() error {
		return uc.CancellationClient.CancelAvailability(ctx, payload)
	})
	uc.Registry.Finish(constvars.ResourceCancellations, seq, cancelErr)
	if cancelErr != nil {
		return nil, cancelErr
	}

	if date, parseErr := models.ParseCalendarDate(request.Date); parseErr == nil {
		uc.Store.RemoveTeacher(date, request.Time, request.TeacherUID)
	}

	message := constvars.SuccessAvailabilityFreed
	uc.publish(ctx, contracts.OperationNotification{
		Operation:  "cancel_availability",
		Resource:   constvars.ResourceCancellations,
		TeacherUID: request.TeacherUID,
		Message:    message,
		OccurredAt: uc.Now().Format(time.RFC3339),
	})

	return &responses.CancellationResponse{Message: message, Reason: string(reason)}, nil
}

func (uc *cancellationUsecase) publish(ctx context.Context, notification contracts.OperationNotification) {
	if uc.Notifications == nil {
		return
	}
	if err := uc.Notifications.Publish(ctx, notification); err != nil {
		uc.Log.Warn("Cancellation notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
