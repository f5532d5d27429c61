package bookings

import (
	"context"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/weekdata"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

type bookingUsecase struct {
	Manager             *DraftManager
	Roster              StudentRoster
	BookingClient       contracts.BookingApiClient
	Notifications       contracts.NotificationPublisher
	Store               *slots.ScheduleStore
	Registry            *weekdata.StatusRegistry
	Log                 *zap.Logger
	PlatformCredentials string
	Now                 func() models.CalendarDate
}

func NewBookingUsecase(
	manager *DraftManager,
	roster StudentRoster,
	bookingClient contracts.BookingApiClient,
	notifications contracts.NotificationPublisher,
	store *slots.ScheduleStore,
	registry *weekdata.StatusRegistry,
	logger *zap.Logger,
	platformCredentials string,
) BookingUsecase {
	return &bookingUsecase{
		Manager:             manager,
		Roster:              roster,
		BookingClient:       bookingClient,
		Notifications:       notifications,
		Store:               store,
		Registry:            registry,
		Log:                 logger,
		PlatformCredentials: platformCredentials,
		Now:                 models.TodayUTC,
	}
}

func (uc *bookingUsecase) CreateDraft(ctx context.Context, request *requests.CreateBookingDraftRequest) (*responses.BookingDraftResponse, error) {
	draft := NewBookingDraft(request.BookingType, request.TeacherUID)
	uc.Manager.Put(draft)

	uc.Log.Info("Booking draft created",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("draft_id", draft.DraftID),
		zap.String("booking_type", draft.BookingType),
	)
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) GetDraft(_ context.Context, draftID string) (*responses.BookingDraftResponse, error) {
	draft, err := uc.Manager.Get(draftID)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) AddScheduleEntry(_ context.Context, draftID string, request *requests.AddScheduleEntryRequest) (*responses.BookingDraftResponse, error) {
	entry, err := parseEntry(request)
	if err != nil {
		return nil, err
	}

	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		return draft.AddEntry(entry, uc.Now())
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) RemoveScheduleEntry(_ context.Context, draftID string, request *requests.AddScheduleEntryRequest) (*responses.BookingDraftResponse, error) {
	entry, err := parseEntry(request)
	if err != nil {
		return nil, err
	}

	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		draft.RemoveEntry(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) AddStudent(_ context.Context, draftID string, request *requests.AddStudentRequest) (*responses.BookingDraftResponse, error) {
	student, ok := uc.Roster.ByJetLearnerID(request.JetLearnerID)
	if !ok {
		student = models.Student{JetLearnerID: request.JetLearnerID}
	}

	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		return draft.AddStudent(student)
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) RemoveStudent(_ context.Context, draftID, jetLearnerID string) (*responses.BookingDraftResponse, error) {
	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		draft.RemoveStudent(jetLearnerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) SetAttendees(_ context.Context, draftID string, request *requests.AddAttendeesRequest) (*responses.BookingDraftResponse, error) {
	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		draft.SetAttendees(request.Attendees)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

func (uc *bookingUsecase) SetPaidOptions(_ context.Context, draftID string, request *requests.SetPaidOptionsRequest) (*responses.BookingDraftResponse, error) {
	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		return draft.SetPaidOptions(request.Subject, request.ClassType, request.ClassCount, request.BatchName, request.Course, request.Recording, request.Tags)
	})
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// Submit pushes the draft upstream: one book-class call per selected
// student, schedule pairs converted to UTC through the chosen timezone. A
// failed call leaves the draft in the failed state with its error recorded
// so the user can retry without rebuilding the selection.
func (uc *bookingUsecase) Submit(ctx context.Context, draftID string, request *requests.SubmitBookingRequest) (*responses.BookingDraftResponse, error) {
	requestID := utils.GetRequestID(ctx)

	draft, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		if err := draft.Validate(); err != nil {
			return err
		}
		draft.State = DraftStateSubmitting
		draft.LastError = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	schedule, utcEntries, err := convertSchedule(draft.Entries, request.Timezone)
	if err != nil {
		uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
			draft.State = DraftStateEditing
			return nil
		})
		return nil, err
	}

	seq := uc.Registry.Begin(constvars.ResourceBookings)
	submitErr := utils.LogOperation(uc.Log, "submit_booking", requestID, func() error {
		for _, student := range draft.Students {
			payload := requests.BookClassRequest{
				JLUID:               student.JetLearnerID,
				TeacherUID:          draft.TeacherUID,
				PlatformCredentials: uc.PlatformCredentials,
				ClassCount:          draft.ClassCount,
				Schedule:            schedule,
				Attendees:           draft.Attendees,
				ClassType:           draft.ClassType,
				BookingType:         draft.BookingType,
				Course:              draft.Course,
				Recording:           draft.Recording,
				BatchName:           draft.BatchName,
				Tags:                draft.Tags,
			}
			if err := uc.BookingClient.BookClass(ctx, payload); err != nil {
				return err
			}
		}
		return nil
	})
	uc.Registry.Finish(constvars.ResourceBookings, seq, submitErr)

	if submitErr != nil {
		failed, _ := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
			draft.State = DraftStateFailed
			draft.LastError = submitErr.Error()
			return nil
		})
		if failed == nil {
			return nil, submitErr
		}
		return toDraftResponse(failed), submitErr
	}

	for _, entry := range utcEntries {
		for _, student := range draft.Students {
			uc.Store.AddStudent(entry.Date, entry.Time, slots.StudentBookingRef{JetLearnerID: student.JetLearnerID})
		}
	}

	completed, err := uc.Manager.Mutate(draftID, func(draft *BookingDraft) error {
		draft.State = DraftStateCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.Manager.Delete(draftID)

	uc.publishBooked(ctx, completed)
	return toDraftResponse(completed), nil
}

func (uc *bookingUsecase) publishBooked(ctx context.Context, draft *BookingDraft) {
	if uc.Notifications == nil {
		return
	}
	for _, student := range draft.Students {
		notification := contracts.OperationNotification{
			Operation:  "booking",
			Resource:   constvars.ResourceBookings,
			TeacherUID: draft.TeacherUID,
			LearnerID:  student.JetLearnerID,
			Message:    constvars.SuccessBookingCreated,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := uc.Notifications.Publish(ctx, notification); err != nil {
			uc.Log.Warn("Booking notification publish failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
	}
}

func parseEntry(request *requests.AddScheduleEntryRequest) (ScheduleEntry, error) {
	date, err := models.ParseCalendarDate(request.Date)
	if err != nil {
		return ScheduleEntry{}, exceptions.ErrCannotParseTime(err)
	}
	return ScheduleEntry{Date: date, Time: request.Time}, nil
}

func convertSchedule(entries []ScheduleEntry, timezone string) ([][2]string, []ScheduleEntry, error) {
	schedule := make([][2]string, 0, len(entries))
	utcEntries := make([]ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		utcDate, utcTime, err := grid.ToUTC(entry.Date, entry.Time, timezone)
		if err != nil {
			return nil, nil, err
		}
		schedule = append(schedule, [2]string{utcDate.String(), utcTime})
		utcEntries = append(utcEntries, ScheduleEntry{Date: utcDate, Time: utcTime})
	}
	return schedule, utcEntries, nil
}

func toDraftResponse(draft *BookingDraft) *responses.BookingDraftResponse {
	response := &responses.BookingDraftResponse{
		DraftID:     draft.DraftID,
		State:       string(draft.State),
		BookingType: draft.BookingType,
		TeacherUID:  draft.TeacherUID,
		Entries:     make([]responses.ScheduleEntryResponse, 0, len(draft.Entries)),
		Students:    make([]string, 0, len(draft.Students)),
		Attendees:   draft.Attendees,
		Subject:     draft.Subject,
		ClassType:   draft.ClassType,
		ClassCount:  draft.ClassCount,
		BatchName:   draft.BatchName,
		LastError:   draft.LastError,
	}
	for _, entry := range draft.Entries {
		response.Entries = append(response.Entries, responses.ScheduleEntryResponse{Date: entry.Date.String(), Time: entry.Time})
	}
	for _, student := range draft.Students {
		response.Students = append(response.Students, student.JetLearnerID)
	}
	return response
}
