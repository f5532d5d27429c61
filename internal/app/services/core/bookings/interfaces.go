package bookings

import (
	"context"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateDraft(ctx context.Context, request *requests.CreateBookingDraftRequest) (*responses.BookingDraftResponse, error)
	GetDraft(ctx context.Context, draftID string) (*responses.BookingDraftResponse, error)
	AddScheduleEntry(ctx context.Context, draftID string, request *requests.AddScheduleEntryRequest) (*responses.BookingDraftResponse, error)
	RemoveScheduleEntry(ctx context.Context, draftID string, request *requests.AddScheduleEntryRequest) (*responses.BookingDraftResponse, error)
	AddStudent(ctx context.Context, draftID string, request *requests.AddStudentRequest) (*responses.BookingDraftResponse, error)
	RemoveStudent(ctx context.Context, draftID, jetLearnerID string) (*responses.BookingDraftResponse, error)
	SetAttendees(ctx context.Context, draftID string, request *requests.AddAttendeesRequest) (*responses.BookingDraftResponse, error)
	SetPaidOptions(ctx context.Context, draftID string, request *requests.SetPaidOptionsRequest) (*responses.BookingDraftResponse, error)
	Submit(ctx context.Context, draftID string, request *requests.SubmitBookingRequest) (*responses.BookingDraftResponse, error)
}

// StudentRoster resolves learner selections against the known roster.
type StudentRoster interface {
	ByJetLearnerID(jetLearnerID string) (models.Student, bool)
}
