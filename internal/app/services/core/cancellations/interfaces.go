package cancellations

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
)

type CancellationUsecase interface {
	CancelBooking(ctx context.Context, request *requests.CancelBookingRequest) (*responses.CancellationResponse, error)
	CancelAvailability(ctx context.Context, request *requests.CancelAvailabilitySlotRequest) (*responses.CancellationResponse, error)
}
