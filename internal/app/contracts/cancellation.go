package contracts

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
)

type CancellationApiClient interface {
	CancelClass(ctx context.Context, request requests.CancelClassRequest) error
	CancelAvailability(ctx context.Context, request requests.CancelAvailabilityRequest) error
}
