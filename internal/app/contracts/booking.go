package contracts

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
)

type BookingApiClient interface {
	BookClass(ctx context.Context, request requests.BookClassRequest) error
}
