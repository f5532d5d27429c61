package contracts

import (
	"context"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/dto/requests"
)

type SummaryApiClient interface {
	FetchWeekSummary(ctx context.Context, request requests.WeekSummaryRequest) (models.RemoteWeekSummary, error)
	FetchBookingDetails(ctx context.Context, request requests.WeekSummaryRequest) (models.BookingDetailFeed, error)
	ListTimezones(ctx context.Context) ([]string, error)
}
