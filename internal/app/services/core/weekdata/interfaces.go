package weekdata

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
)

type WeekDataUsecase interface {
	FetchWeekGrid(ctx context.Context, request *requests.FetchWeekGridRequest) (*responses.WeekGridResponse, error)
	FetchSlotEvents(ctx context.Context, request *requests.FetchSlotEventsRequest) ([]responses.SlotEventResponse, int, error)
	ListTimezones(ctx context.Context) (*responses.TimezoneListResponse, error)
	OperationStatuses(ctx context.Context) []responses.OperationStatusResponse
}
