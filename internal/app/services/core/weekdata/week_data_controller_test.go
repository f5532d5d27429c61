package weekdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
)

type stubWeekDataUsecase struct {
	gridRequest   *requests.FetchWeekGridRequest
	gridResponse  *responses.WeekGridResponse
	gridErr       error
	eventsRequest *requests.FetchSlotEventsRequest
	events        []responses.SlotEventResponse
	eventsTotal   int
}

func (s *stubWeekDataUsecase) FetchWeekGrid(_ context.Context, request *requests.FetchWeekGridRequest) (*responses.WeekGridResponse, error) {
	s.gridRequest = request
	return s.gridResponse, s.gridErr
}

func (s *stubWeekDataUsecase) FetchSlotEvents(_ context.Context, request *requests.FetchSlotEventsRequest) ([]responses.SlotEventResponse, int, error) {
	s.eventsRequest = request
	return s.events, s.eventsTotal, nil
}

func (s *stubWeekDataUsecase) ListTimezones(_ context.Context) (*responses.TimezoneListResponse, error) {
	return &responses.TimezoneListResponse{Timezones: []string{"GMT+00:00"}}, nil
}

func (s *stubWeekDataUsecase) OperationStatuses(_ context.Context) []responses.OperationStatusResponse {
	return []responses.OperationStatusResponse{{Operation: "grid", Success: true}}
}

func TestGetWeekGrid_PassesQueryThrough(t *testing.T) {
	stub := &stubWeekDataUsecase{
		gridResponse: &responses.WeekGridResponse{
			WeekStart: "2026-04-06",
			Timezone:  "GMT+05:30",
		},
	}
	ctrl := NewWeekDataController(zap.NewNop(), stub)

	req := httptest.NewRequest(
		http.MethodGet,
		"/grid/week?date=2026-04-10&timezone=GMT%2B05:30&candidate_uid=TJL-9",
		nil,
	)
	rec := httptest.NewRecorder()
	ctrl.GetWeekGrid(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.gridRequest)
	assert.Equal(t, "2026-04-10", stub.gridRequest.Date)
	assert.Equal(t, "GMT+05:30", stub.gridRequest.Timezone)
	assert.Equal(t, "TJL-9", stub.gridRequest.CandidateUID)
	assert.Contains(t, rec.Body.String(), "2026-04-06")
}

func TestGetWeekGrid_RejectsMissingDate(t *testing.T) {
	stub := &stubWeekDataUsecase{}
	ctrl := NewWeekDataController(zap.NewNop(), stub)

	req := httptest.NewRequest(http.MethodGet, "/grid/week?timezone=GMT%2B00:00", nil)
	rec := httptest.NewRecorder()
	ctrl.GetWeekGrid(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gridRequest)
}

func TestGetSlotEvents_DefaultsPagination(t *testing.T) {
	stub := &stubWeekDataUsecase{
		events:      []responses.SlotEventResponse{},
		eventsTotal: 0,
	}
	ctrl := NewWeekDataController(zap.NewNop(), stub)

	req := httptest.NewRequest(
		http.MethodGet,
		"/grid/slot/events?date=2026-04-10&time=14:00&timezone=GMT%2B00:00",
		nil,
	)
	rec := httptest.NewRecorder()
	ctrl.GetSlotEvents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.eventsRequest)
	assert.Equal(t, 1, stub.eventsRequest.Page)
	assert.Equal(t, 10, stub.eventsRequest.PageSize)
}

func TestGetTimezones_ReturnsCatalog(t *testing.T) {
	ctrl := NewWeekDataController(zap.NewNop(), &stubWeekDataUsecase{})

	rec := httptest.NewRecorder()
	ctrl.GetTimezones(rec, httptest.NewRequest(http.MethodGet, "/timezones", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GMT+00:00")
}
