package summary

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

const (
	weekSummaryEndpoint    = "/summary/week"
	bookingDetailsEndpoint = "/summary/details"
	timezonesEndpoint      = "/timezones"
)

type summaryApiClient struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

var (
	clientInstance contracts.SummaryApiClient
	once           sync.Once
)

// NewSummaryApiClient builds the singleton client for the scheduling
// backend's read side. The limiter caps outbound request rate across all
// handlers sharing the instance.
func NewSummaryApiClient(baseUrl string, timeout time.Duration, rps int, log *zap.Logger) contracts.SummaryApiClient {
	once.Do(func() {
		clientInstance = &summaryApiClient{
			BaseUrl:    baseUrl,
			httpClient: &http.Client{Timeout: timeout},
			limiter:    rate.NewLimiter(rate.Limit(rps), rps),
			log:        log,
		}
	})
	return clientInstance
}

type weekSummaryEnvelope struct {
	Status string                   `json:"status"`
	Data   models.RemoteWeekSummary `json:"data"`
}

func (c *summaryApiClient) FetchWeekSummary(ctx context.Context, request requests.WeekSummaryRequest) (models.RemoteWeekSummary, error) {
	var envelope weekSummaryEnvelope
	if err := c.post(ctx, weekSummaryEndpoint, request, &envelope, constvars.ErrDevUpstreamFetchSummary); err != nil {
		return nil, err
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return nil, exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return envelope.Data, nil
}

type bookingDetailsEnvelope struct {
	Status string                   `json:"status"`
	Data   models.BookingDetailFeed `json:"data"`
}

func (c *summaryApiClient) FetchBookingDetails(ctx context.Context, request requests.WeekSummaryRequest) (models.BookingDetailFeed, error) {
	var envelope bookingDetailsEnvelope
	if err := c.post(ctx, bookingDetailsEndpoint, request, &envelope, constvars.ErrDevUpstreamFetchDetails); err != nil {
		return nil, err
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return nil, exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return envelope.Data, nil
}

type timezonesEnvelope struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
}

func (c *summaryApiClient) ListTimezones(ctx context.Context) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+timezonesEndpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamFetch(nil, constvars.ErrDevUpstreamFetchTimezones)
	}

	var envelope timezonesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrUpstreamDecodeResponse(err)
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return nil, exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return envelope.Data, nil
}

func (c *summaryApiClient) post(ctx context.Context, endpoint string, payload interface{}, dest interface{}, devMessage string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	c.log.Debug("Upstream summary request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("endpoint", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUpstreamFetch(nil, devMessage)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err)
	}
	return nil
}
