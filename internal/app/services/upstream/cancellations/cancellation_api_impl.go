package cancellations

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
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

const (
	cancelClassEndpoint        = "/cancellations/class"
	cancelAvailabilityEndpoint = "/cancellations/availability"
)

type cancellationApiClient struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

var (
	clientInstance contracts.CancellationApiClient
	once           sync.Once
)

func NewCancellationApiClient(baseUrl string, timeout time.Duration, rps int, log *zap.Logger) contracts.CancellationApiClient {
	once.Do(func() {
		clientInstance = &cancellationApiClient{
			BaseUrl:    baseUrl,
			httpClient: &http.Client{Timeout: timeout},
			limiter:    rate.NewLimiter(rate.Limit(rps), rps),
			log:        log,
		}
	})
	return clientInstance
}

func (c *cancellationApiClient) CancelClass(ctx context.Context, request requests.CancelClassRequest) error {
	return c.post(ctx, cancelClassEndpoint, request)
}

func (c *cancellationApiClient) CancelAvailability(ctx context.Context, request requests.CancelAvailabilityRequest) error {
	return c.post(ctx, cancelAvailabilityEndpoint, request)
}

type cancellationEnvelope struct {
	Status string `json:"status"`
}

func (c *cancellationApiClient) post(ctx context.Context, endpoint string, payload interface{}) error {
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

	c.log.Info("Upstream cancellation request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("endpoint", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUpstreamFetch(nil, constvars.ErrDevUpstreamCancelClass)
	}

	var envelope cancellationEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err)
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return nil
}
