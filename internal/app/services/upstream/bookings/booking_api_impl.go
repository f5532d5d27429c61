package bookings

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

const bookClassEndpoint = "/bookings"

type bookingApiClient struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

var (
	clientInstance contracts.BookingApiClient
	once           sync.Once
)

func NewBookingApiClient(baseUrl string, timeout time.Duration, rps int, log *zap.Logger) contracts.BookingApiClient {
	once.Do(func() {
		clientInstance = &bookingApiClient{
			BaseUrl:    baseUrl,
			httpClient: &http.Client{Timeout: timeout},
			limiter:    rate.NewLimiter(rate.Limit(rps), rps),
			log:        log,
		}
	})
	return clientInstance
}

type bookClassEnvelope struct {
	Status string `json:"status"`
}

// BookClass submits one book-class request. A 2xx transport result is not
// enough: the body must carry status "success", anything else counts as a
// rejection.
func (c *bookingApiClient) BookClass(ctx context.Context, request requests.BookClassRequest) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+bookClassEndpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	c.log.Info("Upstream book class request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("jl_uid", request.JLUID),
		zap.String("teacher_uid", request.TeacherUID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return exceptions.ErrUpstreamFetch(nil, constvars.ErrDevUpstreamBookClass)
	}

	var envelope bookClassEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err)
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return nil
}
