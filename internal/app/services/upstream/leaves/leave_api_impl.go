package leaves

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

const applyLeaveEndpoint = "/leaves"

type leaveApiClient struct {
	BaseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *zap.Logger
}

var (
	clientInstance contracts.LeaveApiClient
	once           sync.Once
)

func NewLeaveApiClient(baseUrl string, timeout time.Duration, rps int, log *zap.Logger) contracts.LeaveApiClient {
	once.Do(func() {
		clientInstance = &leaveApiClient{
			BaseUrl:    baseUrl,
			httpClient: &http.Client{Timeout: timeout},
			limiter:    rate.NewLimiter(rate.Limit(rps), rps),
			log:        log,
		}
	})
	return clientInstance
}

type leaveEnvelope struct {
	Status string `json:"status"`
}

func (c *leaveApiClient) ApplyLeave(ctx context.Context, request requests.LeaveApplicationRequest) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+applyLeaveEndpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	c.log.Info("Upstream leave application",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("teacher_id", request.TeacherID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUpstreamFetch(nil, constvars.ErrDevUpstreamApplyLeave)
	}

	var envelope leaveEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return exceptions.ErrUpstreamDecodeResponse(err)
	}
	if envelope.Status != constvars.UpstreamStatusSuccess {
		return exceptions.ErrUpstreamRejected(envelope.Status)
	}
	return nil
}
