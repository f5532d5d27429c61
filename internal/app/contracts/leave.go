package contracts

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
)

type LeaveApiClient interface {
	ApplyLeave(ctx context.Context, request requests.LeaveApplicationRequest) error
}
