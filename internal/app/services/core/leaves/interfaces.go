package leaves

import (
	"context"

	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
)

type LeaveUsecase interface {
	ApplyLeave(ctx context.Context, request *requests.ApplyLeaveRequest) (*responses.LeaveResponse, error)
}
