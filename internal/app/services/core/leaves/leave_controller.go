package leaves

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

type LeaveController struct {
	Log          *zap.Logger
	LeaveUsecase LeaveUsecase
}

func NewLeaveController(logger *zap.Logger, leaveUsecase LeaveUsecase) *LeaveController {
	return &LeaveController{
		Log:          logger,
		LeaveUsecase: leaveUsecase,
	}
}

func (ctrl *LeaveController) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ApplyLeaveRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.LeaveUsecase.ApplyLeave(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessLeaveApplied, response)
}
