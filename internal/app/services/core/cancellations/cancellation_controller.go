package cancellations

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

type CancellationController struct {
	Log                 *zap.Logger
	CancellationUsecase CancellationUsecase
}

func NewCancellationController(logger *zap.Logger, cancellationUsecase CancellationUsecase) *CancellationController {
	return &CancellationController{
		Log:                 logger,
		CancellationUsecase: cancellationUsecase,
	}
}

func (ctrl *CancellationController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CancelBookingRequest)
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

	response, err := ctrl.CancellationUsecase.CancelBooking(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}

func (ctrl *CancellationController) CancelAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CancelAvailabilitySlotRequest)
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

	response, err := ctrl.CancellationUsecase.CancelAvailability(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response.Message, response)
}
