package weekdata

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/utils"
)

type WeekDataController struct {
	Log             *zap.Logger
	WeekDataUsecase WeekDataUsecase
}

func NewWeekDataController(logger *zap.Logger, weekDataUsecase WeekDataUsecase) *WeekDataController {
	return &WeekDataController{
		Log:             logger,
		WeekDataUsecase: weekDataUsecase,
	}
}

func (ctrl *WeekDataController) GetWeekGrid(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.FetchWeekGridRequest{
		Date:         query.Get("date"),
		Timezone:     query.Get("timezone"),
		Granularity:  query.Get("granularity"),
		TeacherID:    query.Get("teacherid"),
		Email:        query.Get("email"),
		JLID:         query.Get("jlid"),
		CandidateUID: query.Get("candidate_uid"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.WeekDataUsecase.FetchWeekGrid(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetWeekGrid, response)
}

func (ctrl *WeekDataController) GetSlotEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	request := &requests.FetchSlotEventsRequest{
		Date:       query.Get("date"),
		Time:       query.Get("time"),
		TeacherUID: query.Get("teacher_uid"),
		Timezone:   query.Get("timezone"),
		Page:       page,
		PageSize:   pageSize,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items, total, err := ctrl.WeekDataUsecase.FetchSlotEvents(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationDTO := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SuccessGetSlotEvents, paginationDTO, items)
}

func (ctrl *WeekDataController) GetTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.WeekDataUsecase.ListTimezones(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetTimezones, response)
}

func (ctrl *WeekDataController) GetOperationStatuses(w http.ResponseWriter, r *http.Request) {
	statuses := ctrl.WeekDataUsecase.OperationStatuses(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetStatuses, statuses)
}
