package weekdata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/events"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/teachers"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
	"schedboard-service/internal/pkg/dto/responses"
	"schedboard-service/internal/pkg/exceptions"
	"schedboard-service/internal/pkg/pagination"
	"schedboard-service/internal/pkg/utils"
)

type weekDataUsecase struct {
	SummaryClient contracts.SummaryApiClient
	RedisRepo     contracts.RedisRepository
	Resolver      *slots.Resolver
	Teachers      *teachers.Directory
	Students      *teachers.StudentDirectory
	Registry      *StatusRegistry
	Log           *zap.Logger
	CacheTTL      time.Duration
}

func NewWeekDataUsecase(
	summaryClient contracts.SummaryApiClient,
	redisRepo contracts.RedisRepository,
	resolver *slots.Resolver,
	teacherDirectory *teachers.Directory,
	studentDirectory *teachers.StudentDirectory,
	registry *StatusRegistry,
	logger *zap.Logger,
	cacheTTL time.Duration,
) WeekDataUsecase {
	return &weekDataUsecase{
		SummaryClient: summaryClient,
		RedisRepo:     redisRepo,
		Resolver:      resolver,
		Teachers:      teacherDirectory,
		Students:      studentDirectory,
		Registry:      registry,
		Log:           logger,
		CacheTTL:      cacheTTL,
	}
}

func (uc *weekDataUsecase) FetchWeekGrid(ctx context.Context, request *requests.FetchWeekGridRequest) (*responses.WeekGridResponse, error) {
	requestID := utils.GetRequestID(ctx)

	reference, err := models.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	granularity := grid.GranularityHourly
	if request.Granularity == string(grid.GranularityHalfHourly) {
		granularity = grid.GranularityHalfHourly
	}

	weekDates := grid.WeekDatesOf(reference)

	summaryRequest := requests.WeekSummaryRequest{
		StartDate: weekDates[0].String(),
		EndDate:   weekDates[len(weekDates)-1].String(),
		Timezone:  request.Timezone,
		TeacherID: request.TeacherID,
		Email:     request.Email,
		JLID:      request.JLID,
	}
	if !summaryRequest.HasEntityFilter() {
		summaryRequest.Type = constvars.SummaryFetchTypeAvailability
	}

	seq := uc.Registry.Begin(constvars.ResourceGrid)

	summary, err := uc.fetchWeekSummary(ctx, summaryRequest, seq)
	if !uc.Registry.Finish(constvars.ResourceGrid, seq, err) {
		uc.Log.Debug("Discarding stale week grid fetch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64("seq", seq),
		)
	}
	if err != nil {
		return nil, err
	}

	times := grid.CatalogTimes(granularity)
	response := &responses.WeekGridResponse{
		WeekStart: weekDates[0].String(),
		Dates:     make([]string, 0, len(weekDates)),
		Timezone:  request.Timezone,
		Times:     times,
		Cells:     make([]responses.GridCellResponse, 0, len(weekDates)*len(times)),
	}

	for _, date := range weekDates {
		response.Dates = append(response.Dates, date.String())
		for _, slotTime := range times {
			cell, err := uc.resolveCell(summary, date, slotTime, request.Timezone, request.CandidateUID)
			if err != nil {
				return nil, err
			}
			response.Cells = append(response.Cells, cell)
		}
	}

	return response, nil
}

// fetchWeekSummary serves the feed from cache when possible. A fetch that
// lost the fencing race still returns its data to its own caller but must
// not overwrite the shared cache.
func (uc *weekDataUsecase) fetchWeekSummary(ctx context.Context, request requests.WeekSummaryRequest, seq uint64) (models.RemoteWeekSummary, error) {
	cacheKey := weekSummaryCacheKey(request)

	var cached models.RemoteWeekSummary
	if uc.RedisRepo != nil {
		if err := uc.RedisRepo.Get(ctx, cacheKey, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := uc.SummaryClient.FetchWeekSummary(ctx, request)
	if err != nil {
		return nil, err
	}

	if uc.RedisRepo != nil && uc.Registry.Current(constvars.ResourceGrid, seq) {
		if err := uc.RedisRepo.Set(ctx, cacheKey, summary, uc.CacheTTL); err != nil {
			uc.Log.Warn("Week summary cache write failed", zap.Error(err))
		}
	}

	return summary, nil
}

func (uc *weekDataUsecase) resolveCell(summary models.RemoteWeekSummary, date models.CalendarDate, slotTime, timezone, candidateUID string) (responses.GridCellResponse, error) {
	var counts slots.SlotCounts
	if candidateUID != "" {
		scoped, covered := uc.Resolver.ResolveForCandidateTeacher(summary, date, slotTime, candidateUID)
		if covered {
			counts = scoped
		}
	} else {
		counts = uc.Resolver.Resolve(summary, date, slotTime)
	}

	displayDate, displayTime, err := grid.ToDisplayDate(date, slotTime, timezone)
	if err != nil {
		return responses.GridCellResponse{}, err
	}

	cell := responses.GridCellResponse{
		Date:        date.String(),
		UTCTime:     slotTime,
		DisplayDate: displayDate.String(),
		DisplayTime: displayTime,
		Available:   counts.Available,
		Booked:      counts.Booked,
		Source:      string(counts.Source),
		Class:       string(slots.Classify(counts)),
		TeacherUID:  counts.OwnerTeacherUID,
	}
	if counts.Teacher != nil {
		cell.Teacher = &responses.TeacherResponse{
			ID:       counts.Teacher.ID,
			UID:      counts.Teacher.UID,
			FullName: counts.Teacher.FullName,
			Email:    counts.Teacher.Email,
		}
	}
	return cell, nil
}

func (uc *weekDataUsecase) FetchSlotEvents(ctx context.Context, request *requests.FetchSlotEventsRequest) ([]responses.SlotEventResponse, int, error) {
	reference, err := models.ParseCalendarDate(request.Date)
	if err != nil {
		return nil, 0, exceptions.ErrCannotParseTime(err)
	}

	// The detail feed is fetched for the whole window the upstream serves:
	// the slot's week start through the end of that month. The teacher
	// filter rides on the fetch itself, same filter shape as the summary
	// fetch, with the type discriminator only when no filter is present.
	weekStart := grid.WeekDatesOf(reference)[0]
	detailRequest := requests.WeekSummaryRequest{
		StartDate: weekStart.String(),
		EndDate:   weekStart.EndOfMonth().String(),
		Timezone:  request.Timezone,
		TeacherID: request.TeacherUID,
	}
	if !detailRequest.HasEntityFilter() {
		detailRequest.Type = constvars.SummaryFetchTypeAvailability
	}
	feed, err := uc.SummaryClient.FetchBookingDetails(ctx, detailRequest)
	if err != nil {
		return nil, 0, err
	}

	bucket := feed[reference.String()][request.Time]

	items := make([]responses.SlotEventResponse, 0, len(bucket.Events))
	for _, event := range bucket.Events {
		item := uc.toSlotEventResponse(event)
		if request.TeacherUID != "" && item.TeacherUID != request.TeacherUID {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].StartTime < items[j].StartTime })

	total := len(items)
	page, pageSize := request.Page, request.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pagination.Page(items, page, pageSize), total, nil
}

func (uc *weekDataUsecase) toSlotEventResponse(event models.CalendarEvent) responses.SlotEventResponse {
	item := responses.SlotEventResponse{
		Summary:   event.Summary,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Creator:   event.Creator,
	}

	if strings.EqualFold(event.Type, constvars.SummaryFetchTypeAvailability) {
		details := events.ParseAvailability(event)
		item.Kind = constvars.SummaryFetchTypeAvailability
		item.Summary = details.Summary
		item.LearnerName = constvars.SummaryFieldNA
		item.LearnerID = constvars.SummaryFieldNA
		item.TeacherName = constvars.SummaryFieldNA
		_, item.TeacherUID = events.ScanIdentifiers(event.Summary)
		if item.TeacherUID == "" {
			item.TeacherUID = constvars.SummaryFieldNA
		}
		return item
	}

	details := events.ParseBookingSummary(event.Summary)
	uc.learnIdentities(details)
	item.Kind = details.Kind
	item.LearnerName = details.LearnerName
	item.LearnerID = details.LearnerID
	item.TeacherName = details.TeacherName
	item.TeacherUID = details.TeacherUID
	return item
}

// learnIdentities backfills the in-process directories from identities
// observed in the detail feed. Known records are left alone; the feed
// only fills gaps, it never overwrites.
func (uc *weekDataUsecase) learnIdentities(details models.BookingEventDetails) {
	if uc.Teachers != nil && details.TeacherUID != constvars.SummaryFieldNA {
		if _, known := uc.Teachers.ByUID(details.TeacherUID); !known {
			uc.Teachers.Put(models.Teacher{UID: details.TeacherUID, FullName: details.TeacherName})
		}
	}
	if uc.Students != nil && details.LearnerID != constvars.SummaryFieldNA {
		if _, known := uc.Students.ByJetLearnerID(details.LearnerID); !known {
			uc.Students.Put(models.Student{JetLearnerID: details.LearnerID, Name: details.LearnerName})
		}
	}
}

func (uc *weekDataUsecase) ListTimezones(ctx context.Context) (*responses.TimezoneListResponse, error) {
	seq := uc.Registry.Begin(constvars.ResourceTimezones)

	timezones, err := uc.SummaryClient.ListTimezones(ctx)
	if err == nil {
		for _, descriptor := range timezones {
			if _, parseErr := grid.ParseGMTOffset(descriptor); parseErr != nil {
				err = parseErr
				break
			}
		}
	}
	uc.Registry.Finish(constvars.ResourceTimezones, seq, err)
	if err != nil {
		return nil, err
	}

	return &responses.TimezoneListResponse{Timezones: timezones}, nil
}

func (uc *weekDataUsecase) OperationStatuses(ctx context.Context) []responses.OperationStatusResponse {
	snapshot := uc.Registry.Snapshot()
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Operation < snapshot[j].Operation })

	statuses := make([]responses.OperationStatusResponse, 0, len(snapshot))
	for _, status := range snapshot {
		statuses = append(statuses, responses.OperationStatusResponse{
			Operation: status.Operation,
			IsLoading: status.IsLoading,
			Success:   status.Success,
			Error:     status.Error,
		})
	}
	return statuses
}

func weekSummaryCacheKey(request requests.WeekSummaryRequest) string {
	return fmt.Sprintf("week_summary:%s:%s:%s:%s:%s:%s",
		request.StartDate, request.EndDate, request.Timezone,
		request.TeacherID, request.JLID, request.Type,
	)
}
