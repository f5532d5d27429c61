package weekdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/teachers"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
)

type fakeSummaryClient struct {
	summary       models.RemoteWeekSummary
	details       models.BookingDetailFeed
	timezones     []string
	summaryCalls  []requests.WeekSummaryRequest
	detailsCalls  []requests.WeekSummaryRequest
	err           error
	timezonesErr  error
	detailsCalled bool
}

func (f *fakeSummaryClient) FetchWeekSummary(_ context.Context, request requests.WeekSummaryRequest) (models.RemoteWeekSummary, error) {
	f.summaryCalls = append(f.summaryCalls, request)
	return f.summary, f.err
}

func (f *fakeSummaryClient) FetchBookingDetails(_ context.Context, request requests.WeekSummaryRequest) (models.BookingDetailFeed, error) {
	f.detailsCalled = true
	f.detailsCalls = append(f.detailsCalls, request)
	return f.details, f.err
}

func (f *fakeSummaryClient) ListTimezones(_ context.Context) ([]string, error) {
	return f.timezones, f.timezonesErr
}

type fakeRedis struct {
	sets map[string]interface{}
}

func (f *fakeRedis) Get(_ context.Context, _ string, _ interface{}) error {
	return errors.New("no data")
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.sets == nil {
		f.sets = make(map[string]interface{})
	}
	f.sets[key] = value
	return nil
}

func (f *fakeRedis) Delete(_ context.Context, _ string) error { return nil }

func newWeekDataUsecase(client *fakeSummaryClient) (WeekDataUsecase, *StatusRegistry, *slots.ScheduleStore) {
	store := slots.NewScheduleStore(grid.GranularityHourly)
	directory := teachers.NewDirectory()
	resolver := slots.NewResolver(store, directory)
	registry := NewStatusRegistry()
	uc := NewWeekDataUsecase(
		client, &fakeRedis{}, resolver,
		directory, teachers.NewStudentDirectory(),
		registry, zap.NewNop(), time.Minute,
	)
	return uc, registry, store
}

func TestFetchWeekGrid(t *testing.T) {
	t.Run("builds the full week times dates product", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{
			"2026-04-06": {"09:00": {Availability: 2, Bookings: 1, UID: "TJL1"}},
		}}
		uc, _, _ := newWeekDataUsecase(client)

		response, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:     "2026-04-08",
			Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)
		assert.Equal(t, "2026-04-06", response.WeekStart)
		assert.Len(t, response.Dates, 7)
		assert.Len(t, response.Times, 24)
		assert.Len(t, response.Cells, 7*24)
	})

	t.Run("remote entries classify over local silence", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{
			"2026-04-06": {"09:00": {Availability: 2, Bookings: 2, UID: "TJL1"}},
		}}
		uc, _, _ := newWeekDataUsecase(client)

		response, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:     "2026-04-06",
			Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)

		var sawRemote, sawEmpty bool
		for _, cell := range response.Cells {
			if cell.Date == "2026-04-06" && cell.UTCTime == "09:00" {
				sawRemote = true
				assert.Equal(t, string(slots.CellAlert), cell.Class)
				assert.Equal(t, string(slots.SourceRemote), cell.Source)
			}
			if cell.Date == "2026-04-07" && cell.UTCTime == "09:00" {
				sawEmpty = true
				assert.Equal(t, string(slots.CellNeutral), cell.Class)
			}
		}
		assert.True(t, sawRemote)
		assert.True(t, sawEmpty)
	})

	t.Run("availability discriminator set only without entity filters", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{}}
		uc, _, _ := newWeekDataUsecase(client)

		_, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date: "2026-04-06", Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.SummaryFetchTypeAvailability, client.summaryCalls[0].Type)

		_, err = uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date: "2026-04-06", Timezone: "(GMT+00:00) UTC", JLID: "JL7",
		})
		assert.NoError(t, err)
		assert.Empty(t, client.summaryCalls[1].Type)
	})

	t.Run("candidate scoping hides other teachers slots", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{
			"2026-04-06": {
				"09:00": {Availability: 2, Bookings: 0, UID: "TJL1"},
				"10:00": {Availability: 2, Bookings: 0, UID: "TJL2"},
			},
		}}
		uc, _, _ := newWeekDataUsecase(client)

		response, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:         "2026-04-06",
			Timezone:     "(GMT+00:00) UTC",
			CandidateUID: "TJL1",
		})
		assert.NoError(t, err)

		for _, cell := range response.Cells {
			if cell.Date != "2026-04-06" {
				continue
			}
			switch cell.UTCTime {
			case "09:00":
				assert.Equal(t, string(slots.CellOpen), cell.Class)
			case "10:00":
				assert.Equal(t, string(slots.CellNeutral), cell.Class)
			}
		}
	})

	t.Run("display values convert through the requested offset", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{}}
		uc, _, _ := newWeekDataUsecase(client)

		response, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:     "2026-04-06",
			Timezone: "(GMT+05:30) Asia/Kolkata",
		})
		assert.NoError(t, err)

		for _, cell := range response.Cells {
			if cell.Date == "2026-04-06" && cell.UTCTime == "23:00" {
				assert.Equal(t, "2026-04-07", cell.DisplayDate)
				assert.Equal(t, "04:30", cell.DisplayTime)
			}
		}
	})

	t.Run("malformed timezone fails the fetch", func(t *testing.T) {
		client := &fakeSummaryClient{summary: models.RemoteWeekSummary{}}
		uc, _, _ := newWeekDataUsecase(client)

		_, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:     "2026-04-06",
			Timezone: "Asia/Kolkata",
		})
		assert.Error(t, err)
	})

	t.Run("upstream failure lands in the status registry", func(t *testing.T) {
		client := &fakeSummaryClient{err: errors.New("feed down")}
		uc, registry, _ := newWeekDataUsecase(client)

		_, err := uc.FetchWeekGrid(context.Background(), &requests.FetchWeekGridRequest{
			Date:     "2026-04-06",
			Timezone: "(GMT+00:00) UTC",
		})
		assert.Error(t, err)

		status, ok := registry.Status(constvars.ResourceGrid)
		assert.True(t, ok)
		assert.False(t, status.Success)
		assert.Equal(t, "feed down", status.Error)
	})
}

func TestFetchSlotEvents(t *testing.T) {
	feed := models.BookingDetailFeed{
		"2026-04-06": {
			"09:00": {Events: []models.CalendarEvent{
				{Type: "booking", Summary: "Paid Class : Mira Oduya(JL4821) : Ada Veen(TJL900)", StartTime: "09:00", EndTime: "10:00", Creator: "ops"},
				{Type: "booking", Summary: "Trial Class : Ben Odell(JL11) : Kai Ruru(TJL42)", StartTime: "09:00", EndTime: "09:30", Creator: "ops"},
				{Type: "Availability", Summary: "availability TJL900", StartTime: "09:00", EndTime: "17:00", Creator: "TJL900"},
			}},
		},
	}

	t.Run("returns parsed events for the slot", func(t *testing.T) {
		uc, _, _ := newWeekDataUsecase(&fakeSummaryClient{details: feed})

		items, total, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 3)
	})

	t.Run("teacher filter keeps only matching events", func(t *testing.T) {
		uc, _, _ := newWeekDataUsecase(&fakeSummaryClient{details: feed})

		items, total, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC", TeacherUID: "TJL900",
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, item := range items {
			assert.Equal(t, "TJL900", item.TeacherUID)
		}
	})

	t.Run("teacher filter rides on the detail fetch itself", func(t *testing.T) {
		client := &fakeSummaryClient{details: feed}
		uc, _, _ := newWeekDataUsecase(client)

		_, _, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC", TeacherUID: "TJL900",
		})
		assert.NoError(t, err)

		call := client.detailsCalls[0]
		assert.Equal(t, "TJL900", call.TeacherID)
		assert.Empty(t, call.Type)
	})

	t.Run("unfiltered detail fetch carries the type discriminator", func(t *testing.T) {
		client := &fakeSummaryClient{details: feed}
		uc, _, _ := newWeekDataUsecase(client)

		_, _, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)

		call := client.detailsCalls[0]
		assert.Empty(t, call.TeacherID)
		assert.Equal(t, constvars.SummaryFetchTypeAvailability, call.Type)
		assert.Equal(t, "2026-04-06", call.StartDate)
		assert.Equal(t, "2026-04-30", call.EndDate)
	})

	t.Run("empty slot yields zero total", func(t *testing.T) {
		uc, _, _ := newWeekDataUsecase(&fakeSummaryClient{details: feed})

		items, total, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "11:00", Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})

	t.Run("pagination slices the event list", func(t *testing.T) {
		uc, _, _ := newWeekDataUsecase(&fakeSummaryClient{details: feed})

		items, total, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC", Page: 2, PageSize: 2,
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 1)
	})

	t.Run("parsed identities backfill the directories", func(t *testing.T) {
		store := slots.NewScheduleStore(grid.GranularityHourly)
		directory := teachers.NewDirectory()
		students := teachers.NewStudentDirectory()
		uc := NewWeekDataUsecase(
			&fakeSummaryClient{details: feed}, &fakeRedis{},
			slots.NewResolver(store, directory),
			directory, students,
			NewStatusRegistry(), zap.NewNop(), time.Minute,
		)

		_, _, err := uc.FetchSlotEvents(context.Background(), &requests.FetchSlotEventsRequest{
			Date: "2026-04-06", Time: "09:00", Timezone: "(GMT+00:00) UTC",
		})
		assert.NoError(t, err)

		teacher, ok := directory.ByUID("TJL900")
		assert.True(t, ok)
		assert.Equal(t, "Ada Veen", teacher.FullName)

		student, ok := students.ByJetLearnerID("JL4821")
		assert.True(t, ok)
		assert.Equal(t, "Mira Oduya", student.Name)
	})
}

func TestListTimezones(t *testing.T) {
	t.Run("returns the upstream catalog", func(t *testing.T) {
		uc, _, _ := newWeekDataUsecase(&fakeSummaryClient{timezones: []string{
			"(GMT+00:00) UTC",
			"(GMT+05:30) Asia/Kolkata",
		}})

		response, err := uc.ListTimezones(context.Background())
		assert.NoError(t, err)
		assert.Len(t, response.Timezones, 2)
	})

	t.Run("a malformed entry fails the listing", func(t *testing.T) {
		uc, registry, _ := newWeekDataUsecase(&fakeSummaryClient{timezones: []string{
			"(GMT+00:00) UTC",
			"Asia/Kolkata",
		}})

		_, err := uc.ListTimezones(context.Background())
		assert.Error(t, err)

		status, _ := registry.Status(constvars.ResourceTimezones)
		assert.False(t, status.Success)
	})
}
