package cancellations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/app/models"
	"schedboard-service/internal/app/services/core/grid"
	"schedboard-service/internal/app/services/core/slots"
	"schedboard-service/internal/app/services/core/weekdata"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/dto/requests"
)

type fakeCancellationClient struct {
	classCalls        []requests.CancelClassRequest
	availabilityCalls []requests.CancelAvailabilityRequest
	err               error
}

func (f *fakeCancellationClient) CancelClass(_ context.Context, request requests.CancelClassRequest) error {
	f.classCalls = append(f.classCalls, request)
	return f.err
}

func (f *fakeCancellationClient) CancelAvailability(_ context.Context, request requests.CancelAvailabilityRequest) error {
	f.availabilityCalls = append(f.availabilityCalls, request)
	return f.err
}

type fakeNotifier struct {
	published []contracts.OperationNotification
}

func (f *fakeNotifier) Publish(_ context.Context, notification contracts.OperationNotification) error {
	f.published = append(f.published, notification)
	return nil
}

func newCancellationFixture() (CancellationUsecase, *fakeCancellationClient, *fakeNotifier, *slots.ScheduleStore) {
	client := &fakeCancellationClient{}
	notifier := &fakeNotifier{}
	store := slots.NewScheduleStore(grid.GranularityHourly)
	uc := NewCancellationUsecase(client, notifier, store, weekdata.NewStatusRegistry(), zap.NewNop())
	uc.(*cancellationUsecase).Now = func() time.Time {
		return time.Date(2026, time.April, 10, 9, 5, 0, 0, time.UTC)
	}
	return uc, client, notifier, store
}

func TestParseCancelReason(t *testing.T) {
	t.Run("known reasons parse", func(t *testing.T) {
		reason, err := ParseCancelReason("teacher_planned_cancellation")
		assert.NoError(t, err)
		assert.Equal(t, ReasonTeacherPlannedCancellation, reason)
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		_, err := ParseCancelReason("")
		assert.Error(t, err)
	})

	t.Run("unknown reason is rejected", func(t *testing.T) {
		_, err := ParseCancelReason("because")
		assert.Error(t, err)
	})

	t.Run("only the no-show reasons are no-shows", func(t *testing.T) {
		assert.True(t, ReasonLearnerNoShow.IsNoShow())
		assert.True(t, ReasonTeacherNoShow.IsNoShow())
		assert.False(t, ReasonBreak.IsNoShow())
		assert.False(t, ReasonMakeUpClass.IsNoShow())
	})
}

func TestCancelBooking(t *testing.T) {
	summary := "Paid Class : Mira Oduya(JL4821) : Ada Veen(TJL900)"

	t.Run("scans identifiers and stamps the UTC timestamp", func(t *testing.T) {
		uc, client, _, _ := newCancellationFixture()

		response, err := uc.CancelBooking(context.Background(), &requests.CancelBookingRequest{
			Reason:  "parent_planned_cancellation",
			Summary: summary,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.SuccessBookingCancelled, response.Message)

		call := client.classCalls[0]
		assert.Equal(t, "JL4821", call.JLUID)
		assert.Equal(t, "TJL900", call.TLID)
		assert.Equal(t, "10-04-2026 09:05", call.CancellationDatetime)
		assert.Equal(t, constvars.CancellationTypeBooking, call.CancellationType)
	})

	t.Run("no-show reasons change the confirmation message", func(t *testing.T) {
		uc, _, _, _ := newCancellationFixture()

		response, err := uc.CancelBooking(context.Background(), &requests.CancelBookingRequest{
			Reason:  "learner_no_show",
			Summary: summary,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.SuccessNoShowRecorded, response.Message)
	})

	t.Run("missing reason aborts before any upstream call", func(t *testing.T) {
		uc, client, _, _ := newCancellationFixture()

		_, err := uc.CancelBooking(context.Background(), &requests.CancelBookingRequest{Summary: summary})
		assert.Error(t, err)
		assert.Empty(t, client.classCalls)
	})

	t.Run("upstream failure propagates without a notification", func(t *testing.T) {
		uc, client, notifier, _ := newCancellationFixture()
		client.err = errors.New("backend down")

		_, err := uc.CancelBooking(context.Background(), &requests.CancelBookingRequest{
			Reason:  "break",
			Summary: summary,
		})
		assert.Error(t, err)
		assert.Empty(t, notifier.published)
	})

	t.Run("success publishes a notification", func(t *testing.T) {
		uc, _, notifier, _ := newCancellationFixture()

		_, err := uc.CancelBooking(context.Background(), &requests.CancelBookingRequest{
			Reason:  "break",
			Summary: summary,
		})
		assert.NoError(t, err)
		if assert.Len(t, notifier.published, 1) {
			assert.Equal(t, "JL4821", notifier.published[0].LearnerID)
		}
	})
}

func TestCancelAvailability(t *testing.T) {
	request := &requests.CancelAvailabilitySlotRequest{
		Reason:     "teacher_unplanned_cancellation",
		Date:       "2026-04-10",
		Time:       "09:00",
		TeacherUID: "TJL900",
		Timezone:   "(GMT+00:00) UTC",
	}

	t.Run("sends the slot coordinates upstream", func(t *testing.T) {
		uc, client, _, _ := newCancellationFixture()

		response, err := uc.CancelAvailability(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, constvars.SuccessAvailabilityFreed, response.Message)

		call := client.availabilityCalls[0]
		assert.Equal(t, "2026-04-10", call.Date)
		assert.Equal(t, "TJL900", call.TeacherUID)
	})

	t.Run("clears the local availability marker", func(t *testing.T) {
		uc, _, _, store := newCancellationFixture()
		date, _ := models.ParseCalendarDate("2026-04-10")
		store.AddTeacher(date, "09:00", slots.TeacherRef{UID: "TJL900"})

		_, err := uc.CancelAvailability(context.Background(), request)
		assert.NoError(t, err)

		record, _ := store.Record(date, "09:00")
		assert.Empty(t, record.Teachers)
	})
}
