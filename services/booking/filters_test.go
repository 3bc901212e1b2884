package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furytails/models"
)

func TestDateFilterPresets(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		preset string
		date   string
		want   bool
	}{
		{FilterAll, "2020-01-01", true},
		{FilterToday, "2024-05-15", true},
		{FilterToday, "2024-05-16", false},
		{FilterTomorrow, "2024-05-16", true},
		{FilterTomorrow, "2024-05-15", false},
		{FilterNext7Days, "2024-05-22", true},
		{FilterNext7Days, "2024-05-23", false},
		{FilterNext7Days, "2024-05-14", false},
		{FilterNext30Days, "2024-06-14", true},
		{FilterPast7Days, "2024-05-08", true},
		{FilterPast7Days, "2024-05-07", false},
		{FilterPast30Days, "2024-04-15", true},
	}
	for _, c := range cases {
		f := DateFilter{Preset: c.preset}
		assert.Equal(t, c.want, f.Matches(c.date, now), "%s / %s", c.preset, c.date)
	}
}

func TestDateFilterCustom(t *testing.T) {
	now := time.Now()
	f := DateFilter{Preset: FilterCustom, Start: "2024-03-01", End: "2024-03-10"}

	assert.True(t, f.Matches("2024-03-01", now))
	assert.True(t, f.Matches("2024-03-10", now))
	assert.False(t, f.Matches("2024-03-11", now))

	// Reversed bounds are normalized.
	f = DateFilter{Preset: FilterCustom, Start: "2024-03-10", End: "2024-03-01"}
	assert.True(t, f.Matches("2024-03-05", now))

	// Unparseable dates never match a constrained filter.
	assert.False(t, f.Matches("soon", now))
}

func TestListPendingFiltersStatusAndDate(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	pending := pendingBoarding("p1")
	pending.BoardingDetails.CheckInDate = today

	approved := pendingBoarding("p2")
	approved.Status = models.StatusApproved
	approved.Timestamp = time.Now().Add(-time.Hour)

	old := pendingBoarding("p3")
	old.BoardingDetails.CheckInDate = "2020-01-01"
	old.Timestamp = time.Now().Add(-2 * time.Hour)

	repo := newFakeBookingRepo(pending, approved, old)
	svc, _ := newService(repo)

	all, err := svc.ListPending("", DateFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyPending, err := svc.ListPending(models.StatusPending, DateFilter{})
	require.NoError(t, err)
	assert.Len(t, onlyPending, 2)

	// "Accepted" is the console's alias for approved bookings.
	accepted, err := svc.ListPending("Accepted", DateFilter{})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "p2", accepted[0].ID)

	todays, err := svc.ListPending("", DateFilter{Preset: FilterToday})
	require.NoError(t, err)
	require.Len(t, todays, 1)
	assert.Equal(t, "p1", todays[0].ID)
}

func TestListApprovedPutsTodayFirst(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	later := pendingBoarding("a1")
	later.Status = models.StatusApproved
	later.BoardingDetails.CheckInDate = "2099-12-01"

	arriving := pendingBoarding("a2")
	arriving.Status = models.StatusApproved
	arriving.BoardingDetails.CheckInDate = today

	rejected := pendingBoarding("a3")
	rejected.Status = models.StatusRejected

	repo := newFakeBookingRepo(later, arriving, rejected)
	svc, _ := newService(repo)

	got, err := svc.ListApproved("")
	require.NoError(t, err)
	require.Len(t, got, 2, "rejected bookings stay off the active board")
	assert.Equal(t, "a2", got[0].ID, "today's arrival sorts first")
}

func TestListReportsNumbersRows(t *testing.T) {
	approved := pendingBoarding("r1")
	approved.Status = models.StatusApproved

	rejected := pendingBoarding("r2")
	rejected.Status = models.StatusRejected
	rejected.Timestamp = time.Now().Add(-time.Hour)

	checkedIn := pendingBoarding("r3")
	checkedIn.Status = models.StatusCheckedIn

	repo := newFakeBookingRepo(approved, rejected, checkedIn)
	svc, _ := newService(repo)

	rows, err := svc.ListReports("")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RPT001", rows[0].ReportID)
	assert.Equal(t, "RPT002", rows[1].ReportID)
	assert.Equal(t, "3 days", rows[0].Duration)
}

func TestGroomingDurationIsOneDay(t *testing.T) {
	b := &models.Booking{
		ServiceType:     models.ServiceGrooming,
		Status:          models.StatusApproved,
		GroomingDetails: &models.GroomingDetails{GroomingCheckInDate: "2024-04-02"},
	}
	assert.Equal(t, "1 day", durationLabel(b))
}
