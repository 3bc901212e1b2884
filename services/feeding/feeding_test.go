package feeding

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedingRepo "furytails/database/repository/feeding"
	"furytails/models"
)

type stubFeedingRepo struct {
	records []models.FeedingRecord
}

func (r *stubFeedingRepo) GetByID(id string) (*models.FeedingRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, fmt.Errorf("feeding record %s: %w", id, feedingRepo.ErrNotFound)
}

func (r *stubFeedingRepo) GetPage(page, pageSize int) ([]models.FeedingRecord, error) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(r.records) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(r.records) {
		end = len(r.records)
	}
	return r.records[start:end], nil
}

func (r *stubFeedingRepo) Create(rec *models.FeedingRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *stubFeedingRepo) Count() (int64, error) { return int64(len(r.records)), nil }

func (r *stubFeedingRepo) Watch(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return nil
}

func seededRepo(n int) *stubFeedingRepo {
	repo := &stubFeedingRepo{}
	for i := 0; i < n; i++ {
		repo.records = append(repo.records, models.FeedingRecord{
			ID:          fmt.Sprintf("f%02d", i),
			PetName:     "Mochi",
			ScheduledAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	return repo
}

func TestListPagePaginates(t *testing.T) {
	svc := &DefaultFeedingService{Repo: seededRepo(23)}

	page, err := svc.ListPage(1)
	require.NoError(t, err)
	assert.Len(t, page.Records, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(23), page.TotalRecords)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	page, err = svc.ListPage(3)
	require.NoError(t, err)
	assert.Len(t, page.Records, 3)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestListPageClampsLowPages(t *testing.T) {
	svc := &DefaultFeedingService{Repo: seededRepo(5)}

	page, err := svc.ListPage(0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Records, 5)
}

func TestGetMissingRecord(t *testing.T) {
	svc := &DefaultFeedingService{Repo: seededRepo(1)}

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, feedingRepo.ErrNotFound)
}

func TestDisplayTimesFallbackChain(t *testing.T) {
	withList := models.FeedingRecord{
		SpecificTimes: []models.FeedingTime{{Time: "08:00"}, {Time: "18:00"}},
		ScheduledAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, []string{"08:00", "18:00"}, withList.DisplayTimes())

	withInstant := models.FeedingRecord{
		ScheduledAt: time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC),
		Schedule:    &models.FeedingTime{Time: "07:00"},
	}
	assert.Equal(t, []string{"12:30"}, withInstant.DisplayTimes())

	legacy := models.FeedingRecord{Schedule: &models.FeedingTime{Time: "07:00"}}
	assert.Equal(t, []string{"07:00"}, legacy.DisplayTimes())
}
