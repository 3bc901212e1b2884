package feeding

import (
	feedingRepo "furytails/database/repository/feeding"
	"furytails/models"
)

// PageSize is the fixed page length of the feeding reports view.
const PageSize = 10

// Page is one page of feeding records plus paging metadata.
type Page struct {
	Records      []models.FeedingRecord `json:"records"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"pageSize"`
	TotalRecords int64                  `json:"totalRecords"`
	TotalPages   int                    `json:"totalPages"`
	HasNext      bool                   `json:"hasNext"`
	HasPrev      bool                   `json:"hasPrev"`
}

// FeedingService serves the feeding reports view.
type FeedingService interface {
	// ListPage returns one page of records, newest first. Pages below 1
	// clamp to the first page.
	ListPage(page int) (*Page, error)
	// Get retrieves one feeding record.
	Get(id string) (*models.FeedingRecord, error)
}

// DefaultFeedingService implements FeedingService.
type DefaultFeedingService struct {
	Repo feedingRepo.FeedingRepository
}

// ListPage returns one page of records, newest first.
func (s *DefaultFeedingService) ListPage(page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.Repo.Count()
	if err != nil {
		return nil, err
	}
	records, err := s.Repo.GetPage(page, PageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	return &Page{
		Records:      records,
		Page:         page,
		PageSize:     PageSize,
		TotalRecords: total,
		TotalPages:   totalPages,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}, nil
}

// Get retrieves one feeding record.
func (s *DefaultFeedingService) Get(id string) (*models.FeedingRecord, error) {
	return s.Repo.GetByID(id)
}
