package dashboard

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "furytails/database/repository/booking"
	feedingRepo "furytails/database/repository/feeding"
	userRepo "furytails/database/repository/user"
	"furytails/models"
	"furytails/services/sales"
	"furytails/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statsCacheKey = "dashboard:stats"

// defaultRefreshInterval backs the poller and the snapshot TTL when no
// interval is configured.
const defaultRefreshInterval = 30 * time.Second

// Stats is the live dashboard snapshot.
type Stats struct {
	Users           int64     `json:"users"`
	PendingBookings int64     `json:"pendingBookings"`
	FeedingReports  int64     `json:"feedingReports"`
	TotalBookings   int64     `json:"totalBookings"`
	PetsTracked     int64     `json:"petsTracked"` // every booking brings a pet through the door
	WeeklySales     float64   `json:"weeklySales"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DashboardService keeps the console's live counters fresh.
type DashboardService interface {
	// Stats returns the current snapshot, computing one on a cache miss.
	Stats(ctx context.Context) (*Stats, error)
	// Start runs the change-stream watchers and the refresh poller
	// until ctx is cancelled.
	Start(ctx context.Context)
}

// DefaultDashboardService implements DashboardService. Change streams
// keep the snapshot current; the poller reconciles when streams are
// unavailable on the deployment.
type DefaultDashboardService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Feeding  feedingRepo.FeedingRepository
	Sales    sales.SalesService
	Cache    *redis.Client
	Interval time.Duration
}

// Stats returns the current snapshot, computing one on a cache miss.
func (s *DefaultDashboardService) Stats(ctx context.Context) (*Stats, error) {
	if data, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
		var cached Stats
		if err := json.Unmarshal([]byte(data), &cached); err == nil {
			return &cached, nil
		}
	}
	return s.refresh(ctx)
}

// Start runs the watchers and the refresh poller until ctx is cancelled.
func (s *DefaultDashboardService) Start(ctx context.Context) {
	logger := utils.GetLogger()

	watchers := map[string]func(context.Context, func()) error{
		"bookings":       s.Bookings.Watch,
		"users":          s.Users.Watch,
		"feedingHistory": s.Feeding.Watch,
	}
	for name, watch := range watchers {
		go func(name string, watch func(context.Context, func()) error) {
			err := watch(ctx, func() {
				if _, err := s.refresh(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("dashboard refresh after change failed", zap.Error(err))
				}
			})
			if err != nil && ctx.Err() == nil {
				logger.Warn("dashboard watcher stopped, polling only",
					zap.String("collection", name), zap.Error(err))
			}
		}(name, watch)
	}

	go func() {
		ticker := time.NewTicker(s.interval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.refresh(ctx); err != nil {
					logger.Warn("dashboard poll refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// interval returns the refresh interval; zero and negative configured
// values fall back to the default.
func (s *DefaultDashboardService) interval() time.Duration {
	if s.Interval <= 0 {
		return defaultRefreshInterval
	}
	return s.Interval
}

// refresh recomputes the snapshot and caches it.
func (s *DefaultDashboardService) refresh(ctx context.Context) (*Stats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.Bookings.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.Bookings.CountByStatus("")
	if err != nil {
		return nil, err
	}
	feedingCount, err := s.Feeding.Count()
	if err != nil {
		return nil, err
	}
	weekly, err := s.Sales.WeeklyRevenue()
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Users:           users,
		PendingBookings: pending,
		FeedingReports:  feedingCount,
		TotalBookings:   totalBookings,
		PetsTracked:     totalBookings,
		WeeklySales:     weekly,
		UpdatedAt:       time.Now(),
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return nil, err
	}
	ttl := 2 * s.interval()
	if err := s.Cache.Set(ctx, statsCacheKey, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache dashboard stats", zap.Error(err))
	}
	return stats, nil
}
