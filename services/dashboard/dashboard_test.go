package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalFallsBackToDefault(t *testing.T) {
	svc := &DefaultDashboardService{}
	assert.Equal(t, defaultRefreshInterval, svc.interval())

	svc.Interval = -5 * time.Second
	assert.Equal(t, defaultRefreshInterval, svc.interval())

	svc.Interval = 10 * time.Second
	assert.Equal(t, 10*time.Second, svc.interval())
}
