package jobs

import (
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestStart_RejectsInvalidCronExpression(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jobs.PaymentPollCron = "not a cron expression"

	s := NewScheduler(nil, nil, nil, nil, nil, cfg)
	err := s.Start()
	assert.Error(t, err)
}

func TestPreviousMonday(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday reports on the week just ended",
			now:  time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midweek still reports on the completed week",
			now:  time.Date(2026, 8, 27, 12, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the week started the previous monday",
			now:  time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, previousMonday(tc.now))
		})
	}
}
