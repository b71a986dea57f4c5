package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

func TestResolverResolve(t *testing.T) {
	vacations := []*domain.Vacation{
		{ID: "v1", Name: "Eid", From: "2026-03-20", To: "2026-03-23"},
	}
	rushHours := []*domain.RushHour{
		{ID: "r1", WeekDay: 1, From: "07:00", To: "09:00"},
		{ID: "r2", WeekDay: 5, From: "16:00", To: "19:00"},
	}
	resolver := NewResolver(vacations, rushHours)

	tests := []struct {
		name       string
		at         time.Time
		wantFlag   bool
		wantReason string
	}{
		{"plain weekday", time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), false, ""},
		{"monday rush", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), true, ReasonRush},
		{"friday rush", time.Date(2026, 3, 6, 18, 59, 0, 0, time.UTC), true, ReasonRush},
		{"vacation day", time.Date(2026, 3, 21, 3, 0, 0, 0, time.UTC), true, ReasonVacation},
		// 2026-03-20 is a Friday; vacation wins over the rush window
		{"vacation beats rush", time.Date(2026, 3, 20, 17, 0, 0, 0, time.UTC), true, ReasonVacation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.at)
			assert.Equal(t, tt.wantFlag, got.Special)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestResolverEmptyRules(t *testing.T) {
	resolver := NewResolver(nil, nil)
	got := resolver.Resolve(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	assert.False(t, got.Special)
	assert.Empty(t, got.Reason)
}
