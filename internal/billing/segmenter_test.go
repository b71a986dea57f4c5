package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
)

func mondayRushResolver() *Resolver {
	return NewResolver(nil, []*domain.RushHour{
		{ID: "r1", WeekDay: 1, From: "07:00", To: "09:00"},
	})
}

func TestComputeBillSingleNormalSegment(t *testing.T) {
	// Monday noon, far from any rush window
	checkin := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	checkout := checkin.Add(2 * time.Hour)

	bill := ComputeBill(checkin, checkout, 3, 5, mondayRushResolver())

	require.Len(t, bill.Breakdown, 1)
	seg := bill.Breakdown[0]
	assert.Equal(t, checkin, seg.From)
	assert.Equal(t, checkout, seg.To)
	assert.Equal(t, RateModeNormal, seg.Mode)
	assert.Equal(t, 3.0, seg.Rate)
	assert.Equal(t, 2.0, seg.Hours)
	assert.Equal(t, 6.0, seg.Amount)
	assert.Equal(t, 6.0, bill.TotalAmount)
}

func TestComputeBillCrossesIntoRush(t *testing.T) {
	// 06:00 to 08:00 Monday: one normal hour, one rush hour
	checkin := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	bill := ComputeBill(checkin, checkout, 3, 5, mondayRushResolver())

	require.Len(t, bill.Breakdown, 2)

	first := bill.Breakdown[0]
	assert.Equal(t, RateModeNormal, first.Mode)
	assert.Equal(t, time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC), first.To)
	assert.Equal(t, 1.0, first.Hours)
	assert.Equal(t, 3.0, first.Amount)

	second := bill.Breakdown[1]
	assert.Equal(t, RateModeSpecial, second.Mode)
	assert.Equal(t, 5.0, second.Rate)
	assert.Equal(t, 1.0, second.Hours)
	assert.Equal(t, 5.0, second.Amount)

	assert.Equal(t, 8.0, bill.TotalAmount)
}

func TestComputeBillRushInMiddleSplitsThree(t *testing.T) {
	// 06:30 to 09:30 Monday: normal, rush, normal
	checkin := time.Date(2026, 3, 2, 6, 30, 0, 0, time.UTC)
	checkout := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	bill := ComputeBill(checkin, checkout, 2, 4, mondayRushResolver())

	require.Len(t, bill.Breakdown, 3)
	assert.Equal(t, RateModeNormal, bill.Breakdown[0].Mode)
	assert.Equal(t, RateModeSpecial, bill.Breakdown[1].Mode)
	assert.Equal(t, RateModeNormal, bill.Breakdown[2].Mode)
	assert.Equal(t, 0.5, bill.Breakdown[0].Hours)
	assert.Equal(t, 2.0, bill.Breakdown[1].Hours)
	assert.Equal(t, 0.5, bill.Breakdown[2].Hours)
	// 0.5*2 + 2*4 + 0.5*2
	assert.Equal(t, 10.0, bill.TotalAmount)
}

func TestComputeBillSegmentsTileTheInterval(t *testing.T) {
	checkin := time.Date(2026, 3, 2, 6, 17, 23, 0, time.UTC)
	checkout := time.Date(2026, 3, 2, 10, 2, 41, 0, time.UTC)

	bill := ComputeBill(checkin, checkout, 3, 5, mondayRushResolver())

	require.NotEmpty(t, bill.Breakdown)
	assert.Equal(t, checkin, bill.Breakdown[0].From)
	assert.Equal(t, checkout, bill.Breakdown[len(bill.Breakdown)-1].To)
	for i := 1; i < len(bill.Breakdown); i++ {
		assert.Equal(t, bill.Breakdown[i-1].To, bill.Breakdown[i].From, "segments must be contiguous")
		assert.NotEqual(t, bill.Breakdown[i-1].Mode, bill.Breakdown[i].Mode, "adjacent segments must differ in mode")
	}
}

func TestComputeBillPartialMinuteTail(t *testing.T) {
	checkin := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	checkout := checkin.Add(90 * time.Second)

	bill := ComputeBill(checkin, checkout, 4, 8, mondayRushResolver())

	require.Len(t, bill.Breakdown, 1)
	// 1.5 minutes at 4/h
	assert.Equal(t, 0.025, bill.Breakdown[0].Hours)
	assert.Equal(t, 0.1, bill.Breakdown[0].Amount)
	assert.Equal(t, 0.1, bill.TotalAmount)
}

func TestComputeBillEmptyInterval(t *testing.T) {
	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	bill := ComputeBill(at, at, 3, 5, mondayRushResolver())

	assert.Empty(t, bill.Breakdown)
	assert.Equal(t, 0.0, bill.TotalAmount)
}

func TestComputeBillZeroRate(t *testing.T) {
	checkin := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	checkout := checkin.Add(3 * time.Hour)

	bill := ComputeBill(checkin, checkout, 0, 0, mondayRushResolver())

	require.Len(t, bill.Breakdown, 1)
	assert.Equal(t, 0.0, bill.TotalAmount)
}

func TestComputeBillTotalIsSumOfRoundedSegments(t *testing.T) {
	// 10 minutes at 1/h per segment would be 0.1666..; rounded per segment
	// first, then summed.
	checkin := time.Date(2026, 3, 2, 6, 50, 0, 0, time.UTC)
	checkout := time.Date(2026, 3, 2, 7, 10, 0, 0, time.UTC)

	bill := ComputeBill(checkin, checkout, 1, 1.5, mondayRushResolver())

	require.Len(t, bill.Breakdown, 2)
	assert.Equal(t, 0.17, bill.Breakdown[0].Amount)
	assert.Equal(t, 0.25, bill.Breakdown[1].Amount)
	assert.Equal(t, 0.42, bill.TotalAmount)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.238))
	assert.Equal(t, 0.1667, Round4(1.0/6.0))
}
