package billing

import (
	"math"
	"time"
)

// Rate modes
const (
	RateModeNormal  = "normal"
	RateModeSpecial = "special"
)

const step = time.Minute

// Segment is one contiguous pricing regime inside a parking interval.
// Hours and Amount are rounded for output; Minutes stays exact so merged
// segments never accumulate rounding error.
type Segment struct {
	From    time.Time
	To      time.Time
	Minutes float64
	Hours   float64
	Mode    string
	Rate    float64
	Amount  float64
}

// Bill is the result of segmenting a parking interval
type Bill struct {
	Breakdown   []Segment
	TotalAmount float64
}

// ComputeBill partitions [checkin, checkout) into minute-granularity steps,
// prices each step by the mode at its start instant, and merges adjacent
// steps sharing mode and rate. Rates are per hour; a step is billed
// pro-rata (minutes x rate / 60). Rounding happens only on the output
// fields, after merging.
func ComputeBill(checkin, checkout time.Time, rateNormal, rateSpecial float64, resolver *Resolver) Bill {
	type rawSegment struct {
		from, to time.Time
		minutes  float64
		mode     string
		rate     float64
		amount   float64
	}

	var merged []rawSegment
	cursor := checkin
	for cursor.Before(checkout) {
		next := cursor.Add(step)
		if next.After(checkout) {
			next = checkout
		}

		mode := RateModeNormal
		rate := rateNormal
		if resolver.Resolve(cursor).Special {
			mode = RateModeSpecial
			rate = rateSpecial
		}

		minutes := next.Sub(cursor).Minutes()
		amount := minutes * rate / 60

		n := len(merged)
		if n > 0 && merged[n-1].mode == mode && merged[n-1].rate == rate && merged[n-1].to.Equal(cursor) {
			merged[n-1].to = next
			merged[n-1].minutes += minutes
			merged[n-1].amount += amount
		} else {
			merged = append(merged, rawSegment{
				from:    cursor,
				to:      next,
				minutes: minutes,
				mode:    mode,
				rate:    rate,
				amount:  amount,
			})
		}

		cursor = next
	}

	bill := Bill{Breakdown: make([]Segment, len(merged))}
	total := 0.0
	for i, s := range merged {
		amount := Round2(s.amount)
		bill.Breakdown[i] = Segment{
			From:    s.from,
			To:      s.to,
			Minutes: s.minutes,
			Hours:   Round4(s.minutes / 60),
			Mode:    s.mode,
			Rate:    s.rate,
			Amount:  amount,
		}
		total += amount
	}
	bill.TotalAmount = Round2(total)
	return bill
}

// Round2 rounds to 2 decimal places (currency amounts)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places (fractional hours)
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
