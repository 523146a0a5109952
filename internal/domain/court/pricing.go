package court

import (
	"sort"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/slot"
)

type PricingRule struct {
	Name     string
	Days     []time.Weekday
	Start    slot.ClockTime
	End      slot.ClockTime
	Price    booking.Money
	Priority int
}

func (r PricingRule) appliesOn(day time.Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

func (r PricingRule) endMinutes() int {
	if r.End.IsMidnight() {
		return slot.MinutesPerDay
	}
	return r.End.Minutes()
}

// Matches reports whether the rule prices a slot starting at t on day.
// The range is half-open: Start <= t < End.
func (r PricingRule) Matches(day time.Weekday, t slot.ClockTime) bool {
	return r.appliesOn(day) && r.Start.Minutes() <= t.Minutes() && t.Minutes() < r.endMinutes()
}

// PriceBook holds one court's active rules, highest priority first.
type PriceBook struct {
	rules []PricingRule
}

func NewPriceBook(rules []PricingRule) PriceBook {
	sorted := make([]PricingRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return PriceBook{rules: sorted}
}

// PriceAt returns the first matching rule's price. ok is false when no rule
// matches; callers must treat that as unpriced rather than free.
func (b PriceBook) PriceAt(day time.Weekday, t slot.ClockTime) (price booking.Money, ok bool) {
	for _, r := range b.rules {
		if r.Matches(day, t) {
			return r.Price, true
		}
	}
	return booking.Money{}, false
}

func (b PriceBook) Len() int {
	return len(b.rules)
}
