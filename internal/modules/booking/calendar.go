package booking

import (
	"fmt"
	"time"

	"zenchair/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"

	// Slots are generated on a fixed 30-minute grid.
	slotStep = 30 * time.Minute

	// Bookings may be placed from today up to this many days ahead.
	horizonDays = 7
)

// SlotTemplate computes the candidate time slots for a shop on a date,
// before existing bookings are subtracted. Pure function.
//
// A vacation date or a closed (or missing) working-hours entry yields an
// empty template. Otherwise slots start at open time and step by 30
// minutes; the last slot starts strictly before close time. Malformed
// open/close strings are a shop configuration error and are propagated.
func SlotTemplate(shop *domain.Shop, date string) ([]string, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if shop.OnVacation(date) {
		return []string{}, nil
	}

	// time.Weekday counts from Sunday; working hours count from Monday.
	weekday := (int(day.Weekday()) + 6) % 7

	wh := shop.HoursFor(weekday)
	if wh == nil || wh.IsClosed {
		return []string{}, nil
	}

	open, err := time.Parse(slotLayout, wh.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid open time %q for shop %s: %w", wh.OpenTime, shop.ID, err)
	}
	close, err := time.Parse(slotLayout, wh.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid close time %q for shop %s: %w", wh.CloseTime, shop.ID, err)
	}

	slots := []string{}
	for cur := open; cur.Before(close); cur = cur.Add(slotStep) {
		slots = append(slots, cur.Format(slotLayout))
	}
	return slots, nil
}

// subtractOccupied filters the template down to free slots, preserving
// template order.
func subtractOccupied(template, occupied []string) []string {
	if len(occupied) == 0 {
		return template
	}

	taken := make(map[string]bool, len(occupied))
	for _, t := range occupied {
		taken[t] = true
	}

	free := []string{}
	for _, s := range template {
		if !taken[s] {
			free = append(free, s)
		}
	}
	return free
}

// withinHorizon reports whether the date falls in [today, today+7] with
// both bounds inclusive. "Today" is the UTC calendar date.
func withinHorizon(date string, now time.Time) (bool, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, err
	}

	today, _ := time.Parse(dateLayout, now.UTC().Format(dateLayout))
	return !d.Before(today) && !d.After(today.AddDate(0, 0, horizonDays)), nil
}
