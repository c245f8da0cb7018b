package domain

import "time"

// WorkingHour describes one weekday of a shop's schedule.
// Day uses 0=Monday .. 6=Sunday; times are wall-clock "HH:MM".
type WorkingHour struct {
	Day       int    `json:"day"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

type Shop struct {
	ID            string        `json:"id"`
	BarberID      string        `json:"barber_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Rating        float64       `json:"rating"`
	TotalReviews  int           `json:"total_reviews"`
	GalleryImages []string      `json:"gallery_images"`
	WorkingHours  []WorkingHour `json:"working_hours"`
	IsOpen        bool          `json:"is_open"`
	VacationDates []string      `json:"vacation_dates"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// HoursFor returns the working-hours entry for a weekday, or nil when no
// entry exists (equivalent to closed).
func (s *Shop) HoursFor(day int) *WorkingHour {
	for i := range s.WorkingHours {
		if s.WorkingHours[i].Day == day {
			return &s.WorkingHours[i]
		}
	}
	return nil
}

// OnVacation reports whether the shop accepts no bookings on the date
// ("YYYY-MM-DD") regardless of working hours.
func (s *Shop) OnVacation(date string) bool {
	for _, d := range s.VacationDates {
		if d == date {
			return true
		}
	}
	return false
}
