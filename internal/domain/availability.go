package domain

import "time"

// AvailabilityStatus is the bookability of a calendar date
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityHold        AvailabilityStatus = "hold"
	AvailabilityBooked      AvailabilityStatus = "booked"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityPast        AvailabilityStatus = "past"
)

// IsBookable returns true only for available dates
func (s AvailabilityStatus) IsBookable() bool {
	return s == AvailabilityAvailable
}

// Calendar is the static availability configuration
type Calendar struct {
	Location        *time.Location
	AllowedWeekdays map[time.Weekday]struct{}
	Booked          map[string]struct{} // ISO-даты YYYY-MM-DD
	Hold            map[string]struct{}
}

// DefaultEventWeekdays are Thursday through Saturday
var DefaultEventWeekdays = []time.Weekday{time.Thursday, time.Friday, time.Saturday}

// NewCalendar builds a calendar from lists of weekdays and ISO dates
// A nil location means UTC
func NewCalendar(loc *time.Location, weekdays []time.Weekday, booked, hold []string) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	cal := Calendar{
		Location:        loc,
		AllowedWeekdays: make(map[time.Weekday]struct{}, len(weekdays)),
		Booked:          make(map[string]struct{}, len(booked)),
		Hold:            make(map[string]struct{}, len(hold)),
	}
	for _, d := range weekdays {
		cal.AllowedWeekdays[d] = struct{}{}
	}
	for _, iso := range booked {
		cal.Booked[iso] = struct{}{}
	}
	for _, iso := range hold {
		cal.Hold[iso] = struct{}{}
	}
	return cal
}

// DayAvailability is the status of one date
type DayAvailability struct {
	Date   time.Time
	Status AvailabilityStatus
}
