package domain

import "time"

// Day schedule tracks which programme an attendee follows on a summit day.
const (
	ScheduleMorning   = "morning"
	ScheduleAfternoon = "afternoon"
	ScheduleFullDay   = "full_day"
)

var Schedules = []string{ScheduleMorning, ScheduleAfternoon, ScheduleFullDay}

func IsSchedule(s string) bool {
	for _, known := range Schedules {
		if s == known {
			return true
		}
	}

	return false
}

type Attendee struct {
	ID               uint       `json:"id"`
	RegistrationCode string     `json:"registration_code"`
	Name             string     `json:"name"`
	Mobile           string     `json:"mobile"`
	Email            string     `json:"email"`
	Designation      string     `json:"designation"`
	Zone             string     `json:"zone"`
	Bedspace         string     `json:"bedspace"` // room name, denormalized for occupancy counting
	RoomID           uint       `json:"room_id"`
	Present          bool       `json:"present"`
	CheckinTime      *time.Time `json:"checkin_time"`
	Day1Attendance   bool       `json:"day1_attendance"`
	Day1Time         *time.Time `json:"day1_time"`
	Day1Schedule     string     `json:"day1_schedule"`
	Day2Attendance   bool       `json:"day2_attendance"`
	Day2Time         *time.Time `json:"day2_time"`
	Day2Schedule     string     `json:"day2_schedule"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AttendedDays lists the summit days the attendee actually checked in for.
func (a Attendee) AttendedDays() []string {
	var days []string
	if a.Day1Attendance {
		days = append(days, "Day 1")
	}
	if a.Day2Attendance {
		days = append(days, "Day 2")
	}

	return days
}

// Certificate is the data backing a participation certificate. Rendering
// is the client's concern.
type Certificate struct {
	Name         string   `json:"name"`
	Designation  string   `json:"designation"`
	Zone         string   `json:"zone"`
	AttendedDays []string `json:"attended_days"`
}
