package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var mobileRegex = regexp.MustCompile(`^\d{10}$`)

type RegisterAttendeeRequest struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Zone        string `json:"zone"`
	RoomID      uint   `json:"room_id"`
}

func (req *RegisterAttendeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Mobile, validation.Required, validation.Match(mobileRegex)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Designation, validation.Required),
		validation.Field(&req.Zone, validation.Required),
		validation.Field(&req.RoomID, validation.Required),
	)
}

type CheckinRequest struct {
	Mobile string `json:"mobile"`
	Day    int    `json:"day"`
}

func (req *CheckinRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Mobile, validation.Required, validation.Match(mobileRegex)),
		validation.Field(&req.Day, validation.Required, validation.In(1, 2)),
	)
}

type AmendAttendeeRequest struct {
	Day1Attendance *bool   `json:"day1_attendance"`
	Day1Schedule   *string `json:"day1_schedule"`
	Day2Attendance *bool   `json:"day2_attendance"`
	Day2Schedule   *string `json:"day2_schedule"`
}

func (req *AmendAttendeeRequest) Validate() error {
	if req.Day1Attendance == nil && req.Day1Schedule == nil &&
		req.Day2Attendance == nil && req.Day2Schedule == nil {
		return errEmptyAmend
	}

	return nil
}
