package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEmptyAmend = errors.New("at least one field must be provided")

type CreateRoomRequest struct {
	Name      string `json:"name"`
	TotalBeds int    `json:"total_beds"`
}

func (req *CreateRoomRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.TotalBeds, validation.Required, validation.Min(1)),
	)
}

type CreateAllocationRequest struct {
	Zone          string `json:"zone"`
	RoomID        uint   `json:"room_id"`
	BedsAllocated int    `json:"beds_allocated"`
}

func (req *CreateAllocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Zone, validation.Required),
		validation.Field(&req.RoomID, validation.Required),
		validation.Field(&req.BedsAllocated, validation.Required, validation.Min(1)),
	)
}
