package domain

import "time"

// BedAllocation grants a share of a room's beds to a zone. At most one
// allocation exists per (zone, room) pair; repeated grants merge into it.
type BedAllocation struct {
	ID            uint      `json:"id"`
	Zone          string    `json:"zone"`
	RoomID        uint      `json:"room_id"`
	RoomName      string    `json:"room_name"`
	BedsAllocated int       `json:"beds_allocated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
