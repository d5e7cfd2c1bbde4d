package domain

import "time"

type Room struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	TotalBeds int       `json:"total_beds"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoomAvailability is a room plus its derived bed accounting. AvailableBeds
// is always computed from allocations, never stored.
type RoomAvailability struct {
	Room
	AllocatedBeds int `json:"allocated_beds"`
	AvailableBeds int `json:"available_beds"`
	PercentUsed   int `json:"percent_used"`
}

// ZoneRoomOption is a room offered to a registrant of a given zone,
// with the zone's remaining beds in that room.
type ZoneRoomOption struct {
	RoomID        uint   `json:"room_id"`
	RoomName      string `json:"room_name"`
	AvailableBeds int    `json:"available_beds"`
}
