package domain

// Zones are the participating regions. The list is fixed for the summit;
// allocations and registrations are validated against it.
var Zones = []string{
	"Jammu & Kashmir",
	"Rajasthan",
	"Delhi",
	"Bihar",
	"West Bengal",
	"Maharashtra",
	"Andhra Pradesh",
	"Karnataka",
	"Kerala",
}

func IsZone(name string) bool {
	for _, z := range Zones {
		if z == name {
			return true
		}
	}

	return false
}

// ZoneSummary is the per-zone bedspace dashboard row.
type ZoneSummary struct {
	Zone               string `json:"zone"`
	AllocatedRooms     string `json:"allocated_rooms"`
	TotalAllocatedBeds int    `json:"total_allocated_beds"`
	OccupiedBeds       int    `json:"occupied_beds"`
	AvailableBeds      int    `json:"available_beds"`
	PercentageUsed     int    `json:"percentage_used"`
}

// OccupancyBreakdown aggregates bed usage across all rooms and zones.
type OccupancyBreakdown struct {
	TotalAttendees     int `json:"total_attendees"`
	TotalBeds          int `json:"total_beds"`
	TotalAllocatedBeds int `json:"total_allocated_beds"`
	OccupiedBeds       int `json:"occupied_beds"`
	AvailableBeds      int `json:"available_beds"`
	UnallocatedBeds    int `json:"unallocated_beds"`
}
