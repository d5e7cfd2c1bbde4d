package bedspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyberduce/summit-api/internal/domain"
)

func hostelA() domain.Room {
	return domain.Room{ID: 1, Name: "Hostel A", TotalBeds: 10}
}

func jammuAllocation(beds int) domain.BedAllocation {
	return domain.BedAllocation{ID: 1, Zone: "Jammu & Kashmir", RoomID: 1, RoomName: "Hostel A", BedsAllocated: beds}
}

func jammuAttendees(n int) []domain.Attendee {
	out := make([]domain.Attendee, n)
	for i := range out {
		out[i] = domain.Attendee{Zone: "Jammu & Kashmir", Bedspace: "Hostel A"}
	}

	return out
}

func TestAvailableBedsInRoom(t *testing.T) {
	room := hostelA()

	t.Run("no allocations leaves all beds available", func(t *testing.T) {
		assert.Equal(t, 10, AvailableBedsInRoom(room, nil))
	})

	t.Run("allocations for the room are subtracted", func(t *testing.T) {
		allocations := []domain.BedAllocation{
			jammuAllocation(6),
			{ID: 2, Zone: "Delhi", RoomID: 1, BedsAllocated: 2},
			{ID: 3, Zone: "Delhi", RoomID: 99, BedsAllocated: 50}, // other room, ignored
		}
		assert.Equal(t, 2, AvailableBedsInRoom(room, allocations))
	})

	t.Run("second allocation exceeding remainder is detectable", func(t *testing.T) {
		// Hostel A has 6 of 10 beds allocated; a request for 5 more must
		// fail the availability check.
		allocations := []domain.BedAllocation{jammuAllocation(6)}
		assert.Less(t, AvailableBedsInRoom(room, allocations), 5)
	})
}

func TestAvailableBedsForZone(t *testing.T) {
	room := hostelA()
	allocations := []domain.BedAllocation{jammuAllocation(6)}

	t.Run("allocation minus occupancy", func(t *testing.T) {
		got := AvailableBedsForZone("Jammu & Kashmir", room, allocations, jammuAttendees(4))
		assert.Equal(t, 2, got)
	})

	t.Run("floored at zero when occupancy races ahead", func(t *testing.T) {
		got := AvailableBedsForZone("Jammu & Kashmir", room, allocations, jammuAttendees(9))
		assert.Equal(t, 0, got)
	})

	t.Run("zone without allocation has nothing available", func(t *testing.T) {
		got := AvailableBedsForZone("Delhi", room, allocations, nil)
		assert.Equal(t, 0, got)
	})

	t.Run("occupancy in other rooms does not count", func(t *testing.T) {
		attendees := []domain.Attendee{
			{Zone: "Jammu & Kashmir", Bedspace: "Hostel B"},
			{Zone: "Delhi", Bedspace: "Hostel A"},
		}
		got := AvailableBedsForZone("Jammu & Kashmir", room, allocations, attendees)
		assert.Equal(t, 6, got)
	})
}

func TestEligibleRooms(t *testing.T) {
	rooms := []domain.Room{
		hostelA(),
		{ID: 2, Name: "Hostel B", TotalBeds: 4},
	}
	allocations := []domain.BedAllocation{jammuAllocation(6)}

	t.Run("only rooms with free zone beds are offered", func(t *testing.T) {
		options := EligibleRooms("Jammu & Kashmir", rooms, allocations, jammuAttendees(4))
		assert.Len(t, options, 1)
		assert.Equal(t, uint(1), options[0].RoomID)
		assert.Equal(t, 2, options[0].AvailableBeds)
	})

	t.Run("a fully occupied room is excluded", func(t *testing.T) {
		options := EligibleRooms("Jammu & Kashmir", rooms, allocations, jammuAttendees(6))
		assert.Empty(t, options)
	})
}

func TestZoneSummaries(t *testing.T) {
	rooms := []domain.Room{hostelA()}
	allocations := []domain.BedAllocation{jammuAllocation(6)}
	attendees := jammuAttendees(4)
	zones := []string{"Jammu & Kashmir", "Delhi"}

	summaries := ZoneSummaries(zones, rooms, allocations, attendees)
	assert.Len(t, summaries, 2)

	jammu := summaries[0]
	assert.Equal(t, "Hostel A (6 beds)", jammu.AllocatedRooms)
	assert.Equal(t, 6, jammu.TotalAllocatedBeds)
	assert.Equal(t, 4, jammu.OccupiedBeds)
	assert.Equal(t, 2, jammu.AvailableBeds)
	assert.Equal(t, 67, jammu.PercentageUsed)

	delhi := summaries[1]
	assert.Equal(t, "No allocations", delhi.AllocatedRooms)
	assert.Equal(t, 0, delhi.TotalAllocatedBeds)
	assert.Equal(t, 0, delhi.PercentageUsed) // no divide-by-zero

	t.Run("idempotent on an unchanged snapshot", func(t *testing.T) {
		again := ZoneSummaries(zones, rooms, allocations, attendees)
		assert.Equal(t, summaries, again)
	})

	t.Run("allocation referencing a deleted room is labeled unknown", func(t *testing.T) {
		orphaned := []domain.BedAllocation{{Zone: "Delhi", RoomID: 42, BedsAllocated: 3}}
		got := ZoneSummaries([]string{"Delhi"}, rooms, orphaned, nil)
		assert.Equal(t, "Unknown Room (3 beds)", got[0].AllocatedRooms)
	})
}

func TestOccupancyBreakdown(t *testing.T) {
	rooms := []domain.Room{hostelA(), {ID: 2, Name: "Hostel B", TotalBeds: 5}}
	allocations := []domain.BedAllocation{jammuAllocation(6)}
	attendees := jammuAttendees(4)

	got := OccupancyBreakdown(rooms, allocations, attendees)
	assert.Equal(t, 4, got.TotalAttendees)
	assert.Equal(t, 15, got.TotalBeds)
	assert.Equal(t, 6, got.TotalAllocatedBeds)
	assert.Equal(t, 4, got.OccupiedBeds)
	assert.Equal(t, 2, got.AvailableBeds)
	assert.Equal(t, 9, got.UnallocatedBeds)

	t.Run("available floored at zero", func(t *testing.T) {
		crowded := OccupancyBreakdown(rooms, allocations, jammuAttendees(8))
		assert.Equal(t, 0, crowded.AvailableBeds)
	})
}

func TestRoomUtilization(t *testing.T) {
	rooms := []domain.Room{hostelA(), {ID: 2, Name: "Hostel B", TotalBeds: 4}}
	allocations := []domain.BedAllocation{jammuAllocation(6)}

	rows := RoomUtilization(rooms, allocations)
	assert.Len(t, rows, 2)

	assert.Equal(t, 6, rows[0].AllocatedBeds)
	assert.Equal(t, 4, rows[0].AvailableBeds)
	assert.Equal(t, 60, rows[0].PercentUsed)

	assert.Equal(t, 0, rows[1].AllocatedBeds)
	assert.Equal(t, 4, rows[1].AvailableBeds)
	assert.Equal(t, 0, rows[1].PercentUsed)
}
