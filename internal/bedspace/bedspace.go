// Package bedspace derives bed availability from room, allocation and
// attendee snapshots. Every function is pure: availability is always
// recomputed from the facts, never read from a stored counter.
package bedspace

import (
	"fmt"
	"strings"

	"github.com/cyberduce/summit-api/internal/domain"
)

// AvailableBedsInRoom returns how many of the room's beds no zone has
// claimed yet. A room with no allocations has all of its beds available.
func AvailableBedsInRoom(room domain.Room, allocations []domain.BedAllocation) int {
	allocated := 0
	for _, a := range allocations {
		if a.RoomID == room.ID {
			allocated += a.BedsAllocated
		}
	}

	return room.TotalBeds - allocated
}

// AvailableBedsForZone returns how many beds remain for a zone in a room:
// the zone's allocation minus the attendees of that zone already placed
// there. Floored at zero so a momentarily inconsistent snapshot (occupancy
// ahead of allocation) never yields a negative count.
func AvailableBedsForZone(zone string, room domain.Room, allocations []domain.BedAllocation, attendees []domain.Attendee) int {
	allocated := 0
	for _, a := range allocations {
		if a.Zone == zone && a.RoomID == room.ID {
			allocated += a.BedsAllocated
		}
	}

	occupied := 0
	for _, att := range attendees {
		if att.Zone == zone && att.Bedspace == room.Name {
			occupied++
		}
	}

	if allocated < occupied {
		return 0
	}

	return allocated - occupied
}

// EligibleRooms lists the rooms a registrant of the zone may pick: those
// with at least one free zone bed.
func EligibleRooms(zone string, rooms []domain.Room, allocations []domain.BedAllocation, attendees []domain.Attendee) []domain.ZoneRoomOption {
	options := make([]domain.ZoneRoomOption, 0)
	for _, room := range rooms {
		free := AvailableBedsForZone(zone, room, allocations, attendees)
		if free > 0 {
			options = append(options, domain.ZoneRoomOption{
				RoomID:        room.ID,
				RoomName:      room.Name,
				AvailableBeds: free,
			})
		}
	}

	return options
}

// ZoneSummaries builds the per-zone dashboard rows. Occupancy counts every
// attendee of the zone, allocated or not, matching how the admin dashboard
// reads utilization.
func ZoneSummaries(zones []string, rooms []domain.Room, allocations []domain.BedAllocation, attendees []domain.Attendee) []domain.ZoneSummary {
	roomNames := make(map[uint]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.Name
	}

	summaries := make([]domain.ZoneSummary, 0, len(zones))
	for _, zone := range zones {
		totalAllocated := 0
		var labels []string
		for _, a := range allocations {
			if a.Zone != zone {
				continue
			}
			totalAllocated += a.BedsAllocated
			name, ok := roomNames[a.RoomID]
			if !ok {
				name = "Unknown Room"
			}
			labels = append(labels, fmt.Sprintf("%s (%d beds)", name, a.BedsAllocated))
		}

		occupied := 0
		for _, att := range attendees {
			if att.Zone == zone {
				occupied++
			}
		}

		available := totalAllocated - occupied
		if available < 0 {
			available = 0
		}

		percentage := 0
		if totalAllocated > 0 {
			percentage = roundPercent(occupied, totalAllocated)
		}

		allocatedRooms := "No allocations"
		if len(labels) > 0 {
			allocatedRooms = strings.Join(labels, ", ")
		}

		summaries = append(summaries, domain.ZoneSummary{
			Zone:               zone,
			AllocatedRooms:     allocatedRooms,
			TotalAllocatedBeds: totalAllocated,
			OccupiedBeds:       occupied,
			AvailableBeds:      available,
			PercentageUsed:     percentage,
		})
	}

	return summaries
}

// OccupancyBreakdown aggregates total/occupied/available/unallocated beds
// across the whole venue.
func OccupancyBreakdown(rooms []domain.Room, allocations []domain.BedAllocation, attendees []domain.Attendee) domain.OccupancyBreakdown {
	totalBeds := 0
	for _, r := range rooms {
		totalBeds += r.TotalBeds
	}

	totalAllocated := 0
	for _, a := range allocations {
		totalAllocated += a.BedsAllocated
	}

	occupied := len(attendees)
	available := totalAllocated - occupied
	if available < 0 {
		available = 0
	}

	return domain.OccupancyBreakdown{
		TotalAttendees:     len(attendees),
		TotalBeds:          totalBeds,
		TotalAllocatedBeds: totalAllocated,
		OccupiedBeds:       occupied,
		AvailableBeds:      available,
		UnallocatedBeds:    totalBeds - totalAllocated,
	}
}

// RoomUtilization builds the per-room rows of the bed availability report.
func RoomUtilization(rooms []domain.Room, allocations []domain.BedAllocation) []domain.RoomAvailability {
	out := make([]domain.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		allocated := room.TotalBeds - AvailableBedsInRoom(room, allocations)
		percent := 0
		if room.TotalBeds > 0 {
			percent = roundPercent(allocated, room.TotalBeds)
		}
		out = append(out, domain.RoomAvailability{
			Room:          room,
			AllocatedBeds: allocated,
			AvailableBeds: room.TotalBeds - allocated,
			PercentUsed:   percent,
		})
	}

	return out
}

func roundPercent(part, whole int) int {
	return int(float64(part)/float64(whole)*100 + 0.5)
}
