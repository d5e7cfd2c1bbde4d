package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository"
)

type fakeRegistrationAttendeeRepo struct {
	registerErr error
	registered  []domain.Attendee
	attendees   []domain.Attendee
}

func (r *fakeRegistrationAttendeeRepo) Register(_ context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	if r.registerErr != nil {
		return domain.Attendee{}, r.registerErr
	}

	attendee.ID = uint(len(r.registered) + 1)
	r.registered = append(r.registered, attendee)

	return attendee, nil
}

func (r *fakeRegistrationAttendeeRepo) FindAll(_ context.Context, _, zone string, _ *time.Time) ([]domain.Attendee, error) {
	var result []domain.Attendee
	for _, a := range r.attendees {
		if zone == "" || a.Zone == zone {
			result = append(result, a)
		}
	}

	return result, nil
}

type fakeRegistrationRoomRepo struct {
	rooms       []domain.Room
	allocations []domain.BedAllocation
}

func (r *fakeRegistrationRoomRepo) FindAll(_ context.Context) ([]domain.Room, error) {
	return r.rooms, nil
}

func (r *fakeRegistrationRoomRepo) FindAllocations(_ context.Context) ([]domain.BedAllocation, error) {
	return r.allocations, nil
}

func TestRegistrationService_Register(t *testing.T) {
	t.Run("assigns a registration code", func(t *testing.T) {
		attendeeRepo := &fakeRegistrationAttendeeRepo{}
		svc := NewRegistrationService(attendeeRepo, &fakeRegistrationRoomRepo{})

		created, err := svc.Register(context.Background(), domain.Attendee{
			Name:   "Asha Rao",
			Mobile: "9876543210",
			Zone:   "Karnataka",
			RoomID: 1,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.RegistrationCode)
		require.Len(t, attendeeRepo.registered, 1)
	})

	t.Run("rejects an unknown zone before hitting the repository", func(t *testing.T) {
		attendeeRepo := &fakeRegistrationAttendeeRepo{}
		svc := NewRegistrationService(attendeeRepo, &fakeRegistrationRoomRepo{})

		_, err := svc.Register(context.Background(), domain.Attendee{Zone: "Atlantis"})

		assert.ErrorIs(t, err, ErrInvalidZone)
		assert.Empty(t, attendeeRepo.registered)
	})

	t.Run("passes through duplicate mobile and capacity errors", func(t *testing.T) {
		for _, sentinel := range []error{repository.ErrMobileExists, repository.ErrNoZoneBeds, repository.ErrRoomNotFound} {
			attendeeRepo := &fakeRegistrationAttendeeRepo{registerErr: sentinel}
			svc := NewRegistrationService(attendeeRepo, &fakeRegistrationRoomRepo{})

			_, err := svc.Register(context.Background(), domain.Attendee{Zone: "Delhi"})

			assert.ErrorIs(t, err, sentinel)
		}
	})
}

func TestRegistrationService_EligibleRooms(t *testing.T) {
	roomRepo := &fakeRegistrationRoomRepo{
		rooms: []domain.Room{
			{ID: 1, Name: "Hostel A", TotalBeds: 10},
			{ID: 2, Name: "Hostel B", TotalBeds: 5},
		},
		allocations: []domain.BedAllocation{
			{ID: 1, Zone: "Delhi", RoomID: 1, BedsAllocated: 4},
			{ID: 2, Zone: "Delhi", RoomID: 2, BedsAllocated: 2},
		},
	}
	attendeeRepo := &fakeRegistrationAttendeeRepo{
		attendees: []domain.Attendee{
			{ID: 1, Zone: "Delhi", RoomID: 2, Bedspace: "Hostel B"},
			{ID: 2, Zone: "Delhi", RoomID: 2, Bedspace: "Hostel B"},
		},
	}
	svc := NewRegistrationService(attendeeRepo, roomRepo)

	t.Run("only rooms with free beds for the zone", func(t *testing.T) {
		options, err := svc.EligibleRooms(context.Background(), "Delhi")

		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, uint(1), options[0].RoomID)
		assert.Equal(t, 4, options[0].AvailableBeds)
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := svc.EligibleRooms(context.Background(), "Atlantis")

		assert.ErrorIs(t, err, ErrInvalidZone)
	})
}

func TestRegistrationService_Zones(t *testing.T) {
	svc := NewRegistrationService(&fakeRegistrationAttendeeRepo{}, &fakeRegistrationRoomRepo{})

	zones := svc.Zones()

	assert.Len(t, zones, 9)
	assert.Contains(t, zones, "Jammu & Kashmir")
	assert.Contains(t, zones, "Kerala")
}
