package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cyberduce/summit-api/internal/bedspace"
	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository"
)

var (
	ErrMobileExists = repository.ErrMobileExists
	ErrNoZoneBeds   = repository.ErrNoZoneBeds
)

type RegistrationAttendeeRepository interface {
	Register(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	FindAll(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error)
}

type RegistrationRoomRepository interface {
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindAllocations(ctx context.Context) ([]domain.BedAllocation, error)
}

type RegistrationService struct {
	attendeeRepo RegistrationAttendeeRepository
	roomRepo     RegistrationRoomRepository
}

func NewRegistrationService(attendeeRepo RegistrationAttendeeRepository, roomRepo RegistrationRoomRepository) *RegistrationService {
	return &RegistrationService{
		attendeeRepo: attendeeRepo,
		roomRepo:     roomRepo,
	}
}

// Register creates an attendee. The zone must be known and the chosen room
// must still have a free bed for the zone; the repository re-checks the
// latter under lock, so passing the eligibility gate here is advisory only.
func (s *RegistrationService) Register(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	if !domain.IsZone(attendee.Zone) {
		return domain.Attendee{}, ErrInvalidZone
	}

	attendee.RegistrationCode = uuid.NewString()

	created, err := s.attendeeRepo.Register(ctx, attendee)
	if err != nil {
		if errors.Is(err, repository.ErrMobileExists) ||
			errors.Is(err, repository.ErrNoZoneBeds) ||
			errors.Is(err, repository.ErrRoomNotFound) {
			return domain.Attendee{}, err
		}

		return domain.Attendee{}, fmt.Errorf("s.attendeeRepo.Register -> %w", err)
	}

	return created, nil
}

// EligibleRooms lists the rooms offered to a registrant of the zone:
// only rooms with at least one unoccupied allocated bed for that zone.
func (s *RegistrationService) EligibleRooms(ctx context.Context, zone string) ([]domain.ZoneRoomOption, error) {
	if !domain.IsZone(zone) {
		return nil, ErrInvalidZone
	}

	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAll -> %w", err)
	}

	allocations, err := s.roomRepo.FindAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAllocations -> %w", err)
	}

	attendees, err := s.attendeeRepo.FindAll(ctx, "", zone, nil)
	if err != nil {
		return nil, fmt.Errorf("s.attendeeRepo.FindAll -> %w", err)
	}

	return bedspace.EligibleRooms(zone, rooms, allocations, attendees), nil
}

func (s *RegistrationService) Zones() []string {
	return domain.Zones
}
