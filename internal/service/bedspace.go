package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cyberduce/summit-api/internal/bedspace"
	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository"
)

var (
	ErrRoomNotFound       = repository.ErrRoomNotFound
	ErrAllocationNotFound = repository.ErrAllocationNotFound
	ErrInsufficientBeds   = repository.ErrInsufficientBeds
	ErrRoomOccupied       = repository.ErrRoomOccupied
	ErrAllocationOccupied = repository.ErrAllocationOccupied
	ErrInvalidZone        = errors.New("unknown zone")
)

type RoomRepository interface {
	Create(ctx context.Context, room domain.Room) (domain.Room, error)
	FindByID(ctx context.Context, id uint) (domain.Room, error)
	FindAll(ctx context.Context) ([]domain.Room, error)
	Delete(ctx context.Context, id uint) error
	Allocate(ctx context.Context, zone string, roomID uint, beds int) (domain.BedAllocation, error)
	FindAllocations(ctx context.Context) ([]domain.BedAllocation, error)
	FindAllocationByID(ctx context.Context, id uint) (domain.BedAllocation, error)
	RemoveAllocation(ctx context.Context, id uint) error
}

type BedspaceAttendeeRepository interface {
	FindAll(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error)
}

// BedspaceService owns rooms and allocations, and answers every
// availability question by re-deriving from a fresh snapshot.
type BedspaceService struct {
	roomRepo     RoomRepository
	attendeeRepo BedspaceAttendeeRepository
}

func NewBedspaceService(roomRepo RoomRepository, attendeeRepo BedspaceAttendeeRepository) *BedspaceService {
	return &BedspaceService{
		roomRepo:     roomRepo,
		attendeeRepo: attendeeRepo,
	}
}

func (s *BedspaceService) CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error) {
	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		return domain.Room{}, fmt.Errorf("s.roomRepo.Create -> %w", err)
	}

	return created, nil
}

// ListRooms returns every room with its derived allocation figures.
func (s *BedspaceService) ListRooms(ctx context.Context) ([]domain.RoomAvailability, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAll -> %w", err)
	}

	allocations, err := s.roomRepo.FindAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAllocations -> %w", err)
	}

	return bedspace.RoomUtilization(rooms, allocations), nil
}

func (s *BedspaceService) DeleteRoom(ctx context.Context, id uint) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) || errors.Is(err, repository.ErrRoomOccupied) {
			return err
		}

		return fmt.Errorf("s.roomRepo.Delete -> %w", err)
	}

	return nil
}

func (s *BedspaceService) Allocate(ctx context.Context, zone string, roomID uint, beds int) (domain.BedAllocation, error) {
	if !domain.IsZone(zone) {
		return domain.BedAllocation{}, ErrInvalidZone
	}

	allocation, err := s.roomRepo.Allocate(ctx, zone, roomID, beds)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) || errors.Is(err, repository.ErrInsufficientBeds) {
			return domain.BedAllocation{}, err
		}

		return domain.BedAllocation{}, fmt.Errorf("s.roomRepo.Allocate -> %w", err)
	}

	return allocation, nil
}

func (s *BedspaceService) ListAllocations(ctx context.Context) ([]domain.BedAllocation, error) {
	allocations, err := s.roomRepo.FindAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAllocations -> %w", err)
	}

	return allocations, nil
}

func (s *BedspaceService) RemoveAllocation(ctx context.Context, id uint) error {
	if err := s.roomRepo.RemoveAllocation(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAllocationNotFound) || errors.Is(err, repository.ErrAllocationOccupied) {
			return err
		}

		return fmt.Errorf("s.roomRepo.RemoveAllocation -> %w", err)
	}

	return nil
}

// ZoneStats builds the per-zone dashboard summary from a fresh snapshot
// of all three collections.
func (s *BedspaceService) ZoneStats(ctx context.Context) ([]domain.ZoneSummary, error) {
	rooms, allocations, attendees, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return bedspace.ZoneSummaries(domain.Zones, rooms, allocations, attendees), nil
}

func (s *BedspaceService) Summary(ctx context.Context) (domain.OccupancyBreakdown, error) {
	rooms, allocations, attendees, err := s.snapshot(ctx)
	if err != nil {
		return domain.OccupancyBreakdown{}, err
	}

	return bedspace.OccupancyBreakdown(rooms, allocations, attendees), nil
}

func (s *BedspaceService) snapshot(ctx context.Context) ([]domain.Room, []domain.BedAllocation, []domain.Attendee, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("s.roomRepo.FindAll -> %w", err)
	}

	allocations, err := s.roomRepo.FindAllocations(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("s.roomRepo.FindAllocations -> %w", err)
	}

	attendees, err := s.attendeeRepo.FindAll(ctx, "", "", nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("s.attendeeRepo.FindAll -> %w", err)
	}

	return rooms, allocations, attendees, nil
}
