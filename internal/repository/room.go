package repository

import (
	"context"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository/dao"
)

var (
	ErrRoomNotFound       = dao.ErrRoomNotFound
	ErrAllocationNotFound = dao.ErrAllocationNotFound
	ErrInsufficientBeds   = dao.ErrInsufficientBeds
	ErrRoomOccupied       = dao.ErrRoomOccupied
	ErrAllocationOccupied = dao.ErrAllocationOccupied
)

type RoomDAO interface {
	Insert(ctx context.Context, room dao.Room) (dao.Room, error)
	FindByID(ctx context.Context, id uint) (dao.Room, error)
	FindAll(ctx context.Context) ([]dao.Room, error)
	Delete(ctx context.Context, id uint) error
	Allocate(ctx context.Context, zone string, roomID uint, beds int) (dao.BedAllocation, error)
	FindAllocations(ctx context.Context) ([]dao.BedAllocation, error)
	FindAllocationByID(ctx context.Context, id uint) (dao.BedAllocation, error)
	RemoveAllocation(ctx context.Context, id uint) error
}

type RoomRepository struct {
	dao RoomDAO
}

func NewRoomRepository(dao RoomDAO) *RoomRepository {
	return &RoomRepository{
		dao: dao,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	created, err := r.dao.Insert(ctx, dao.Room{
		Name:      room.Name,
		TotalBeds: room.TotalBeds,
	})
	if err != nil {
		return domain.Room{}, err
	}

	return r.roomDaoToDomain(created), nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uint) (domain.Room, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}

	return r.roomDaoToDomain(found), nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]domain.Room, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, len(found))
	for i, room := range found {
		rooms[i] = r.roomDaoToDomain(room)
	}

	return rooms, nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *RoomRepository) Allocate(ctx context.Context, zone string, roomID uint, beds int) (domain.BedAllocation, error) {
	allocation, err := r.dao.Allocate(ctx, zone, roomID, beds)
	if err != nil {
		return domain.BedAllocation{}, err
	}

	return r.allocationDaoToDomain(allocation), nil
}

func (r *RoomRepository) FindAllocations(ctx context.Context) ([]domain.BedAllocation, error) {
	found, err := r.dao.FindAllocations(ctx)
	if err != nil {
		return nil, err
	}

	allocations := make([]domain.BedAllocation, len(found))
	for i, allocation := range found {
		allocations[i] = r.allocationDaoToDomain(allocation)
	}

	return allocations, nil
}

func (r *RoomRepository) FindAllocationByID(ctx context.Context, id uint) (domain.BedAllocation, error) {
	found, err := r.dao.FindAllocationByID(ctx, id)
	if err != nil {
		return domain.BedAllocation{}, err
	}

	return r.allocationDaoToDomain(found), nil
}

func (r *RoomRepository) RemoveAllocation(ctx context.Context, id uint) error {
	return r.dao.RemoveAllocation(ctx, id)
}

func (r *RoomRepository) roomDaoToDomain(room dao.Room) domain.Room {
	return domain.Room{
		ID:        room.ID,
		Name:      room.Name,
		TotalBeds: room.TotalBeds,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func (r *RoomRepository) allocationDaoToDomain(a dao.BedAllocation) domain.BedAllocation {
	return domain.BedAllocation{
		ID:            a.ID,
		Zone:          a.Zone,
		RoomID:        a.RoomID,
		RoomName:      a.RoomName,
		BedsAllocated: a.BedsAllocated,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
