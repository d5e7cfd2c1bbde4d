package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrAllocationNotFound = errors.New("bed allocation not found")
	ErrInsufficientBeds   = errors.New("not enough available beds in room")
	ErrRoomOccupied       = errors.New("room still has attendees assigned")
	ErrAllocationOccupied = errors.New("allocation still has attendees assigned")
)

type Room struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	TotalBeds int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type BedAllocation struct {
	ID            uint   `gorm:"primaryKey"`
	Zone          string `gorm:"not null;index;uniqueIndex:idx_zone_room"`
	RoomID        uint   `gorm:"not null;index;uniqueIndex:idx_zone_room"`
	RoomName      string `gorm:"not null"`
	BedsAllocated int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RoomDAO struct {
	db *gorm.DB
}

func NewRoomDAO(db *gorm.DB) *RoomDAO {
	return &RoomDAO{
		db: db,
	}
}

func (d *RoomDAO) Insert(ctx context.Context, room Room) (Room, error) {
	result := d.db.WithContext(ctx).Create(&room)
	if result.Error != nil {
		return Room{}, result.Error
	}

	return room, nil
}

func (d *RoomDAO) FindByID(ctx context.Context, id uint) (Room, error) {
	var room Room

	result := d.db.WithContext(ctx).First(&room, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Room{}, ErrRoomNotFound
		}

		return Room{}, result.Error
	}

	return room, nil
}

func (d *RoomDAO) FindAll(ctx context.Context) ([]Room, error) {
	var rooms []Room

	result := d.db.WithContext(ctx).Order("id").Find(&rooms)
	if result.Error != nil {
		return nil, result.Error
	}

	return rooms, nil
}

// Delete removes a room and every allocation referencing it, in that
// order, inside one transaction. It refuses while attendees are still
// assigned to the room.
func (d *RoomDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}

			return err
		}

		var assigned int64
		if err := tx.Model(&Attendee{}).Where("room_id = ?", id).Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 {
			return ErrRoomOccupied
		}

		if err := tx.Where("room_id = ?", id).Delete(&BedAllocation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}

// Allocate grants beds of a room to a zone. The whole check-then-act
// sequence runs in one transaction holding a FOR UPDATE lock on the room
// row, so two concurrent grants cannot both pass the availability check.
// An existing (zone, room) allocation is merged into rather than duplicated.
func (d *RoomDAO) Allocate(ctx context.Context, zone string, roomID uint, beds int) (BedAllocation, error) {
	var out BedAllocation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}

			return err
		}

		var allocated int64
		err := tx.Model(&BedAllocation{}).
			Where("room_id = ?", roomID).
			Select("COALESCE(SUM(beds_allocated), 0)").
			Scan(&allocated).Error
		if err != nil {
			return err
		}

		if int64(beds) > int64(room.TotalBeds)-allocated {
			return ErrInsufficientBeds
		}

		var existing BedAllocation
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("zone = ? AND room_id = ?", zone, roomID).
			First(&existing).Error
		switch {
		case err == nil:
			existing.BedsAllocated += beds
			if err = tx.Save(&existing).Error; err != nil {
				return err
			}
			out = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = BedAllocation{
				Zone:          zone,
				RoomID:        roomID,
				RoomName:      room.Name,
				BedsAllocated: beds,
			}
			if err = tx.Create(&out).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return nil
	})
	if err != nil {
		return BedAllocation{}, err
	}

	return out, nil
}

func (d *RoomDAO) FindAllocations(ctx context.Context) ([]BedAllocation, error) {
	var allocations []BedAllocation

	result := d.db.WithContext(ctx).Order("id").Find(&allocations)
	if result.Error != nil {
		return nil, result.Error
	}

	return allocations, nil
}

func (d *RoomDAO) FindAllocationByID(ctx context.Context, id uint) (BedAllocation, error) {
	var allocation BedAllocation

	result := d.db.WithContext(ctx).First(&allocation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BedAllocation{}, ErrAllocationNotFound
		}

		return BedAllocation{}, result.Error
	}

	return allocation, nil
}

// RemoveAllocation deletes an allocation, returning its beds to the room's
// unallocated pool (implicitly, since availability is derived). It refuses
// while the zone still has attendees placed in the room.
func (d *RoomDAO) RemoveAllocation(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocation BedAllocation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&allocation, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAllocationNotFound
			}

			return err
		}

		var occupied int64
		err = tx.Model(&Attendee{}).
			Where("zone = ? AND bedspace = ?", allocation.Zone, allocation.RoomName).
			Count(&occupied).Error
		if err != nil {
			return err
		}
		if occupied > 0 {
			return ErrAllocationOccupied
		}

		return tx.Delete(&allocation).Error
	})
}
