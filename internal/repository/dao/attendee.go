package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrMobileExists     = errors.New("mobile number already registered")
	ErrNoZoneBeds       = errors.New("no beds available for zone in room")
)

type Attendee struct {
	ID               uint   `gorm:"primaryKey"`
	RegistrationCode string `gorm:"unique;not null"`

	Name        string `gorm:"not null"`
	Mobile      string `gorm:"unique;not null"`
	Email       string
	Designation string `gorm:"not null"`
	Zone        string `gorm:"not null;index"`

	Bedspace string `gorm:"index"` // room name, matches rooms.name
	RoomID   uint   `gorm:"index"`

	Present     bool
	CheckinTime *time.Time

	Day1Attendance bool
	Day1Time       *time.Time
	Day1Schedule   string
	Day2Attendance bool
	Day2Time       *time.Time
	Day2Schedule   string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AttendeeDAO struct {
	db *gorm.DB
}

func NewAttendeeDAO(db *gorm.DB) *AttendeeDAO {
	return &AttendeeDAO{
		db: db,
	}
}

// Register inserts an attendee after re-checking, under a FOR UPDATE lock
// on the room row, that the attendee's zone still has a free bed in the
// chosen room. Bedspace is denormalized from the room name on the way in.
func (d *AttendeeDAO) Register(ctx context.Context, attendee Attendee) (Attendee, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, attendee.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}

			return err
		}

		var allocated int64
		err := tx.Model(&BedAllocation{}).
			Where("zone = ? AND room_id = ?", attendee.Zone, room.ID).
			Select("COALESCE(SUM(beds_allocated), 0)").
			Scan(&allocated).Error
		if err != nil {
			return err
		}

		var occupied int64
		err = tx.Model(&Attendee{}).
			Where("zone = ? AND bedspace = ?", attendee.Zone, room.Name).
			Count(&occupied).Error
		if err != nil {
			return err
		}

		if occupied >= allocated {
			return ErrNoZoneBeds
		}

		attendee.Bedspace = room.Name

		if err = tx.Create(&attendee).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) &&
				pgErr.Code == pgerrcode.UniqueViolation &&
				strings.Contains(pgErr.Message, `unique constraint "uni_attendees_mobile"`) {
				return ErrMobileExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return Attendee{}, err
	}

	return attendee, nil
}

func (d *AttendeeDAO) FindByID(ctx context.Context, id uint) (Attendee, error) {
	var attendee Attendee

	result := d.db.WithContext(ctx).First(&attendee, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Attendee{}, ErrAttendeeNotFound
		}

		return Attendee{}, result.Error
	}

	return attendee, nil
}

func (d *AttendeeDAO) FindByMobile(ctx context.Context, mobile string) (Attendee, error) {
	var attendee Attendee

	result := d.db.WithContext(ctx).First(&attendee, "mobile = ?", mobile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Attendee{}, ErrAttendeeNotFound
		}

		return Attendee{}, result.Error
	}

	return attendee, nil
}

// FindAll returns attendees, optionally narrowed by a search term
// (name/mobile/zone substring), a zone and a registration date.
func (d *AttendeeDAO) FindAll(ctx context.Context, search, zone string, date *time.Time) ([]Attendee, error) {
	query := d.db.WithContext(ctx).Model(&Attendee{}).Order("id")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(mobile) LIKE ? OR LOWER(zone) LIKE ?",
			like, like, like,
		)
	}
	if zone != "" {
		query = query.Where("zone = ?", zone)
	}
	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		query = query.Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	var attendees []Attendee
	if err := query.Find(&attendees).Error; err != nil {
		return nil, err
	}

	return attendees, nil
}

func (d *AttendeeDAO) Update(ctx context.Context, attendee Attendee) (Attendee, error) {
	result := d.db.WithContext(ctx).Save(&attendee)
	if result.Error != nil {
		return Attendee{}, result.Error
	}

	return attendee, nil
}

func (d *AttendeeDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Attendee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttendeeNotFound
	}

	return nil
}
