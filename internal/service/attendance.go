package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository"
)

var (
	ErrAttendeeNotFound   = repository.ErrAttendeeNotFound
	ErrDayAlreadyMarked   = errors.New("attendance already marked for this day")
	ErrInvalidDay         = errors.New("day must be 1 or 2")
	ErrInvalidSchedule    = errors.New("unknown schedule")
	ErrNotEligibleForCert = errors.New("no attendance recorded, certificate not available")
)

type AttendanceRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Attendee, error)
	FindByMobile(ctx context.Context, mobile string) (domain.Attendee, error)
	FindAll(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error)
	Update(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	Delete(ctx context.Context, id uint) error
}

// AttendeeUpdate carries the fields an admin may amend. Nil means leave
// the field untouched.
type AttendeeUpdate struct {
	Day1Attendance *bool
	Day1Schedule   *string
	Day2Attendance *bool
	Day2Schedule   *string
}

type AttendanceService struct {
	repo AttendanceRepository
	now  func() time.Time
}

func NewAttendanceService(repo AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *AttendanceService) Lookup(ctx context.Context, mobile string) (domain.Attendee, error) {
	attendee, err := s.repo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, repository.ErrAttendeeNotFound) {
			return domain.Attendee{}, ErrAttendeeNotFound
		}

		return domain.Attendee{}, fmt.Errorf("s.repo.FindByMobile -> %w", err)
	}

	return attendee, nil
}

// MarkDay records self-service check-in for day 1 or 2. Marking a day
// twice is rejected; the first successful mark of either day also flips
// the overall present flag and stamps the check-in time.
func (s *AttendanceService) MarkDay(ctx context.Context, mobile string, day int) (domain.Attendee, error) {
	if day != 1 && day != 2 {
		return domain.Attendee{}, ErrInvalidDay
	}

	attendee, err := s.Lookup(ctx, mobile)
	if err != nil {
		return domain.Attendee{}, err
	}

	now := s.now()
	switch day {
	case 1:
		if attendee.Day1Attendance {
			return domain.Attendee{}, ErrDayAlreadyMarked
		}
		attendee.Day1Attendance = true
		attendee.Day1Time = &now
	case 2:
		if attendee.Day2Attendance {
			return domain.Attendee{}, ErrDayAlreadyMarked
		}
		attendee.Day2Attendance = true
		attendee.Day2Time = &now
	}

	if !attendee.Present {
		attendee.Present = true
		attendee.CheckinTime = &now
	}

	updated, err := s.repo.Update(ctx, attendee)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Amend applies an admin edit to an attendee's attendance fields.
func (s *AttendanceService) Amend(ctx context.Context, id uint, update AttendeeUpdate) (domain.Attendee, error) {
	attendee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAttendeeNotFound) {
			return domain.Attendee{}, ErrAttendeeNotFound
		}

		return domain.Attendee{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	now := s.now()
	if update.Day1Attendance != nil {
		attendee.Day1Attendance = *update.Day1Attendance
		if *update.Day1Attendance {
			attendee.Day1Time = &now
		} else {
			attendee.Day1Time = nil
		}
	}
	if update.Day2Attendance != nil {
		attendee.Day2Attendance = *update.Day2Attendance
		if *update.Day2Attendance {
			attendee.Day2Time = &now
		} else {
			attendee.Day2Time = nil
		}
	}
	if update.Day1Schedule != nil {
		if *update.Day1Schedule != "" && !domain.IsSchedule(*update.Day1Schedule) {
			return domain.Attendee{}, ErrInvalidSchedule
		}
		attendee.Day1Schedule = *update.Day1Schedule
	}
	if update.Day2Schedule != nil {
		if *update.Day2Schedule != "" && !domain.IsSchedule(*update.Day2Schedule) {
			return domain.Attendee{}, ErrInvalidSchedule
		}
		attendee.Day2Schedule = *update.Day2Schedule
	}

	attendee.Present = attendee.Day1Attendance || attendee.Day2Attendance
	if !attendee.Present {
		attendee.CheckinTime = nil
	}

	updated, err := s.repo.Update(ctx, attendee)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *AttendanceService) List(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error) {
	attendees, err := s.repo.FindAll(ctx, search, zone, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return attendees, nil
}

func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAttendeeNotFound) {
			return ErrAttendeeNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Certificate returns the participation certificate data for an attendee.
// Attendees who never checked in on either day are not eligible.
func (s *AttendanceService) Certificate(ctx context.Context, mobile string) (domain.Certificate, error) {
	attendee, err := s.Lookup(ctx, mobile)
	if err != nil {
		return domain.Certificate{}, err
	}

	days := attendee.AttendedDays()
	if len(days) == 0 {
		return domain.Certificate{}, ErrNotEligibleForCert
	}

	return domain.Certificate{
		Name:         attendee.Name,
		Designation:  attendee.Designation,
		Zone:         attendee.Zone,
		AttendedDays: days,
	}, nil
}
