package repository

import (
	"context"
	"time"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository/dao"
)

var (
	ErrAttendeeNotFound = dao.ErrAttendeeNotFound
	ErrMobileExists     = dao.ErrMobileExists
	ErrNoZoneBeds       = dao.ErrNoZoneBeds
)

type AttendeeDAO interface {
	Register(ctx context.Context, attendee dao.Attendee) (dao.Attendee, error)
	FindByID(ctx context.Context, id uint) (dao.Attendee, error)
	FindByMobile(ctx context.Context, mobile string) (dao.Attendee, error)
	FindAll(ctx context.Context, search, zone string, date *time.Time) ([]dao.Attendee, error)
	Update(ctx context.Context, attendee dao.Attendee) (dao.Attendee, error)
	Delete(ctx context.Context, id uint) error
}

type AttendeeRepository struct {
	dao AttendeeDAO
}

func NewAttendeeRepository(dao AttendeeDAO) *AttendeeRepository {
	return &AttendeeRepository{
		dao: dao,
	}
}

func (r *AttendeeRepository) Register(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	created, err := r.dao.Register(ctx, r.domainToDao(attendee))
	if err != nil {
		return domain.Attendee{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *AttendeeRepository) FindByID(ctx context.Context, id uint) (domain.Attendee, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Attendee{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *AttendeeRepository) FindByMobile(ctx context.Context, mobile string) (domain.Attendee, error) {
	found, err := r.dao.FindByMobile(ctx, mobile)
	if err != nil {
		return domain.Attendee{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *AttendeeRepository) FindAll(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error) {
	found, err := r.dao.FindAll(ctx, search, zone, date)
	if err != nil {
		return nil, err
	}

	attendees := make([]domain.Attendee, len(found))
	for i, attendee := range found {
		attendees[i] = r.daoToDomain(attendee)
	}

	return attendees, nil
}

func (r *AttendeeRepository) Update(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(attendee))
	if err != nil {
		return domain.Attendee{}, err
	}

	return r.daoToDomain(updated), nil
}

func (r *AttendeeRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func (r *AttendeeRepository) domainToDao(a domain.Attendee) dao.Attendee {
	return dao.Attendee{
		ID:               a.ID,
		RegistrationCode: a.RegistrationCode,
		Name:             a.Name,
		Mobile:           a.Mobile,
		Email:            a.Email,
		Designation:      a.Designation,
		Zone:             a.Zone,
		Bedspace:         a.Bedspace,
		RoomID:           a.RoomID,
		Present:          a.Present,
		CheckinTime:      a.CheckinTime,
		Day1Attendance:   a.Day1Attendance,
		Day1Time:         a.Day1Time,
		Day1Schedule:     a.Day1Schedule,
		Day2Attendance:   a.Day2Attendance,
		Day2Time:         a.Day2Time,
		Day2Schedule:     a.Day2Schedule,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (r *AttendeeRepository) daoToDomain(a dao.Attendee) domain.Attendee {
	return domain.Attendee{
		ID:               a.ID,
		RegistrationCode: a.RegistrationCode,
		Name:             a.Name,
		Mobile:           a.Mobile,
		Email:            a.Email,
		Designation:      a.Designation,
		Zone:             a.Zone,
		Bedspace:         a.Bedspace,
		RoomID:           a.RoomID,
		Present:          a.Present,
		CheckinTime:      a.CheckinTime,
		Day1Attendance:   a.Day1Attendance,
		Day1Time:         a.Day1Time,
		Day1Schedule:     a.Day1Schedule,
		Day2Attendance:   a.Day2Attendance,
		Day2Time:         a.Day2Time,
		Day2Schedule:     a.Day2Schedule,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
