package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cyberduce/summit-api/internal/domain"
)

func TestReportService_AttendanceWorkbook(t *testing.T) {
	checkin := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	attendeeRepo := &fakeRegistrationAttendeeRepo{
		attendees: []domain.Attendee{
			{
				Name: "Asha Rao", Mobile: "9876543210", Designation: "Volunteer",
				Zone: "Karnataka", Bedspace: "Hostel A",
				Day1Attendance: true, Present: true, CheckinTime: &checkin,
			},
			{
				Name: "Ravi Kumar", Mobile: "9123456780", Designation: "Delegate",
				Zone: "Karnataka",
			},
		},
	}
	svc := NewReportService(attendeeRepo, &fakeRegistrationRoomRepo{})

	workbook, err := svc.AttendanceWorkbook(context.Background(), "Karnataka", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Mobile", "Designation", "Zone", "Bedspace", "Day 1", "Day 2", "Check-in Time"}, rows[0])
	assert.Equal(t, []string{"Asha Rao", "9876543210", "Volunteer", "Karnataka", "Hostel A", "Yes", "No", "2025-03-15T09:30:00Z"}, rows[1])
	assert.Equal(t, []string{"Ravi Kumar", "9123456780", "Delegate", "Karnataka", "TBD", "No", "No", "N/A"}, rows[2])
}

func TestReportService_AttendanceWorkbook_UnknownZone(t *testing.T) {
	svc := NewReportService(&fakeRegistrationAttendeeRepo{}, &fakeRegistrationRoomRepo{})

	_, err := svc.AttendanceWorkbook(context.Background(), "Atlantis", nil)

	assert.ErrorIs(t, err, ErrInvalidZone)
}

func TestReportService_BedspaceWorkbook(t *testing.T) {
	roomRepo := &fakeRegistrationRoomRepo{
		rooms:       []domain.Room{{ID: 1, Name: "Hostel A", TotalBeds: 10}},
		allocations: []domain.BedAllocation{{ID: 1, Zone: "Delhi", RoomID: 1, BedsAllocated: 6}},
	}
	attendeeRepo := &fakeRegistrationAttendeeRepo{
		attendees: []domain.Attendee{{Zone: "Delhi", RoomID: 1, Bedspace: "Hostel A"}},
	}
	svc := NewReportService(attendeeRepo, roomRepo)

	workbook, err := svc.BedspaceWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	roomRows, err := f.GetRows("Rooms")
	require.NoError(t, err)
	require.Len(t, roomRows, 2)
	assert.Equal(t, []string{"Hostel A", "10", "6", "4", "60%"}, roomRows[1])

	zoneRows, err := f.GetRows("Zones")
	require.NoError(t, err)
	require.Len(t, zoneRows, len(domain.Zones)+1)

	var delhi []string
	for _, row := range zoneRows[1:] {
		if len(row) > 0 && row[0] == "Delhi" {
			delhi = row
		}
	}
	assert.Equal(t, []string{"Delhi", "6", "1", "5", "17%"}, delhi)
}
