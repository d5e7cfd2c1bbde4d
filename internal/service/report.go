package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cyberduce/summit-api/internal/bedspace"
	"github.com/cyberduce/summit-api/internal/domain"
)

type ReportAttendeeRepository interface {
	FindAll(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error)
}

type ReportRoomRepository interface {
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindAllocations(ctx context.Context) ([]domain.BedAllocation, error)
}

// ReportService assembles the attendance and bed availability reports and
// renders them as xlsx workbooks.
type ReportService struct {
	attendeeRepo ReportAttendeeRepository
	roomRepo     ReportRoomRepository
}

func NewReportService(attendeeRepo ReportAttendeeRepository, roomRepo ReportRoomRepository) *ReportService {
	return &ReportService{
		attendeeRepo: attendeeRepo,
		roomRepo:     roomRepo,
	}
}

// AttendanceWorkbook builds the attendance report, optionally filtered by
// zone and registration date.
func (s *ReportService) AttendanceWorkbook(ctx context.Context, zone string, date *time.Time) ([]byte, error) {
	if zone != "" && !domain.IsZone(zone) {
		return nil, ErrInvalidZone
	}

	attendees, err := s.attendeeRepo.FindAll(ctx, "", zone, date)
	if err != nil {
		return nil, fmt.Errorf("s.attendeeRepo.FindAll -> %w", err)
	}

	rows := make([][]interface{}, 0, len(attendees))
	for _, a := range attendees {
		checkin := "N/A"
		if a.CheckinTime != nil {
			checkin = a.CheckinTime.Format(time.RFC3339)
		}
		bed := a.Bedspace
		if bed == "" {
			bed = "TBD"
		}
		rows = append(rows, []interface{}{
			a.Name, a.Mobile, a.Designation, a.Zone, bed,
			yesNo(a.Day1Attendance), yesNo(a.Day2Attendance), checkin,
		})
	}

	return buildWorkbook("Attendance", [][]interface{}{
		{"Name", "Mobile", "Designation", "Zone", "Bedspace", "Day 1", "Day 2", "Check-in Time"},
	}, rows)
}

// BedspaceWorkbook builds the bed availability report: one sheet of
// per-room utilization, one of per-zone summaries.
func (s *ReportService) BedspaceWorkbook(ctx context.Context) ([]byte, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAll -> %w", err)
	}

	allocations, err := s.roomRepo.FindAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.roomRepo.FindAllocations -> %w", err)
	}

	attendees, err := s.attendeeRepo.FindAll(ctx, "", "", nil)
	if err != nil {
		return nil, fmt.Errorf("s.attendeeRepo.FindAll -> %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	roomSheet := "Rooms"
	index, err := f.NewSheet(roomSheet)
	if err != nil {
		return nil, fmt.Errorf("f.NewSheet -> %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err = writeRows(f, roomSheet, [][]interface{}{
		{"Room Name", "Total Beds", "Allocated", "Available", "Utilization"},
	}, roomRows(bedspace.RoomUtilization(rooms, allocations))); err != nil {
		return nil, err
	}

	zoneSheet := "Zones"
	if _, err = f.NewSheet(zoneSheet); err != nil {
		return nil, fmt.Errorf("f.NewSheet -> %w", err)
	}

	summaries := bedspace.ZoneSummaries(domain.Zones, rooms, allocations, attendees)
	if err = writeRows(f, zoneSheet, [][]interface{}{
		{"Zone", "Allocated Beds", "Occupied", "Available", "Usage"},
	}, zoneRows(summaries)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("f.WriteToBuffer -> %w", err)
	}

	return buf.Bytes(), nil
}

func roomRows(utilization []domain.RoomAvailability) [][]interface{} {
	rows := make([][]interface{}, 0, len(utilization))
	for _, r := range utilization {
		rows = append(rows, []interface{}{
			r.Name, r.TotalBeds, r.AllocatedBeds, r.AvailableBeds,
			fmt.Sprintf("%d%%", r.PercentUsed),
		})
	}

	return rows
}

func zoneRows(summaries []domain.ZoneSummary) [][]interface{} {
	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.Zone, s.TotalAllocatedBeds, s.OccupiedBeds, s.AvailableBeds,
			fmt.Sprintf("%d%%", s.PercentageUsed),
		})
	}

	return rows
}

func buildWorkbook(sheet string, header, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("f.NewSheet -> %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err = writeRows(f, sheet, header, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("f.WriteToBuffer -> %w", err)
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, header, rows [][]interface{}) error {
	all := append(header, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}
