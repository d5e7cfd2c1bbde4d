package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/service"
)

type stubRegistrationService struct {
	registerFn func(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	roomsFn    func(ctx context.Context, zone string) ([]domain.ZoneRoomOption, error)
}

func (s *stubRegistrationService) Register(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error) {
	return s.registerFn(ctx, attendee)
}

func (s *stubRegistrationService) EligibleRooms(ctx context.Context, zone string) ([]domain.ZoneRoomOption, error) {
	return s.roomsFn(ctx, zone)
}

func (s *stubRegistrationService) Zones() []string {
	return domain.Zones
}

type stubAttendanceService struct {
	lookupFn      func(ctx context.Context, mobile string) (domain.Attendee, error)
	markDayFn     func(ctx context.Context, mobile string, day int) (domain.Attendee, error)
	certificateFn func(ctx context.Context, mobile string) (domain.Certificate, error)
}

func (s *stubAttendanceService) Lookup(ctx context.Context, mobile string) (domain.Attendee, error) {
	return s.lookupFn(ctx, mobile)
}

func (s *stubAttendanceService) MarkDay(ctx context.Context, mobile string, day int) (domain.Attendee, error) {
	return s.markDayFn(ctx, mobile, day)
}

func (s *stubAttendanceService) Amend(_ context.Context, _ uint, _ service.AttendeeUpdate) (domain.Attendee, error) {
	return domain.Attendee{}, nil
}

func (s *stubAttendanceService) List(_ context.Context, _, _ string, _ *time.Time) ([]domain.Attendee, error) {
	return nil, nil
}

func (s *stubAttendanceService) Delete(_ context.Context, _ uint) error {
	return nil
}

func (s *stubAttendanceService) Certificate(ctx context.Context, mobile string) (domain.Certificate, error) {
	return s.certificateFn(ctx, mobile)
}

func newAttendeeTestRouter(registration RegistrationService, attendance AttendanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAttendeeHandler(registration, attendance)

	router := gin.New()
	router.POST("/attendees", handler.HandleRegister)
	router.POST("/attendees/checkin", handler.HandleCheckin)
	router.GET("/attendees/mobile/:mobile/certificate", handler.HandleCertificate)
	router.GET("/zones", handler.HandleListZones)

	return router
}

func TestAttendeeHandler_HandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"name":"Asha Rao","mobile":"9876543210","designation":"Volunteer","zone":"Karnataka","room_id":1}`,
			registerFn: func(_ context.Context, attendee domain.Attendee) (domain.Attendee, error) {
				attendee.ID = 1
				attendee.RegistrationCode = "code"

				return attendee, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid mobile",
			body:       `{"name":"Asha Rao","mobile":"12345","designation":"Volunteer","zone":"Karnataka","room_id":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate mobile",
			body: `{"name":"Asha Rao","mobile":"9876543210","designation":"Volunteer","zone":"Karnataka","room_id":1}`,
			registerFn: func(_ context.Context, _ domain.Attendee) (domain.Attendee, error) {
				return domain.Attendee{}, service.ErrMobileExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "zone full",
			body: `{"name":"Asha Rao","mobile":"9876543210","designation":"Volunteer","zone":"Karnataka","room_id":1}`,
			registerFn: func(_ context.Context, _ domain.Attendee) (domain.Attendee, error) {
				return domain.Attendee{}, service.ErrNoZoneBeds
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := &stubRegistrationService{registerFn: tt.registerFn}
			router := newAttendeeTestRouter(registration, &stubAttendanceService{})

			req := httptest.NewRequest(http.MethodPost, "/attendees", bytes.NewBufferString(tt.body))
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestAttendeeHandler_HandleCheckin(t *testing.T) {
	attendance := &stubAttendanceService{
		markDayFn: func(_ context.Context, mobile string, day int) (domain.Attendee, error) {
			if day == 1 {
				return domain.Attendee{ID: 1, Mobile: mobile, Day1Attendance: true, Present: true}, nil
			}

			return domain.Attendee{}, service.ErrDayAlreadyMarked
		},
	}
	router := newAttendeeTestRouter(&stubRegistrationService{}, attendance)

	t.Run("successful check-in", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/attendees/checkin", bytes.NewBufferString(`{"mobile":"9876543210","day":1}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var attendee domain.Attendee
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &attendee))
		assert.True(t, attendee.Day1Attendance)
	})

	t.Run("already marked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/attendees/checkin", bytes.NewBufferString(`{"mobile":"9876543210","day":2}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("day out of range fails validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/attendees/checkin", bytes.NewBufferString(`{"mobile":"9876543210","day":3}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestAttendeeHandler_HandleCertificate(t *testing.T) {
	attendance := &stubAttendanceService{
		certificateFn: func(_ context.Context, mobile string) (domain.Certificate, error) {
			switch mobile {
			case "9876543210":
				return domain.Certificate{
					Name:         "Asha Rao",
					Designation:  "Volunteer",
					Zone:         "Karnataka",
					AttendedDays: []string{"Day 1", "Day 2"},
				}, nil
			case "9999999999":
				return domain.Certificate{}, service.ErrNotEligibleForCert
			default:
				return domain.Certificate{}, service.ErrAttendeeNotFound
			}
		},
	}
	router := newAttendeeTestRouter(&stubRegistrationService{}, attendance)

	t.Run("eligible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/attendees/mobile/9876543210/certificate", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var cert domain.Certificate
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cert))
		assert.Equal(t, []string{"Day 1", "Day 2"}, cert.AttendedDays)
	})

	t.Run("not eligible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/attendees/mobile/9999999999/certificate", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("unknown attendee", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/attendees/mobile/0000000000/certificate", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestAttendeeHandler_HandleListZones(t *testing.T) {
	router := newAttendeeTestRouter(&stubRegistrationService{}, &stubAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/zones", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var zones []string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &zones))
	assert.Len(t, zones, 9)
}
