package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cyberduce/summit-api/internal/api/handler/v1/request"
	"github.com/cyberduce/summit-api/internal/api/handler/v1/response"
	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/service"
)

type RegistrationService interface {
	Register(ctx context.Context, attendee domain.Attendee) (domain.Attendee, error)
	EligibleRooms(ctx context.Context, zone string) ([]domain.ZoneRoomOption, error)
	Zones() []string
}

type AttendanceService interface {
	Lookup(ctx context.Context, mobile string) (domain.Attendee, error)
	MarkDay(ctx context.Context, mobile string, day int) (domain.Attendee, error)
	Amend(ctx context.Context, id uint, update service.AttendeeUpdate) (domain.Attendee, error)
	List(ctx context.Context, search, zone string, date *time.Time) ([]domain.Attendee, error)
	Delete(ctx context.Context, id uint) error
	Certificate(ctx context.Context, mobile string) (domain.Certificate, error)
}

type AttendeeHandler struct {
	registration RegistrationService
	attendance   AttendanceService
}

func NewAttendeeHandler(registration RegistrationService, attendance AttendanceService) *AttendeeHandler {
	return &AttendeeHandler{
		registration: registration,
		attendance:   attendance,
	}
}

// HandleRegister godoc
// @Summary      Register an attendee
// @Tags         attendees
// @Produce      json
// @Param        request   body      request.RegisterAttendeeRequest true "request body"
// @Success      201      {object}   domain.Attendee
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees [post]
func (h *AttendeeHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterAttendeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	attendee, err := h.registration.Register(ctx.Request.Context(), domain.Attendee{
		Name:        req.Name,
		Mobile:      req.Mobile,
		Email:       req.Email,
		Designation: req.Designation,
		Zone:        req.Zone,
		RoomID:      req.RoomID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidZone):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrMobileExists):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrNoZoneBeds):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrRoomNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		default:
			err = fmt.Errorf("v1.HandleRegister -> h.registration.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, attendee)
}

// HandleListZones godoc
// @Summary      List registration zones
// @Tags         attendees
// @Produce      json
// @Success      200      {object}   []string
// @Router       /zones [get]
func (h *AttendeeHandler) HandleListZones(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.registration.Zones())
}

// HandleEligibleRooms godoc
// @Summary      List rooms with free beds for a zone
// @Tags         attendees
// @Produce      json
// @Param        zone     path       string true "zone name"
// @Success      200      {object}   []domain.ZoneRoomOption
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /zones/{zone}/rooms [get]
func (h *AttendeeHandler) HandleEligibleRooms(ctx *gin.Context) {
	zone := ctx.Param("zone")

	rooms, err := h.registration.EligibleRooms(ctx.Request.Context(), zone)
	if err != nil {
		if errors.Is(err, service.ErrInvalidZone) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleEligibleRooms -> h.registration.EligibleRooms -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, rooms)
}

// HandleLookupAttendee godoc
// @Summary      Find an attendee by mobile number
// @Tags         attendees
// @Produce      json
// @Param        mobile   path       string true "mobile number"
// @Success      200      {object}   domain.Attendee
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees/mobile/{mobile} [get]
func (h *AttendeeHandler) HandleLookupAttendee(ctx *gin.Context) {
	mobile := ctx.Param("mobile")

	attendee, err := h.attendance.Lookup(ctx.Request.Context(), mobile)
	if err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleLookupAttendee -> h.attendance.Lookup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, attendee)
}

// HandleCheckin godoc
// @Summary      Mark attendance for a conference day
// @Tags         attendees
// @Produce      json
// @Param        request   body      request.CheckinRequest true "request body"
// @Success      200      {object}   domain.Attendee
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees/checkin [post]
func (h *AttendeeHandler) HandleCheckin(ctx *gin.Context) {
	var req request.CheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	attendee, err := h.attendance.MarkDay(ctx.Request.Context(), req.Mobile, req.Day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendeeNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrDayAlreadyMarked):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrInvalidDay):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCheckin -> h.attendance.MarkDay -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, attendee)
}

// HandleCertificate godoc
// @Summary      Fetch certificate details for an attendee
// @Tags         attendees
// @Produce      json
// @Param        mobile   path       string true "mobile number"
// @Success      200      {object}   domain.Certificate
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees/mobile/{mobile}/certificate [get]
func (h *AttendeeHandler) HandleCertificate(ctx *gin.Context) {
	mobile := ctx.Param("mobile")

	cert, err := h.attendance.Certificate(ctx.Request.Context(), mobile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendeeNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrNotEligibleForCert):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleCertificate -> h.attendance.Certificate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, cert)
}

// HandleListAttendees godoc
// @Summary      List attendees with optional filters
// @Tags         attendees
// @Produce      json
// @Param        search   query      string false "match against name, mobile or designation"
// @Param        zone     query      string false "filter by zone"
// @Param        date     query      string false "registration date (YYYY-MM-DD)"
// @Success      200      {object}   []domain.Attendee
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees [get]
func (h *AttendeeHandler) HandleListAttendees(ctx *gin.Context) {
	var date *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		date = &parsed
	}

	attendees, err := h.attendance.List(ctx.Request.Context(), ctx.Query("search"), ctx.Query("zone"), date)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAttendees -> h.attendance.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, attendees)
}

// HandleAmendAttendee godoc
// @Summary      Amend attendance records for an attendee
// @Tags         attendees
// @Produce      json
// @Param        id       path       int  true "attendee ID"
// @Param        request   body      request.AmendAttendeeRequest true "request body"
// @Success      200      {object}   domain.Attendee
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees/{id} [patch]
func (h *AttendeeHandler) HandleAmendAttendee(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.AmendAttendeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	attendee, err := h.attendance.Amend(ctx.Request.Context(), uint(id), service.AttendeeUpdate{
		Day1Attendance: req.Day1Attendance,
		Day1Schedule:   req.Day1Schedule,
		Day2Attendance: req.Day2Attendance,
		Day2Schedule:   req.Day2Schedule,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttendeeNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrInvalidSchedule):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleAmendAttendee -> h.attendance.Amend -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, attendee)
}

// HandleDeleteAttendee godoc
// @Summary      Delete an attendee
// @Tags         attendees
// @Produce      json
// @Param        id       path       int  true "attendee ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /attendees/{id} [delete]
func (h *AttendeeHandler) HandleDeleteAttendee(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.attendance.Delete(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteAttendee -> h.attendance.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
