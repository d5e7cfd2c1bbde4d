package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cyberduce/summit-api/internal/api/handler/v1/request"
	"github.com/cyberduce/summit-api/internal/api/handler/v1/response"
	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/service"
)

type BedspaceService interface {
	CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.RoomAvailability, error)
	DeleteRoom(ctx context.Context, id uint) error
	Allocate(ctx context.Context, zone string, roomID uint, beds int) (domain.BedAllocation, error)
	ListAllocations(ctx context.Context) ([]domain.BedAllocation, error)
	RemoveAllocation(ctx context.Context, id uint) error
	ZoneStats(ctx context.Context) ([]domain.ZoneSummary, error)
	Summary(ctx context.Context) (domain.OccupancyBreakdown, error)
}

type BedspaceHandler struct {
	svc BedspaceService
}

func NewBedspaceHandler(svc BedspaceService) *BedspaceHandler {
	return &BedspaceHandler{
		svc: svc,
	}
}

// HandleCreateRoom godoc
// @Summary      Create a room
// @Tags         bedspace
// @Produce      json
// @Param        request   body      request.CreateRoomRequest true "request body"
// @Success      201      {object}   domain.Room
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms [post]
func (h *BedspaceHandler) HandleCreateRoom(ctx *gin.Context) {
	var req request.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	room, err := h.svc.CreateRoom(ctx.Request.Context(), domain.Room{
		Name:      req.Name,
		TotalBeds: req.TotalBeds,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateRoom -> h.svc.CreateRoom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, room)
}

// HandleListRooms godoc
// @Summary      List rooms with utilization
// @Tags         bedspace
// @Produce      json
// @Success      200      {object}   []domain.RoomAvailability
// @Failure      500      {object}   response.Err
// @Router       /rooms [get]
func (h *BedspaceHandler) HandleListRooms(ctx *gin.Context) {
	rooms, err := h.svc.ListRooms(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRooms -> h.svc.ListRooms -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, rooms)
}

// HandleDeleteRoom godoc
// @Summary      Delete a room and its allocations
// @Tags         bedspace
// @Produce      json
// @Param        id       path       int  true "room ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{id} [delete]
func (h *BedspaceHandler) HandleDeleteRoom(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteRoom(ctx.Request.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrRoomOccupied):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleDeleteRoom -> h.svc.DeleteRoom -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateAllocation godoc
// @Summary      Allocate beds in a room to a zone
// @Tags         bedspace
// @Produce      json
// @Param        request   body      request.CreateAllocationRequest true "request body"
// @Success      201      {object}   domain.BedAllocation
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations [post]
func (h *BedspaceHandler) HandleCreateAllocation(ctx *gin.Context) {
	var req request.CreateAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	allocation, err := h.svc.Allocate(ctx.Request.Context(), req.Zone, req.RoomID, req.BedsAllocated)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidZone):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrRoomNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrInsufficientBeds):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleCreateAllocation -> h.svc.Allocate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, allocation)
}

// HandleListAllocations godoc
// @Summary      List bed allocations
// @Tags         bedspace
// @Produce      json
// @Success      200      {object}   []domain.BedAllocation
// @Failure      500      {object}   response.Err
// @Router       /allocations [get]
func (h *BedspaceHandler) HandleListAllocations(ctx *gin.Context) {
	allocations, err := h.svc.ListAllocations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllocations -> h.svc.ListAllocations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, allocations)
}

// HandleDeleteAllocation godoc
// @Summary      Remove a bed allocation
// @Tags         bedspace
// @Produce      json
// @Param        id       path       int  true "allocation ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations/{id} [delete]
func (h *BedspaceHandler) HandleDeleteAllocation(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.RemoveAllocation(ctx.Request.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, service.ErrAllocationNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrAllocationOccupied):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleDeleteAllocation -> h.svc.RemoveAllocation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleZoneStats godoc
// @Summary      Per-zone occupancy summaries
// @Tags         bedspace
// @Produce      json
// @Success      200      {object}   []domain.ZoneSummary
// @Failure      500      {object}   response.Err
// @Router       /zones/stats [get]
func (h *BedspaceHandler) HandleZoneStats(ctx *gin.Context) {
	stats, err := h.svc.ZoneStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleZoneStats -> h.svc.ZoneStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleSummary godoc
// @Summary      Overall occupancy breakdown
// @Tags         bedspace
// @Produce      json
// @Success      200      {object}   domain.OccupancyBreakdown
// @Failure      500      {object}   response.Err
// @Router       /bedspace/summary [get]
func (h *BedspaceHandler) HandleSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}
