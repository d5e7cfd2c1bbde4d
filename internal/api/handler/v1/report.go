package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cyberduce/summit-api/internal/api/handler/v1/response"
	"github.com/cyberduce/summit-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportService interface {
	AttendanceWorkbook(ctx context.Context, zone string, date *time.Time) ([]byte, error)
	BedspaceWorkbook(ctx context.Context) ([]byte, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleAttendanceReport godoc
// @Summary      Download the attendance report as an xlsx workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        zone     query      string false "filter by zone"
// @Param        date     query      string false "registration date (YYYY-MM-DD)"
// @Success      200
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reports/attendance [get]
func (h *ReportHandler) HandleAttendanceReport(ctx *gin.Context) {
	var date *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		date = &parsed
	}

	workbook, err := h.svc.AttendanceWorkbook(ctx.Request.Context(), ctx.Query("zone"), date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidZone) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleAttendanceReport -> h.svc.AttendanceWorkbook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, workbook)
}

// HandleBedspaceReport godoc
// @Summary      Download the bedspace report as an xlsx workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      500      {object}   response.Err
// @Router       /reports/bedspace [get]
func (h *ReportHandler) HandleBedspaceReport(ctx *gin.Context) {
	workbook, err := h.svc.BedspaceWorkbook(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleBedspaceReport -> h.svc.BedspaceWorkbook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := fmt.Sprintf("bedspace-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, workbook)
}
