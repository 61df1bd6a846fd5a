package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"roombook/internal/domain/schedule"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/handler/middleware"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves the day/week/month projections. All routes are
// viewable anonymously; redaction happens in the query layer per viewer.
type CalendarHandler struct {
	bookingQueries queries.BookingQueries
	grid           schedule.Grid
}

func NewCalendarHandler(bookingQueries queries.BookingQueries, grid schedule.Grid) *CalendarHandler {
	return &CalendarHandler{
		bookingQueries: bookingQueries,
		grid:           grid,
	}
}

// @Summary Day view
// @Description Slot listing and bookings for one calendar day
// @Tags calendar
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayViewResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/day/{date} [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	date, err := h.grid.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.bookingQueries.Day(c.Request.Context(), date, middleware.GetViewer(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load day view", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayView(view))
}

// @Summary Week view
// @Description Occupancy grid for the week containing the given day (weeks start Monday)
// @Tags calendar
// @Produce json
// @Param date path string true "Any day in the week (YYYY-MM-DD)"
// @Success 200 {object} resdto.WeekViewResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/week/{date} [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	date, err := h.grid.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.bookingQueries.Week(c.Request.Context(), date, middleware.GetViewer(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load week view", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekView(view))
}

// @Summary Month view
// @Description Day-keyed booking buckets for one month
// @Tags calendar
// @Produce json
// @Param yearmonth path string true "Month (YYYY-MM)"
// @Success 200 {object} resdto.MonthViewResponse
// @Failure 400 {object} map[string]string
// @Router /calendar/month/{yearmonth} [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, month, ok := parseYearMonth(c.Param("yearmonth"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, schedule.ErrInvalidRange, "Invalid month format, expected YYYY-MM", nil)
		return
	}

	view, err := h.bookingQueries.Month(c.Request.Context(), year, month, middleware.GetViewer(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load month view", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthView(view))
}

func parseYearMonth(value string) (int, time.Month, bool) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return year, time.Month(m), true
}
