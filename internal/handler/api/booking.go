package api

import (
	"errors"
	"net/http"
	"strconv"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"
	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	grid            schedule.Grid
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, grid schedule.Grid) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		grid:            grid,
	}
}

// @Summary Create booking
// @Description Reserve a slot range in a room on a calendar day
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Proposed booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.bookingCommands.Create(c.Request.Context(), req.ToInput(h.grid), actor)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary List bookings
// @Description One day's bookings, optionally narrowed to a room, projected for the requesting viewer
// @Tags bookings
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param roomId query int false "Room ID"
// @Success 200 {array} resdto.PublicBookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date, err := h.grid.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	var roomID *booking.RoomID
	if raw := c.Query("roomId"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		id := booking.RoomID(n)
		if convErr != nil || !id.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown room",
			})
			return
		}
		roomID = &id
	}

	public, err := h.bookingQueries.List(c.Request.Context(), date, roomID, middleware.GetViewer(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPublicBookings(public))
}

// @Summary Get booking
// @Description Get one booking, projected for the requesting viewer
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PublicBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	public, err := h.bookingQueries.Get(c.Request.Context(), id, middleware.GetViewer(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPublicBooking(public))
}

// @Summary Update booking
// @Description Full-field update, re-validated with the booking excluded from its own overlap check
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Replacement booking fields"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.BookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	updated, err := h.bookingCommands.Update(c.Request.Context(), id, req.ToInput(h.grid), actor)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

// @Summary Delete booking
// @Description Delete a booking; allowed for the owner or an administrator
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	actor, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Delete(c.Request.Context(), id, actor); err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeBookingError maps command outcomes to HTTP statuses: validation
// rejections are 400, the store's authoritative conflict is 409 so callers
// can tell "fix your input" from "re-fetch and pick again".
func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing fields",
		})
	case errors.Is(err, booking.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot range",
		})
	case errors.Is(err, booking.ErrDurationExceeded):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Maximum booking is 2 hours (8 x 15-minute slots)",
		})
	case errors.Is(err, booking.ErrSlotConflict):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Selected slot overlaps",
		})
	case errors.Is(err, errs.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Selection is no longer available",
		})
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
