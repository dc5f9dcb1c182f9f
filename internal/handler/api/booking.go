package api

import (
	"bytes"
	"fmt"
	"net/http"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingHandler struct {
	cmds    commands.BookingCommands
	queries queries.BookingQueries
	clock   clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, queries: q, clock: clk}
}

// @Summary Bookable time slots
// @Description Hourly start times and the next bookable dates
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.ScheduleResponse
// @Router /api/bookings/time-slots [get]
func (h *BookingHandler) TimeSlots(c *gin.Context) {
	s := h.queries.Schedule()
	c.JSON(http.StatusOK, resdto.ScheduleResponse{TimeSlots: s.TimeSlots, Dates: s.Dates})
}

// @Summary Create booking
// @Description Request a room for a date and time range. The booking starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		ID:     result.BookingID,
		Status: booking.StatusPending.String(),
	})
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved, rejected, completed or cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var q reqdto.StatusFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	status, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.queries.ListByUser(c.Request.Context(), userID, status)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	respondBookings(c, views)
}

// @Summary Get booking
// @Description Visible to the booking owner and to admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id, principal.UserID, principal.Role)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	respondBooking(c, view)
}

// @Summary All bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved, rejected, completed or cancelled"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	var q reqdto.StatusFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	status, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.queries.ListAll(c.Request.Context(), status)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	respondBookings(c, views)
}

// @Summary Export bookings
// @Description All bookings as an XLSX workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /api/admin/bookings/export [get]
func (h *BookingHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.queries.ExportAll(c.Request.Context(), &buf); err != nil {
		abortWithUseCaseError(c, err, "Failed to export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", h.clock.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// @Summary Approve booking
// @Description Approve a booking and issue its access token
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Approve(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Failed to approve booking")
		return
	}
	h.respondCurrent(c)
}

// @Summary Reject booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Reject(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Failed to reject booking")
		return
	}
	h.respondCurrent(c)
}

// @Summary Delete booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Failed to delete booking")
		return
	}
	c.Status(http.StatusNoContent)
}

// respondCurrent re-reads the booking addressed by :id as the calling admin.
func (h *BookingHandler) respondCurrent(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.queries.GetByID(c.Request.Context(), id, principal.UserID, principal.Role)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	respondBooking(c, view)
}

func respondBooking(c *gin.Context, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render booking", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
