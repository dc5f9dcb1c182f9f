package api

import (
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds     commands.RoomCommands
	rooms    queries.RoomQueries
	bookings queries.BookingQueries
}

func NewRoomHandler(cmds commands.RoomCommands, rooms queries.RoomQueries, bookings queries.BookingQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, rooms: rooms, bookings: bookings}
}

// @Summary List rooms
// @Description List all rooms, newest first
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.rooms.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load rooms")
		return
	}
	h.respondRooms(c, views)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load room")
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render room", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Active bookings of a room
// @Description Approved and pending bookings of the room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{id}/bookings [get]
func (h *RoomHandler) ActiveBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	views, err := h.bookings.ListActiveByRoom(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load bookings")
		return
	}
	respondBookings(c, views)
}

// @Summary Unavailable slots
// @Description Start and end times of approved or pending bookings of the room starting on date
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{id}/unavailable-slots [get]
func (h *RoomHandler) UnavailableSlots(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.DateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date is required", nil)
		return
	}
	date, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	slots, err := h.bookings.UnavailableSlots(c.Request.Context(), id, date)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load slots")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnavailableSlots(slots))
}

// @Summary Check availability
// @Description Check a candidate time range against the room's occupied slots
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "YYYY-MM-DD"
// @Param start_time query string true "HH:MM"
// @Param end_time query string true "HH:MM"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/{id}/availability [get]
func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date, start_time and end_time are required", nil)
		return
	}
	date, tr, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	result, err := h.bookings.CheckAvailability(c.Request.Context(), id, date, tr)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(result))
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create room")
		return
	}
	h.respondRoom(c, http.StatusCreated, id)
}

// @Summary Update room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		abortWithUseCaseError(c, err, "Failed to update room")
		return
	}
	h.respondRoom(c, http.StatusOK, id)
}

// @Summary Delete room
// @Description Delete a room and its bookings
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Failed to delete room")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) respondRoom(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	res, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render room", nil)
		return
	}
	c.JSON(status, res)
}

func (h *RoomHandler) respondRooms(c *gin.Context, views []*queries.RoomView) {
	res, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render rooms", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func respondBookings(c *gin.Context, views []*queries.BookingView) {
	res, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render bookings", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
