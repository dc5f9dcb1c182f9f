package api

import (
	"net/http"

	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	queries queries.AnalyticsQueries
}

func NewAnalyticsHandler(q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{queries: q}
}

// @Summary Dashboard stats
// @Description Total bookings, utilization rate and average approved duration
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Router /api/admin/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.queries.Dashboard(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(stats))
}

// @Summary Room popularity
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomPopularityResponse
// @Router /api/admin/analytics/rooms [get]
func (h *AnalyticsHandler) Rooms(c *gin.Context) {
	items, err := h.queries.RoomPopularity(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to compute room popularity")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomPopularity(items))
}

// @Summary Status distribution
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StatusBucketResponse
// @Router /api/admin/analytics/status [get]
func (h *AnalyticsHandler) Status(c *gin.Context) {
	items, err := h.queries.StatusDistribution(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to compute status distribution")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatusBuckets(items))
}

// @Summary Monthly activity
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MonthlyActivityResponse
// @Router /api/admin/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	items, err := h.queries.MonthlyActivity(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to compute monthly activity")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthlyActivity(items))
}
