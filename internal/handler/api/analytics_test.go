//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"room-booking/internal/domain/analytics"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/tests/common/httptest"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAnalyticsQueries
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	handler := api.NewAnalyticsHandler(s.mockQueries)

	s.router.GET("/analytics/dashboard", handler.Dashboard)
	s.router.GET("/analytics/rooms", handler.Rooms)
	s.router.GET("/analytics/status", handler.Status)
	s.router.GET("/analytics/monthly", handler.Monthly)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestDashboard() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).Return(analytics.DashboardStats{
			TotalBookings:          4,
			UtilizationRate:        1,
			AverageBookingDuration: 1.5,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/dashboard", nil, "")

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.DashboardResponse{TotalBookings: 4, UtilizationRate: 1, AverageBookingDuration: 1.5}, response)
	})

	s.Run("error: 500", func() {
		s.mockQueries.EXPECT().Dashboard(gomock.Any()).Return(analytics.DashboardStats{}, errors.New("boom")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to compute dashboard")
	})
}

func (s *AnalyticsHandlerTestSuite) TestRooms() {
	roomID := uuid.New()
	s.mockQueries.EXPECT().RoomPopularity(gomock.Any()).
		Return([]analytics.RoomPopularity{{RoomID: roomID, Name: "RBC", Bookings: 3}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/rooms", nil, "")

	var response []resdto.RoomPopularityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal([]resdto.RoomPopularityResponse{{RoomID: roomID, Name: "RBC", Bookings: 3}}, response)
}

func (s *AnalyticsHandlerTestSuite) TestStatus() {
	s.mockQueries.EXPECT().StatusDistribution(gomock.Any()).Return([]analytics.StatusBucket{
		{Name: analytics.BucketApproved, Value: 2, Color: analytics.ColorApproved},
		{Name: analytics.BucketPending, Value: 1, Color: analytics.ColorPending},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/status", nil, "")

	var response []resdto.StatusBucketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("Approved", response[0].Name)
	s.Equal("#16a34a", response[0].Color)
}

func (s *AnalyticsHandlerTestSuite) TestMonthly() {
	s.mockQueries.EXPECT().MonthlyActivity(gomock.Any()).Return([]analytics.MonthlyActivity{
		{Month: "Feb", Year: 2025, Bookings: 0},
		{Month: "Mar", Year: 2025, Bookings: 2},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics/monthly", nil, "")

	var response []resdto.MonthlyActivityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal([]resdto.MonthlyActivityResponse{
		{Month: "Feb", Year: 2025, Bookings: 0},
		{Month: "Mar", Year: 2025, Bookings: 2},
	}, response)
}
