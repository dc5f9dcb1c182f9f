//go:build unit

package api_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	principal    *shared.Principal
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, clk)
	s.principal = &shared.Principal{UserID: uuid.New(), Email: "user@example.com", Role: "user"}

	authenticated := fakeAuth(func() *shared.Principal { return s.principal })

	s.router.GET("/bookings/time-slots", s.handler.TimeSlots)
	s.router.POST("/bookings", authenticated, s.handler.Create)
	s.router.GET("/bookings", authenticated, s.handler.ListMine)
	s.router.GET("/bookings/:id", authenticated, s.handler.Get)
	s.router.GET("/admin/bookings", authenticated, s.handler.ListAll)
	s.router.GET("/admin/bookings/export", authenticated, s.handler.Export)
	s.router.POST("/admin/bookings/:id/approve", authenticated, s.handler.Approve)
	s.router.POST("/admin/bookings/:id/reject", authenticated, s.handler.Reject)
	s.router.DELETE("/admin/bookings/:id", authenticated, s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) asAdmin() {
	s.principal = &shared.Principal{UserID: uuid.New(), Email: "admin@example.com", Role: "admin"}
}

func (s *BookingHandlerTestSuite) TestTimeSlots() {
	s.mockQueries.EXPECT().Schedule().Return(&queries.Schedule{
		TimeSlots: []string{"06:00", "07:00"},
		Dates:     []string{"2025-03-10"},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/time-slots", nil, "")

	var response resdto.ScheduleResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal([]string{"06:00", "07:00"}, response.TimeSlots)
	s.Equal([]string{"2025-03-10"}, response.Dates)
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	bookingID := uuid.New()

	s.Run("success: returns 201 with a pending booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(s.principal.UserID)).
			Return(&commands.CreateBookingResult{BookingID: bookingID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "notes too long", mutate: testutil.Field("notes", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps use case failures", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "domain validation", err: errs.Mark(booking.ErrInvalidDate, commands.ErrDomainValidation), code: http.StatusBadRequest},
			{name: "room not found", err: commands.ErrRoomNotFound, code: http.StatusNotFound},
			{name: "slot taken", err: commands.ErrSlotUnavailable, code: http.StatusConflict},
			{name: "database failure", err: errs.Mark(errors.New("timeout"), commands.ErrDatabaseOperationFailed), code: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: passes the status filter", func() {
		approved := booking.StatusApproved
		views := []*queries.BookingView{builder.NewBookingBuilder().WithStatus(approved).BuildView()}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.principal.UserID, &approved).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=approved", nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("approved", response[0].Status)
	})

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.principal.UserID, nil).Return([]*queries.BookingView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=archived", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	room := builder.NewRoomBuilder().BuildView()
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Room = room }).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: embeds the room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.principal.UserID, "user").Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Room)
		s.Equal(room.Name, response.Room.Name)
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any(), gomock.Any()).Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListAll() {
	s.asAdmin()
	pending := booking.StatusPending
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView(), builder.NewBookingBuilder().BuildView()}
	s.mockQueries.EXPECT().ListAll(gomock.Any(), &pending).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?status=pending", nil, "token")

	var response []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 2)
}

func (s *BookingHandlerTestSuite) TestExport() {
	s.asAdmin()

	s.Run("success: streams the workbook as an attachment", func() {
		s.mockQueries.EXPECT().ExportAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, w io.Writer) error {
				_, err := w.Write([]byte("xlsx-bytes"))
				return err
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/export", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"Content-Disposition": `attachment; filename="bookings-20250310.xlsx"`,
		})
		s.Equal("xlsx-bytes", rec.Body.String())
	})

	s.Run("error: 500 when the export fails", func() {
		s.mockQueries.EXPECT().ExportAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/export", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to export bookings")
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	s.asAdmin()
	token := "ABCDEFGHIJ"
	expires := time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC)
	view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusApproved
		b.Token = &token
		b.TokenExpiresAt = &expires
	}).BuildView()
	url := "/admin/bookings/" + view.ID.String() + "/approve"

	s.Run("success: returns the approved booking with its token", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), view.ID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.principal.UserID, "admin").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
		s.Require().NotNil(response.Token)
		s.Equal(token, *response.Token)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), view.ID).Return(commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestReject() {
	s.asAdmin()
	view := builder.NewBookingBuilder().WithStatus(booking.StatusRejected).BuildView()
	url := "/admin/bookings/" + view.ID.String() + "/reject"

	s.mockCommands.EXPECT().Reject(gomock.Any(), view.ID).Return(nil).Times(1)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any(), "admin").Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

	var response resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("rejected", response.Status)
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.asAdmin()
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/xyz", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
