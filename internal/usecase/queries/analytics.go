package queries

import (
	"context"

	"room-booking/internal/domain/analytics"
	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
)

type AnalyticsQueries interface {
	Dashboard(ctx context.Context) (analytics.DashboardStats, error)
	RoomPopularity(ctx context.Context) ([]analytics.RoomPopularity, error)
	StatusDistribution(ctx context.Context) ([]analytics.StatusBucket, error)
	MonthlyActivity(ctx context.Context) ([]analytics.MonthlyActivity, error)
}

type analyticsQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
	clock    clock.Clock
	params   analytics.Params
}

func NewAnalyticsQueries(rooms RoomReadStore, bookings BookingReadStore, clk clock.Clock, cfg config.Config) AnalyticsQueries {
	return &analyticsQueriesImpl{
		rooms:    rooms,
		bookings: bookings,
		clock:    clk,
		params: analytics.Params{
			AssumedRoomCount: cfg.Analytics.AssumedRoomCount,
			HoursPerDay:      cfg.Analytics.HoursPerDay,
			DaysPerPeriod:    cfg.Analytics.DaysPerPeriod,
			TrailingMonths:   cfg.Analytics.TrailingMonths,
		},
	}
}

func (q *analyticsQueriesImpl) Dashboard(ctx context.Context) (analytics.DashboardStats, error) {
	facts, err := q.bookingFacts(ctx)
	if err != nil {
		return analytics.DashboardStats{}, err
	}
	return analytics.Dashboard(facts, q.params), nil
}

func (q *analyticsQueriesImpl) RoomPopularity(ctx context.Context) ([]analytics.RoomPopularity, error) {
	rooms, err := q.rooms.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	facts, err := q.bookingFacts(ctx)
	if err != nil {
		return nil, err
	}

	roomFacts := make([]analytics.RoomFact, len(rooms))
	for i, r := range rooms {
		roomFacts[i] = analytics.RoomFact{ID: r.ID, Name: r.Name}
	}
	return analytics.Popularity(roomFacts, facts), nil
}

func (q *analyticsQueriesImpl) StatusDistribution(ctx context.Context) ([]analytics.StatusBucket, error) {
	facts, err := q.bookingFacts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.StatusDistribution(facts), nil
}

func (q *analyticsQueriesImpl) MonthlyActivity(ctx context.Context) ([]analytics.MonthlyActivity, error) {
	facts, err := q.bookingFacts(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Monthly(facts, q.clock.Now(), q.params.TrailingMonths), nil
}

func (q *analyticsQueriesImpl) bookingFacts(ctx context.Context) ([]analytics.BookingFact, error) {
	views, err := q.bookings.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	facts := make([]analytics.BookingFact, 0, len(views))
	for _, v := range views {
		status, err := booking.ParseStatus(v.Status)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", v.ID)
		}
		tr, err := booking.ParseTimeRange(v.StartTime, v.EndTime)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", v.ID)
		}
		facts = append(facts, analytics.BookingFact{
			RoomID:    v.RoomID,
			Status:    status,
			StartHour: tr.Start().Hour(),
			EndHour:   tr.End().Hour(),
			CreatedAt: v.CreatedAt,
		})
	}
	return facts, nil
}
