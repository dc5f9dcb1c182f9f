//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func roomRow(id uuid.UUID, name string) []any {
	return []any{
		id, name, "", int32(8), "Floor 1", int64(100000), pgtype.Text{},
		pgtype.Timestamptz{Time: created, Valid: true},
		pgtype.Timestamptz{Time: created, Valid: true},
	}
}

func bookingWithRoomRow(id, userID, roomID uuid.UUID, start, end int, status string, token *string, expires *time.Time) []any {
	day := pgtype.Date{Time: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Valid: true}
	row := []any{
		id, userID, roomID, day, day,
		pgconv.MinutesToPgtype(start), pgconv.MinutesToPgtype(end),
		status,
		pgconv.StringPtrToPgtype(token),
		pgconv.TimePtrToPgtype(expires),
		pgtype.Text{},
		pgtype.Timestamptz{Time: created, Valid: true},
		pgtype.Timestamptz{Time: created, Valid: true},
	}
	return append(row, roomRow(roomID, "Room A")...)
}

func TestBookingReadStoreFindByID(t *testing.T) {
	id, userID, roomID := uuid.New(), uuid.New(), uuid.New()
	token := "k3y"
	expires := time.Date(2025, 3, 12, 4, 0, 0, 0, time.UTC)

	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, findBookingSQL, []any{id}).
		Return(stubRow{values: bookingWithRoomRow(id, userID, roomID, 9*60, 11*60, "approved", &token, &expires)})

	got, err := NewBookingReadStore(db).FindByID(context.Background(), id)
	require.NoError(t, err)

	want := &queries.BookingView{
		ID:             id,
		UserID:         userID,
		RoomID:         roomID,
		StartDate:      "2025-03-12",
		EndDate:        "2025-03-12",
		StartTime:      "09:00",
		EndTime:        "11:00",
		Status:         "approved",
		Token:          &token,
		TokenExpiresAt: &expires,
		CreatedAt:      created,
		UpdatedAt:      created,
		Room: &queries.RoomView{
			ID:           roomID,
			Name:         "Room A",
			Capacity:     8,
			Location:     "Floor 1",
			PricePerHour: 100000,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingReadStoreLists(t *testing.T) {
	userID, roomID := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()

	newRows := func() *stubRows {
		return &stubRows{data: [][]any{
			bookingWithRoomRow(first, userID, roomID, 13*60, 14*60, "pending", nil, nil),
			bookingWithRoomRow(second, userID, roomID, 9*60, 10*60, "rejected", nil, nil),
		}}
	}

	tests := []struct {
		name  string
		query string
		args  []any
		call  func(s *BookingReadStore) ([]*queries.BookingView, error)
	}{
		{
			name:  "all",
			query: listBookingsSQL,
			args:  []any(nil),
			call: func(s *BookingReadStore) ([]*queries.BookingView, error) {
				return s.FindAll(context.Background())
			},
		},
		{
			name:  "by user",
			query: listBookingsByUserSQL,
			args:  []any{userID},
			call: func(s *BookingReadStore) ([]*queries.BookingView, error) {
				return s.FindByUserID(context.Background(), userID)
			},
		},
		{
			name:  "active by room",
			query: listActiveByRoomSQL,
			args:  []any{roomID},
			call: func(s *BookingReadStore) ([]*queries.BookingView, error) {
				return s.FindActiveByRoomID(context.Background(), roomID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Query", mock.Anything, tt.query, tt.args).Return(newRows(), nil)

			views, err := tt.call(NewBookingReadStore(db))
			require.NoError(t, err)
			require.Len(t, views, 2)
			assert.Equal(t, first, views[0].ID)
			assert.Equal(t, "13:00", views[0].StartTime)
			assert.Equal(t, second, views[1].ID)
			assert.Equal(t, "Room A", views[1].Room.Name)
		})
	}
}

func TestBookingReadStoreListErrors(t *testing.T) {
	t.Run("query fails", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", mock.Anything, listBookingsSQL, mock.Anything).Return(nil, assert.AnError)

		_, err := NewBookingReadStore(db).FindAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("iteration fails", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", mock.Anything, listBookingsSQL, mock.Anything).Return(&stubRows{err: assert.AnError}, nil)

		_, err := NewBookingReadStore(db).FindAll(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBookingReadStoreFindUnavailableSlots(t *testing.T) {
	roomID := uuid.New()
	date, err := booking.ParseDate("2025-03-12")
	require.NoError(t, err)

	db := new(MockDBTX)
	db.On("Query", mock.Anything, listUnavailableSlotSQL, []any{
		roomID,
		pgtype.Date{Time: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Valid: true},
	}).Return(&stubRows{data: [][]any{
		{pgconv.MinutesToPgtype(8 * 60), pgconv.MinutesToPgtype(9*60 + 30)},
		{pgconv.MinutesToPgtype(15 * 60), pgconv.MinutesToPgtype(17 * 60)},
	}}, nil)

	slots, err := NewBookingReadStore(db).FindUnavailableSlots(context.Background(), roomID, date)
	require.NoError(t, err)
	assert.Equal(t, []queries.UnavailableSlot{
		{StartTime: "08:00", EndTime: "09:30"},
		{StartTime: "15:00", EndTime: "17:00"},
	}, slots)
}

func TestRoomReadStore(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("find all keeps row order", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Query", mock.Anything, listRoomsSQL, []any(nil)).
			Return(&stubRows{data: [][]any{roomRow(b, "Room B"), roomRow(a, "Room A")}}, nil)

		views, err := NewRoomReadStore(db).FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Room B", views[0].Name)
		assert.Equal(t, a, views[1].ID)
	})

	t.Run("find by id", func(t *testing.T) {
		image := "https://cdn.example.com/rapat.png"
		rb := builder.NewRoomBuilder().With(func(r *builder.RoomBuilder) { r.ImageURL = &image })
		row := rb.BuildInfra()

		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, findRoomSQL, []any{rb.ID}).Return(stubRow{values: rowValues(row.Targets())})

		view, err := NewRoomReadStore(db).FindByID(context.Background(), rb.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(rb.BuildView(), view); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})
}
