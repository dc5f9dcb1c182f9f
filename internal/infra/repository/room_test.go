//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom(room.Attributes{
		Name:         "Aula",
		Description:  "Main hall",
		Capacity:     40,
		Location:     "Floor 3",
		PricePerHour: 500000,
	}, created)
	require.NoError(t, err)
	return r
}

func TestRoomRepositoryCreate(t *testing.T) {
	r := newRoom(t)
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, insertRoomSQL, []any{
		r.ID(), "Aula", "Main hall", int32(40), "Floor 3", int64(500000),
		pgtype.Text{},
		pgtype.Timestamptz{Time: created, Valid: true},
		pgtype.Timestamptz{Time: created, Valid: true},
	}).Return(tag("INSERT 0 1"), nil)

	require.NoError(t, NewRoomRepository(db).Create(context.Background(), r))
	db.AssertExpectations(t)
}

func TestRoomRepositoryGet(t *testing.T) {
	id := uuid.New()
	image := "https://cdn.example.com/aula.png"

	t.Run("found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectRoomSQL, []any{id}).Return(stubRow{values: []any{
			id, "Aula", "", int32(40), "Floor 3", int64(0),
			pgtype.Text{String: image, Valid: true},
			pgtype.Timestamptz{Time: created, Valid: true},
			pgtype.Timestamptz{Time: created.Add(time.Hour), Valid: true},
		}})

		got, err := NewRoomRepository(db).Get(context.Background(), id)
		require.NoError(t, err)

		want := room.Attributes{Name: "Aula", Capacity: 40, Location: "Floor 3", ImageURL: &image}
		if diff := cmp.Diff(want, got.Attributes()); diff != "" {
			t.Errorf("attributes mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, created.Add(time.Hour), got.UpdatedAt())
	})

	t.Run("not found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, selectRoomSQL, []any{id}).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewRoomRepository(db).Get(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomRepositoryUpdate(t *testing.T) {
	r := newRoom(t)
	later := created.Add(2 * time.Hour)
	require.NoError(t, r.Update(room.Attributes{
		Name:     "Aula Besar",
		Capacity: 60,
		Location: "Floor 3",
	}, later))

	tests := []struct {
		name     string
		tag      string
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", tag: "UPDATE 1"},
		{name: "missing row", tag: "UPDATE 0", wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			// created_at is not part of the statement
			db.On("Exec", mock.Anything, updateRoomSQL, []any{
				r.ID(), "Aula Besar", "", int32(60), "Floor 3", int64(0),
				pgtype.Text{},
				pgtype.Timestamptz{Time: later, Valid: true},
			}).Return(tag(tt.tag), nil)

			err := NewRoomRepository(db).Update(context.Background(), r)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			db.AssertExpectations(t)
		})
	}
}

func TestRoomRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "deleted", tag: "DELETE 1"},
		{name: "missing row", tag: "DELETE 0", wantKind: infra.KindNotFound},
		{name: "database error", tag: "", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, deleteRoomSQL, []any{id}).Return(tag(tt.tag), tt.execErr)

			err := NewRoomRepository(db).Delete(context.Background(), id)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
		})
	}
}
