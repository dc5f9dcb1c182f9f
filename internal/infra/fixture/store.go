// Package fixture is an in-process backend holding demo data in memory. It
// implements the same ports as the postgres backend.
package fixture

import (
	"sort"
	"sync"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

type roomRecord struct {
	seq  int64
	room *room.Room
}

type bookingRecord struct {
	seq  int64
	snap booking.Snapshot
}

type Store struct {
	// txMu serializes units of work; mu guards the maps.
	txMu     sync.Mutex
	mu       sync.RWMutex
	seq      int64
	rooms    map[uuid.UUID]roomRecord
	bookings map[uuid.UUID]bookingRecord
	users    map[uuid.UUID]*user.User
	emails   map[string]uuid.UUID
}

func NewStore() *Store {
	return &Store{
		rooms:    make(map[uuid.UUID]roomRecord),
		bookings: make(map[uuid.UUID]bookingRecord),
		users:    make(map[uuid.UUID]*user.User),
		emails:   make(map[string]uuid.UUID),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Store) insertRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID()] = roomRecord{seq: s.nextSeq(), room: copyRoom(r)}
}

func (s *Store) insertUser(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := u.Email().Value()
	if _, taken := s.emails[email]; taken {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	s.users[u.ID()] = u
	s.emails[email] = u.ID()
	return nil
}

func (s *Store) insertBooking(b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[b.RoomID()]; !ok {
		return infra.WrapRepoErr("room does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := s.users[b.UserID()]; !ok {
		return infra.WrapRepoErr("user does not exist", nil, infra.KindForeignKeyViolated)
	}
	s.bookings[b.ID()] = bookingRecord{seq: s.nextSeq(), snap: b.Snapshot()}
	return nil
}

// roomsNewestFirst orders by created_at desc, ties broken by insertion order.
// Callers hold at least a read lock.
func (s *Store) roomsNewestFirst() []roomRecord {
	out := make([]roomRecord, 0, len(s.rooms))
	for _, rec := range s.rooms {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(out[i].room.CreatedAt(), out[i].seq, out[j].room.CreatedAt(), out[j].seq)
	})
	return out
}

func (s *Store) bookingsNewestFirst(keep func(booking.Snapshot) bool) []booking.Snapshot {
	recs := make([]bookingRecord, 0, len(s.bookings))
	for _, rec := range s.bookings {
		if keep(rec.snap) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return newer(recs[i].snap.CreatedAt, recs[i].seq, recs[j].snap.CreatedAt, recs[j].seq)
	})

	out := make([]booking.Snapshot, len(recs))
	for i, rec := range recs {
		out[i] = rec.snap
	}
	return out
}

func newer(a time.Time, aSeq int64, b time.Time, bSeq int64) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aSeq > bSeq
}

func copyRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(r.ID(), r.Attributes(), r.CreatedAt(), r.UpdatedAt())
}
