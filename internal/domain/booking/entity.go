package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserRequired       = errs.New("booking user is required")
	ErrRoomRequired       = errs.New("booking room is required")
	ErrDatesRequired      = errs.New("booking start and end dates are required")
	ErrEndDateBeforeStart = errs.New("end date must not be before start date")
	ErrInvalidClockTime   = errs.New("time must be formatted as HH:MM")
	ErrInvalidDate        = errs.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidStatus      = errs.New("invalid booking status")
	ErrNotesTooLong       = errs.New("notes exceed maximum length")
)

const MaxNotesLength = 1000

type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	roomID         uuid.UUID
	startDate      Date
	endDate        Date
	timeRange      TimeRange
	status         Status
	token          *string
	tokenExpiresAt *time.Time
	notes          *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(userID, roomID uuid.UUID, startDate, endDate Date, timeRange TimeRange, notes *string, now time.Time) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrUserRequired
	}
	if roomID == uuid.Nil {
		return nil, ErrRoomRequired
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrDatesRequired
	}
	if endDate.Before(startDate) {
		return nil, ErrEndDateBeforeStart
	}

	normalized, err := normalizeNotes(notes)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		startDate: startDate,
		endDate:   endDate,
		timeRange: timeRange,
		status:    StatusPending,
		notes:     normalized,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Snapshot carries persisted booking state back into the domain.
type Snapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RoomID         uuid.UUID
	StartDate      Date
	EndDate        Date
	TimeRange      TimeRange
	Status         Status
	Token          *string
	TokenExpiresAt *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ReconstructBooking(s Snapshot) *Booking {
	return &Booking{
		id:             s.ID,
		userID:         s.UserID,
		roomID:         s.RoomID,
		startDate:      s.StartDate,
		endDate:        s.EndDate,
		timeRange:      s.TimeRange,
		status:         s.Status,
		token:          s.Token,
		tokenExpiresAt: s.TokenExpiresAt,
		notes:          s.Notes,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

// Approve mints a token valid until the booked slot ends. The current status
// is not checked: re-approving replaces the token.
func (b *Booking) Approve(issuer TokenIssuer, loc *time.Location, now time.Time) {
	token := issuer.Issue()
	expiresAt := TokenExpiry(b.startDate, b.timeRange.End(), loc)

	b.status = StatusApproved
	b.token = &token
	b.tokenExpiresAt = &expiresAt
	b.updatedAt = now
}

// Reject leaves any token in place.
func (b *Booking) Reject(now time.Time) {
	b.status = StatusRejected
	b.updatedAt = now
}

func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:             b.id,
		UserID:         b.userID,
		RoomID:         b.roomID,
		StartDate:      b.startDate,
		EndDate:        b.endDate,
		TimeRange:      b.timeRange,
		Status:         b.status,
		Token:          b.token,
		TokenExpiresAt: b.tokenExpiresAt,
		Notes:          b.notes,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) RoomID() uuid.UUID          { return b.roomID }
func (b *Booking) StartDate() Date            { return b.startDate }
func (b *Booking) EndDate() Date              { return b.endDate }
func (b *Booking) TimeRange() TimeRange       { return b.timeRange }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Token() *string             { return b.token }
func (b *Booking) TokenExpiresAt() *time.Time { return b.tokenExpiresAt }
func (b *Booking) Notes() *string             { return b.notes }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func normalizeNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxNotesLength {
		return nil, ErrNotesTooLong
	}
	return &trimmed, nil
}
