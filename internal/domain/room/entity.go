package room

import (
	"strings"
	"time"
	"unicode/utf8"

	"room-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired     = errs.New("room name is required")
	ErrNameTooLong      = errs.New("room name exceeds maximum length")
	ErrLocationRequired = errs.New("room location is required")
	ErrInvalidCapacity  = errs.New("room capacity must be a positive integer")
	ErrNegativePrice    = errs.New("room price per hour must not be negative")
)

const MaxNameLength = 200

type Room struct {
	id           uuid.UUID
	name         string
	description  string
	capacity     int
	location     string
	pricePerHour int64
	imageURL     *string
	createdAt    time.Time
	updatedAt    time.Time
}

// Attributes is the mutable part of a room, shared by create and update.
type Attributes struct {
	Name         string
	Description  string
	Capacity     int
	Location     string
	PricePerHour int64
	ImageURL     *string
}

func NewRoom(attrs Attributes, now time.Time) (*Room, error) {
	r := &Room{
		id:        uuid.New(),
		createdAt: now,
	}
	if err := r.apply(attrs, now); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:           id,
		name:         attrs.Name,
		description:  attrs.Description,
		capacity:     attrs.Capacity,
		location:     attrs.Location,
		pricePerHour: attrs.PricePerHour,
		imageURL:     attrs.ImageURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update replaces every attribute; callers merge partial input beforehand.
func (r *Room) Update(attrs Attributes, now time.Time) error {
	return r.apply(attrs, now)
}

func (r *Room) apply(attrs Attributes, now time.Time) error {
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	location := strings.TrimSpace(attrs.Location)
	if location == "" {
		return ErrLocationRequired
	}
	if attrs.Capacity < 1 {
		return ErrInvalidCapacity
	}
	if attrs.PricePerHour < 0 {
		return ErrNegativePrice
	}

	var imageURL *string
	if attrs.ImageURL != nil {
		if trimmed := strings.TrimSpace(*attrs.ImageURL); trimmed != "" {
			imageURL = &trimmed
		}
	}

	r.name = name
	r.description = strings.TrimSpace(attrs.Description)
	r.capacity = attrs.Capacity
	r.location = location
	r.pricePerHour = attrs.PricePerHour
	r.imageURL = imageURL
	r.updatedAt = now
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Description() string  { return r.description }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Location() string     { return r.location }
func (r *Room) PricePerHour() int64  { return r.pricePerHour }
func (r *Room) ImageURL() *string    { return r.imageURL }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

func (r *Room) Attributes() Attributes {
	return Attributes{
		Name:         r.name,
		Description:  r.description,
		Capacity:     r.capacity,
		Location:     r.location,
		PricePerHour: r.pricePerHour,
		ImageURL:     r.imageURL,
	}
}
