package fixture

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/password"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Seed struct {
	Users    []SeedUser    `yaml:"users"`
	Rooms    []SeedRoom    `yaml:"rooms"`
	Bookings []SeedBooking `yaml:"bookings"`
}

type SeedUser struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type SeedRoom struct {
	Key          string  `yaml:"key"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	Capacity     int     `yaml:"capacity"`
	Location     string  `yaml:"location"`
	PricePerHour int64   `yaml:"price_per_hour"`
	ImageURL     *string `yaml:"image_url"`
}

type SeedBooking struct {
	Room      string  `yaml:"room"`
	User      string  `yaml:"user"`
	DayOffset int     `yaml:"day_offset"`
	StartTime string  `yaml:"start_time"`
	EndTime   string  `yaml:"end_time"`
	Status    string  `yaml:"status"`
	Notes     *string `yaml:"notes"`
}

// LoadSeed reads path, or the embedded demo seed when path is empty.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Seed{}, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// Apply loads seed into s. Every seeded user gets the same password. Booking
// days count from the calendar day of now; approved bookings receive a token
// via issuer.
func (s *Store) Apply(seed Seed, userPassword string, issuer booking.TokenIssuer, now time.Time) error {
	hash, err := password.HashPasswordWithCost(userPassword, password.MinCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	usersByEmail := make(map[string]uuid.UUID, len(seed.Users))
	for _, su := range seed.Users {
		email, err := user.NewEmail(su.Email)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", su.Email, err)
		}
		fullName, err := user.NewFullName(su.FullName)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", su.Email, err)
		}
		role, err := user.NewRole(su.Role)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", su.Email, err)
		}

		u := user.ReconstructUser(uuid.New(), email, fullName, hash, role, now)
		if err := s.insertUser(u); err != nil {
			return fmt.Errorf("seed user %q: %w", su.Email, err)
		}
		usersByEmail[email.Value()] = u.ID()
	}

	roomsByKey := make(map[string]uuid.UUID, len(seed.Rooms))
	for _, sr := range seed.Rooms {
		r, err := room.NewRoom(room.Attributes{
			Name:         sr.Name,
			Description:  sr.Description,
			Capacity:     sr.Capacity,
			Location:     sr.Location,
			PricePerHour: sr.PricePerHour,
			ImageURL:     sr.ImageURL,
		}, now)
		if err != nil {
			return fmt.Errorf("seed room %q: %w", sr.Key, err)
		}
		s.insertRoom(r)
		roomsByKey[sr.Key] = r.ID()
	}

	today := booking.DateOf(now)
	for i, sb := range seed.Bookings {
		b, err := seedBooking(sb, usersByEmail, roomsByKey, today, issuer, now)
		if err != nil {
			return fmt.Errorf("seed booking %d: %w", i, err)
		}
		if err := s.insertBooking(b); err != nil {
			return fmt.Errorf("seed booking %d: %w", i, err)
		}
	}

	return nil
}

func seedBooking(
	sb SeedBooking,
	usersByEmail map[string]uuid.UUID,
	roomsByKey map[string]uuid.UUID,
	today booking.Date,
	issuer booking.TokenIssuer,
	now time.Time,
) (*booking.Booking, error) {
	userID, ok := usersByEmail[sb.User]
	if !ok {
		return nil, fmt.Errorf("unknown user %q", sb.User)
	}
	roomID, ok := roomsByKey[sb.Room]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", sb.Room)
	}
	tr, err := booking.ParseTimeRange(sb.StartTime, sb.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(sb.Status)
	if err != nil {
		return nil, err
	}

	day := today.AddDays(sb.DayOffset)
	b, err := booking.NewBooking(userID, roomID, day, day, tr, sb.Notes, now)
	if err != nil {
		return nil, err
	}

	switch status {
	case booking.StatusApproved:
		b.Approve(issuer, now.Location(), now)
	case booking.StatusRejected:
		b.Reject(now)
	case booking.StatusPending:
	default:
		snap := b.Snapshot()
		snap.Status = status
		b = booking.ReconstructBooking(snap)
	}
	return b, nil
}
