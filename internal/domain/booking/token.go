package booking

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// TokenIssuer mints the access token attached to an approved booking.
type TokenIssuer interface {
	Issue() string
}

// RandomTokenIssuer concatenates two base-36 fragments of a 64-bit random
// value each. The result is opaque, lowercase alphanumeric and not suitable
// as a secret.
type RandomTokenIssuer struct{}

func NewRandomTokenIssuer() *RandomTokenIssuer {
	return &RandomTokenIssuer{}
}

func (RandomTokenIssuer) Issue() string {
	return fragment() + fragment()
}

func fragment() string {
	return strconv.FormatUint(rand.Uint64(), 36)
}

// TokenExpiry is the moment the booked slot ends: the start date combined with
// the end time, in loc.
func TokenExpiry(startDate Date, endTime ClockTime, loc *time.Location) time.Time {
	return startDate.At(endTime, loc)
}
