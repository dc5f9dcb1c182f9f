package analytics

import (
	"math"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	BucketApproved = "Approved"
	BucketPending  = "Pending"
	BucketRejected = "Rejected"

	ColorApproved = "#16a34a"
	ColorPending  = "#ca8a04"
	ColorRejected = "#dc2626"
)

// Params tunes the utilization estimate. AssumedRoomCount is deliberately not
// the live room count.
type Params struct {
	AssumedRoomCount int
	HoursPerDay      int
	DaysPerPeriod    int
	TrailingMonths   int
}

func DefaultParams() Params {
	return Params{
		AssumedRoomCount: 2,
		HoursPerDay:      8,
		DaysPerPeriod:    30,
		TrailingMonths:   6,
	}
}

// BookingFact is the slice of a booking the reports read.
type BookingFact struct {
	RoomID    uuid.UUID
	Status    booking.Status
	StartHour int
	EndHour   int
	CreatedAt time.Time
}

type RoomFact struct {
	ID   uuid.UUID
	Name string
}

type DashboardStats struct {
	TotalBookings          int
	UtilizationRate        int
	AverageBookingDuration float64
}

type RoomPopularity struct {
	RoomID   uuid.UUID
	Name     string
	Bookings int
}

type StatusBucket struct {
	Name  string
	Value int
	Color string
}

type MonthlyActivity struct {
	Month    string
	Year     int
	Bookings int
}

// Dashboard sums hours over approved and completed bookings only but divides
// by the count of all bookings.
func Dashboard(bookings []BookingFact, p Params) DashboardStats {
	totalHours := 0
	for _, b := range bookings {
		if b.Status == booking.StatusApproved || b.Status == booking.StatusCompleted {
			totalHours += max(1, b.EndHour-b.StartHour)
		}
	}

	var average float64
	if len(bookings) > 0 {
		average = roundTo1(float64(totalHours) / float64(len(bookings)))
	}

	utilization := 0
	if capacity := p.AssumedRoomCount * p.HoursPerDay * p.DaysPerPeriod; capacity > 0 {
		utilization = min(100, roundHalfUp(float64(totalHours)/float64(capacity)*100))
	}

	return DashboardStats{
		TotalBookings:          len(bookings),
		UtilizationRate:        utilization,
		AverageBookingDuration: average,
	}
}

// Popularity keeps the order of rooms and ignores bookings for rooms that no
// longer exist.
func Popularity(rooms []RoomFact, bookings []BookingFact) []RoomPopularity {
	result := make([]RoomPopularity, len(rooms))
	index := make(map[uuid.UUID]int, len(rooms))
	for i, r := range rooms {
		result[i] = RoomPopularity{RoomID: r.ID, Name: r.Name}
		index[r.ID] = i
	}

	for _, b := range bookings {
		if i, ok := index[b.RoomID]; ok {
			result[i].Bookings++
		}
	}
	return result
}

func StatusDistribution(bookings []BookingFact) []StatusBucket {
	counts := make(map[booking.Status]int, 5)
	for _, b := range bookings {
		counts[b.Status]++
	}

	buckets := []StatusBucket{
		{Name: BucketApproved, Value: counts[booking.StatusApproved] + counts[booking.StatusCompleted], Color: ColorApproved},
		{Name: BucketPending, Value: counts[booking.StatusPending], Color: ColorPending},
		{Name: BucketRejected, Value: counts[booking.StatusRejected] + counts[booking.StatusCancelled], Color: ColorRejected},
	}

	result := make([]StatusBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket.Value > 0 {
			result = append(result, bucket)
		}
	}
	return result
}

// Monthly counts bookings by creation month for the trailing months ending
// with now's month, oldest first. Month boundaries are taken in now's location.
func Monthly(bookings []BookingFact, now time.Time, months int) []MonthlyActivity {
	if months <= 0 {
		return []MonthlyActivity{}
	}
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	result := make([]MonthlyActivity, months)
	index := make(map[[2]int]int, months)
	for i := range months {
		m := first.AddDate(0, i-(months-1), 0)
		result[i] = MonthlyActivity{Month: m.Month().String()[:3], Year: m.Year()}
		index[[2]int{m.Year(), int(m.Month())}] = i
	}

	for _, b := range bookings {
		created := b.CreatedAt.In(loc)
		if i, ok := index[[2]int{created.Year(), int(created.Month())}]; ok {
			result[i].Bookings++
		}
	}
	return result
}

// roundHalfUp rounds .5 towards +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}
