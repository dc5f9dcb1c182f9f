package response

import (
	"room-booking/internal/domain/analytics"

	"github.com/google/uuid"
)

type DashboardResponse struct {
	TotalBookings          int     `json:"total_bookings"`
	UtilizationRate        int     `json:"utilization_rate"`
	AverageBookingDuration float64 `json:"average_booking_duration"`
}

func FromDashboard(s analytics.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalBookings:          s.TotalBookings,
		UtilizationRate:        s.UtilizationRate,
		AverageBookingDuration: s.AverageBookingDuration,
	}
}

type RoomPopularityResponse struct {
	RoomID   uuid.UUID `json:"room_id"`
	Name     string    `json:"name"`
	Bookings int       `json:"bookings"`
}

func FromRoomPopularity(items []analytics.RoomPopularity) []RoomPopularityResponse {
	res := make([]RoomPopularityResponse, len(items))
	for i, it := range items {
		res[i] = RoomPopularityResponse{RoomID: it.RoomID, Name: it.Name, Bookings: it.Bookings}
	}
	return res
}

type StatusBucketResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

func FromStatusBuckets(items []analytics.StatusBucket) []StatusBucketResponse {
	res := make([]StatusBucketResponse, len(items))
	for i, it := range items {
		res[i] = StatusBucketResponse{Name: it.Name, Value: it.Value, Color: it.Color}
	}
	return res
}

type MonthlyActivityResponse struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Bookings int    `json:"bookings"`
}

func FromMonthlyActivity(items []analytics.MonthlyActivity) []MonthlyActivityResponse {
	res := make([]MonthlyActivityResponse, len(items))
	for i, it := range items {
		res[i] = MonthlyActivityResponse{Month: it.Month, Year: it.Year, Bookings: it.Bookings}
	}
	return res
}
