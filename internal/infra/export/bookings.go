package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Bookings"

var bookingHeaders = []string{
	"Booking ID", "Room", "Location", "User ID", "Start Date", "End Date",
	"Start Time", "End Time", "Status", "Token", "Token Expires At", "Notes", "Created At",
}

var statusFill = map[string]string{
	"approved":  "#DCFCE7",
	"completed": "#DCFCE7",
	"pending":   "#FEF9C3",
	"rejected":  "#FEE2E2",
	"cancelled": "#FEE2E2",
}

// BookingSheetWriter renders bookings into a single-sheet XLSX workbook.
type BookingSheetWriter struct {
	loc *time.Location
}

// NewBookingSheetWriter formats timestamps in loc.
func NewBookingSheetWriter(loc *time.Location) *BookingSheetWriter {
	return &BookingSheetWriter{loc: loc}
}

func (w *BookingSheetWriter) WriteBookings(out io.Writer, bookings []*queries.BookingView) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err.Error())
		}
	}()

	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, h := range bookingHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(bookingsSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(bookingHeaders), 1)
	if err := f.SetCellStyle(bookingsSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	statusStyles := make(map[string]int, len(statusFill))
	for status, color := range statusFill {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("status style: %w", err)
		}
		statusStyles[status] = style
	}

	for i, b := range bookings {
		row := i + 2
		values := w.rowValues(b)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(bookingsSheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
		if style, ok := statusStyles[b.Status]; ok {
			cell, _ := excelize.CoordinatesToCellName(9, row)
			if err := f.SetCellStyle(bookingsSheet, cell, cell, style); err != nil {
				return fmt.Errorf("style row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(bookingsSheet, "A", "A", 38); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(bookingsSheet, "B", "M", 18); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (w *BookingSheetWriter) rowValues(b *queries.BookingView) []any {
	roomName, roomLocation := "", ""
	if b.Room != nil {
		roomName = b.Room.Name
		roomLocation = b.Room.Location
	}

	return []any{
		b.ID.String(),
		roomName,
		roomLocation,
		b.UserID.String(),
		b.StartDate,
		b.EndDate,
		b.StartTime,
		b.EndTime,
		b.Status,
		deref(b.Token),
		w.formatTime(b.TokenExpiresAt),
		deref(b.Notes),
		w.formatTime(&b.CreatedAt),
	}
}

func (w *BookingSheetWriter) formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(w.loc).Format("2006-01-02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
