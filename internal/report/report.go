package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/hrportal/internal/attendance"
	"github.com/julianstephens/hrportal/internal/constants"
	"github.com/julianstephens/hrportal/internal/logger"
	"github.com/julianstephens/hrportal/internal/models"
	"github.com/julianstephens/hrportal/internal/utils"
)

// Header is the column row of a monthly sheet
var Header = []any{"Date", "Day", "Check-In", "Check-Out", "Break", "Gross", "Effective", "Arrival", "Status"}

// Filename is the default export name for an employee's month
func Filename(user models.User, month time.Month, year int) string {
	return fmt.Sprintf("attendance-%s-%d-%02d.xlsx", user.Identifier(), year, int(month))
}

// ExportMonth writes one sheet for month (in now's year) with a row per
// day up to today and a summary of average effective hours and on-time share.
func ExportMonth(path string, user models.User, rows []models.DayLog, month time.Month, now time.Time, p attendance.Policy) error {
	days := attendance.FilterRange(rows, attendance.ForMonth(month), now)
	if len(days) == 0 {
		return fmt.Errorf("%s %d has no recorded days yet", month, now.Year())
	}
	slices.Reverse(days)

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s %d", month.String()[:3], now.Year())
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	styles, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	title := fmt.Sprintf("Attendance: %s (%s), %s %d", user.DisplayName(), user.Identifier(), month, now.Year())
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A3", &Header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A3", "I3", styles.header); err != nil {
		return err
	}

	row := 4
	for _, log := range days {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, ptr(dayRow(log, now, p))); err != nil {
			return fmt.Errorf("failed to write %s: %w", log.Date, err)
		}
		s := attendance.Compute(log, now, p)
		if id, ok := styles.arrival[s.Arrival]; ok {
			arrival, _ := excelize.CoordinatesToCellName(8, row)
			if err := f.SetCellStyle(sheet, arrival, arrival, id); err != nil {
				return err
			}
		}
		row++
	}

	first := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
	sum := attendance.Summarize(days, first, now, p)
	row++
	summary := [][]any{
		{"Present days", sum.PresentDays},
		{"Average effective", sum.AvgEffective},
		{"On time", sum.OnTime()},
	}
	for _, line := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "I", 14); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	logger.Info("attendance exported", "path", path, "month", month, "days", len(days))
	return nil
}

func dayRow(log models.DayLog, now time.Time, p attendance.Policy) []any {
	s := attendance.Compute(log, now, p)

	weekday := constants.EmptyValue
	if d, err := utils.ParseDate(log.Date); err == nil {
		weekday = d.Weekday().String()[:3]
	}
	brk := constants.EmptyValue
	if s.HasDuration {
		brk = utils.FormatHours(s.BreakMinutes)
	}
	arrival := string(s.Arrival)
	if arrival == "" {
		arrival = constants.EmptyValue
	}
	return []any{
		log.Date,
		weekday,
		orEmpty(log.CheckIn),
		orEmpty(log.CheckOut),
		brk,
		s.Gross,
		s.Effective,
		arrival,
		attendance.StatusLabel(log, s),
	}
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return constants.EmptyValue
	}
	return s
}

func ptr[T any](v T) *T { return &v }

type styleSet struct {
	title   int
	header  int
	arrival map[constants.ArrivalStatus]int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var ss styleSet
	var err error

	ss.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return ss, err
	}
	ss.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0EBF5"}, Pattern: 1},
	})
	if err != nil {
		return ss, err
	}

	ss.arrival = make(map[constants.ArrivalStatus]int)
	for status, color := range map[constants.ArrivalStatus]string{
		constants.ArrivalOnTime: constants.ColorOnTime,
		constants.ArrivalLate:   constants.ColorLate,
		constants.ArrivalEarly:  constants.ColorEarly,
	} {
		id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: strings.TrimPrefix(color, "#")}})
		if err != nil {
			return ss, err
		}
		ss.arrival[status] = id
	}
	return ss, nil
}
