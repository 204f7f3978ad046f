package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/report"
	"dayflow-backend/internal/repository"
)

const exportTimeLayout = "2006-01-02 15:04"

type DepartmentCosts struct {
	Engineering int `json:"Engineering"`
	Design      int `json:"Design"`
	Marketing   int `json:"Marketing"`
	Sales       int `json:"Sales"`
	HR          int `json:"HR"`
}

// Overview is the fixed reporting payload. It is not derived from stored data.
type Overview struct {
	MonthlyAttendance []int           `json:"monthlyAttendance"`
	DepartmentCosts   DepartmentCosts `json:"departmentCosts"`
	HiringStats       []int           `json:"hiringStats"`
}

type ReportUsecase struct {
	attendance repository.AttendanceRepository
	users      repository.UserRepository
	metrics    *metrics.Metrics
	log        *slog.Logger
}

func NewReportUsecase(
	attendance repository.AttendanceRepository,
	users repository.UserRepository,
	m *metrics.Metrics,
	log *slog.Logger,
) *ReportUsecase {
	return &ReportUsecase{attendance: attendance, users: users, metrics: m, log: log}
}

func (u *ReportUsecase) Overview() Overview {
	return Overview{
		MonthlyAttendance: []int{85, 88, 92, 90, 95, 89}, // last 6 months
		DepartmentCosts: DepartmentCosts{
			Engineering: 45000,
			Design:      15000,
			Marketing:   18000,
			Sales:       12000,
			HR:          10000,
		},
		HiringStats: []int{2, 1, 3, 0, 2, 4},
	}
}

// AttendanceExport renders attendance in [startDate, endDate] as an xlsx
// workbook, one sheet per department, ordered by date then record id.
func (u *ReportUsecase) AttendanceExport(ctx context.Context, startDate, endDate string) (*bytes.Buffer, error) {
	started := time.Now()

	users := make(map[uint]model.User)
	for _, usr := range u.users.GetAll() {
		if _, ok := users[usr.ID]; !ok {
			users[usr.ID] = usr
		}
	}

	var rows []report.AttendanceRow
	for _, a := range u.attendance.GetAll() {
		if !inDateRange(a.Date, startDate, endDate) {
			continue
		}
		owner := users[a.UserID]
		row := report.AttendanceRow{
			ID:          a.ID,
			Department:  owner.Department,
			Employee:    owner.Name,
			Email:       owner.Email,
			Date:        a.Date,
			CheckIn:     a.CheckIn.Format(exportTimeLayout),
			HoursWorked: a.HoursWorkedLabel(),
		}
		if a.CheckOut != nil {
			row.CheckOut = a.CheckOut.Format(exportTimeLayout)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].ID < rows[j].ID
	})

	buf, err := report.AttendanceWorkbook(rows)
	if err != nil {
		if errors.Is(err, report.ErrNoRecords) {
			return nil, apperror.NotFound("No attendance records found")
		}
		u.log.ErrorContext(ctx, "Failed to generate attendance export", "error", err)
		return nil, apperror.Internal("Failed to generate report", err)
	}

	u.metrics.ObserveReport("xlsx", time.Since(started).Seconds())
	u.log.InfoContext(ctx, "Attendance export generated", "rows", len(rows), "bytes", buf.Len())
	return buf, nil
}
