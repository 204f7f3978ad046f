package usecase

import (
	"context"
	"log/slog"
	"sort"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

type PayrollInput struct {
	UserID      uint
	Month       string
	Year        int
	BasicSalary float64
	Allowances  float64
	Deductions  float64
}

type PayrollUsecase struct {
	payroll repository.PayrollRepository
	metrics *metrics.Metrics
	log     *slog.Logger
	now     Clock
}

func NewPayrollUsecase(payroll repository.PayrollRepository, m *metrics.Metrics, log *slog.Logger, now Clock) *PayrollUsecase {
	return &PayrollUsecase{payroll: payroll, metrics: m, log: log, now: now.orDefault()}
}

// Create stores a payroll record with its net salary computed once. The user
// id is not resolved and repeated periods are accepted.
func (u *PayrollUsecase) Create(ctx context.Context, in PayrollInput) (model.Payroll, error) {
	p := model.Payroll{
		UserID:      in.UserID,
		Month:       in.Month,
		Year:        in.Year,
		BasicSalary: in.BasicSalary,
		Allowances:  in.Allowances,
		Deductions:  in.Deductions,
		NetSalary:   model.NetOf(in.BasicSalary, in.Allowances, in.Deductions),
		CreatedAt:   u.now(),
	}
	if err := u.payroll.Create(&p); err != nil {
		return model.Payroll{}, apperror.Internal("Failed to create payroll", err)
	}

	u.metrics.IncPayroll()
	u.log.InfoContext(ctx, "Payroll created", "payroll_id", p.ID, "user_id", p.UserID)
	return p, nil
}

// List returns the records visible to the caller, ordered by SortPayroll.
func (u *PayrollUsecase) List(caller auth.Identity) []model.Payroll {
	var list []model.Payroll
	if caller.IsAdmin() {
		list = u.payroll.GetAll()
	} else {
		list = u.payroll.GetByUserID(caller.ID)
	}
	if list == nil {
		list = []model.Payroll{}
	}
	SortPayroll(list)
	return list
}

// SortPayroll orders by year descending, then by month name compared as a
// plain string, descending. "March" therefore lands before "April".
func SortPayroll(list []model.Payroll) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		return list[i].Month > list[j].Month
	})
}
