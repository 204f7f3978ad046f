package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayflow-backend/internal/model"
)

func TestPayrollUsecase_NetSalaryIsFrozen(t *testing.T) {
	f := newFixture(t)
	uc := NewPayrollUsecase(f.payroll, nil, f.log, f.clock())

	p, err := uc.Create(context.Background(), PayrollInput{
		UserID: 2, Month: "January", Year: 2026, BasicSalary: 5000, Allowances: 500, Deductions: 200,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5300, p.NetSalary, 0)

	// editing the returned copy leaves the stored net untouched
	p.Allowances = 0
	p.Deductions = 5000
	stored := f.payroll.GetAll()
	require.Len(t, stored, 1)
	assert.InDelta(t, 5300, stored[0].NetSalary, 0)
}

func TestPayrollUsecase_DefaultsToZero(t *testing.T) {
	f := newFixture(t)
	uc := NewPayrollUsecase(f.payroll, nil, f.log, f.clock())

	p, err := uc.Create(context.Background(), PayrollInput{UserID: 9, Month: "May", Year: 2026, BasicSalary: 4200})
	require.NoError(t, err)
	assert.InDelta(t, 4200, p.NetSalary, 0)
}

func TestSortPayroll_MonthNameIsComparedAsString(t *testing.T) {
	list := []model.Payroll{
		{ID: 1, Year: 2026, Month: "December"},
		{ID: 2, Year: 2026, Month: "January"},
		{ID: 3, Year: 2025, Month: "April"},
		{ID: 4, Year: 2025, Month: "March"},
		{ID: 5, Year: 2027, Month: "February"},
	}
	SortPayroll(list)

	got := make([]string, 0, len(list))
	for _, p := range list {
		got = append(got, p.Month)
	}
	// string order, not calendar order: January sorts ahead of December
	// (see DESIGN.md, open question 1)
	assert.Equal(t, []string{"February", "January", "December", "March", "April"}, got)
}

func TestPayrollUsecase_ListByRole(t *testing.T) {
	f := newFixture(t)
	uc := NewPayrollUsecase(f.payroll, nil, f.log, f.clock())
	ctx := context.Background()

	admin := f.addUser(t, "admin@co.com", "Admin", model.RoleAdmin)
	emp := f.addUser(t, "emp@co.com", "Emp", model.RoleEmployee)

	_, err := uc.Create(ctx, PayrollInput{UserID: emp.ID, Month: "January", Year: 2026, BasicSalary: 1})
	require.NoError(t, err)
	_, err = uc.Create(ctx, PayrollInput{UserID: 77, Month: "January", Year: 2026, BasicSalary: 1})
	require.NoError(t, err)

	own := uc.List(identity(emp))
	require.Len(t, own, 1)
	assert.Equal(t, emp.ID, own[0].UserID)

	assert.Len(t, uc.List(identity(admin)), 2)
	assert.NotNil(t, uc.List(identity(model.User{ID: 5, Role: model.RoleEmployee})))
}
