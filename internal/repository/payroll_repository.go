package repository

import (
	"dayflow-backend/internal/model"
)

// PayrollRepository is append-only; records are never edited after Create.
type PayrollRepository interface {
	Create(payroll *model.Payroll) error
	GetAll() []model.Payroll
	GetByUserID(userID uint) []model.Payroll
}

type payrollRepository struct {
	db *DB
}

func NewPayrollRepository(db *DB) PayrollRepository {
	return &payrollRepository{db}
}

func (r *payrollRepository) Create(payroll *model.Payroll) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	payroll.ID = r.db.nextPayrollID()
	r.db.payroll = append(r.db.payroll, *payroll)
	return nil
}

func (r *payrollRepository) GetAll() []model.Payroll {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]model.Payroll, len(r.db.payroll))
	copy(list, r.db.payroll)
	return list
}

func (r *payrollRepository) GetByUserID(userID uint) []model.Payroll {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var list []model.Payroll
	for _, p := range r.db.payroll {
		if p.UserID == userID {
			list = append(list, p)
		}
	}
	return list
}
