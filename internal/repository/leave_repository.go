package repository

import (
	"dayflow-backend/internal/model"
)

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	GetAll() []model.LeaveRequest
	GetByUserID(userID uint) []model.LeaveRequest
	GetByID(id uint) (*model.LeaveRequest, error)
	UpdateStatus(id uint, status string) (model.LeaveRequest, error)
}

type leaveRepository struct {
	db *DB
}

func NewLeaveRepository(db *DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	leave.ID = r.db.nextLeaveID()
	r.db.leaveRequests = append(r.db.leaveRequests, *leave)
	return nil
}

func (r *leaveRepository) GetAll() []model.LeaveRequest {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]model.LeaveRequest, len(r.db.leaveRequests))
	copy(list, r.db.leaveRequests)
	return list
}

func (r *leaveRepository) GetByUserID(userID uint) []model.LeaveRequest {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var list []model.LeaveRequest
	for _, l := range r.db.leaveRequests {
		if l.UserID == userID {
			list = append(list, l)
		}
	}
	return list
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, l := range r.db.leaveRequests {
		if l.ID == id {
			leave := l
			return &leave, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *leaveRepository) UpdateStatus(id uint, status string) (model.LeaveRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.leaveRequests {
		if r.db.leaveRequests[i].ID == id {
			r.db.leaveRequests[i].Status = status
			return r.db.leaveRequests[i], nil
		}
	}
	return model.LeaveRequest{}, ErrRecordNotFound
}
