package repository

import (
	"dayflow-backend/internal/model"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	GetAll() []model.User
	UpdateProfile(id uint, profile model.Profile) error
}

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db}
}

// Create assigns the next user id and appends the user. The email uniqueness
// check and the append happen under the same lock.
func (r *userRepository) Create(user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.indexByEmail(user.Email) != -1 {
		return ErrEmailExists
	}

	user.ID = r.db.nextUserID()
	r.db.users = append(r.db.users, *user)
	return nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i := r.indexByEmail(email)
	if i == -1 {
		return nil, ErrRecordNotFound
	}
	user := r.db.users[i]
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i := r.indexByID(id)
	if i == -1 {
		return nil, ErrRecordNotFound
	}
	user := r.db.users[i]
	return &user, nil
}

func (r *userRepository) GetAll() []model.User {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	list := make([]model.User, len(r.db.users))
	copy(list, r.db.users)
	return list
}

func (r *userRepository) UpdateProfile(id uint, profile model.Profile) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i := r.indexByID(id)
	if i == -1 {
		return ErrRecordNotFound
	}

	user := &r.db.users[i]
	user.Name = profile.Name
	user.Department = profile.Department
	user.Position = profile.Position
	user.Phone = profile.Phone
	return nil
}

// first match wins, like a linear find
func (r *userRepository) indexByEmail(email string) int {
	for i := range r.db.users {
		if r.db.users[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *userRepository) indexByID(id uint) int {
	for i := range r.db.users {
		if r.db.users[i].ID == id {
			return i
		}
	}
	return -1
}
