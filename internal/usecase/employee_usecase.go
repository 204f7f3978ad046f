package usecase

import (
	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

const msgEmployeeNotFound = "Employee not found"

type EmployeeUsecase struct {
	users repository.UserRepository
}

func NewEmployeeUsecase(users repository.UserRepository) *EmployeeUsecase {
	return &EmployeeUsecase{users: users}
}

// List returns every user, admins included.
func (u *EmployeeUsecase) List() []model.User {
	return u.users.GetAll()
}

func (u *EmployeeUsecase) Get(id uint) (model.User, error) {
	user, err := u.users.FindByID(id)
	if err != nil {
		return model.User{}, apperror.NotFound(msgEmployeeNotFound)
	}
	return *user, nil
}

// Update replaces all four profile fields.
func (u *EmployeeUsecase) Update(id uint, profile model.Profile) error {
	if err := u.users.UpdateProfile(id, profile); err != nil {
		return apperror.NotFound(msgEmployeeNotFound)
	}
	return nil
}
