package usecase

import (
	"context"
	"errors"
	"log/slog"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/metrics"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
)

const (
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
)

type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Role       string
	Department string
	Position   string
	Phone      string
}

// AuthResult is a freshly issued token and the user it was issued for.
type AuthResult struct {
	Token string
	User  model.User
}

type AuthUsecase struct {
	users   repository.UserRepository
	tokens  *auth.TokenService
	metrics *metrics.Metrics
	log     *slog.Logger
	now     Clock
}

func NewAuthUsecase(
	users repository.UserRepository,
	tokens *auth.TokenService,
	m *metrics.Metrics,
	log *slog.Logger,
	now Clock,
) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, metrics: m, log: log, now: now.orDefault()}
}

// Register stores a new user and signs them in. The email check before hashing
// only fails fast; the repository re-checks atomically on insert.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	if _, err := u.users.FindByEmail(in.Email); err == nil {
		return AuthResult{}, apperror.Conflict(msgEmailExists)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		u.log.ErrorContext(ctx, "Failed to hash password", "error", err)
		return AuthResult{}, apperror.Internal("Registration failed", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleEmployee
	}

	user := model.User{
		Email:      in.Email,
		Password:   hashed,
		Name:       in.Name,
		Role:       role,
		Department: in.Department,
		Position:   in.Position,
		Phone:      in.Phone,
		CreatedAt:  u.now(),
	}
	if err = u.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return AuthResult{}, apperror.Conflict(msgEmailExists)
		}
		return AuthResult{}, apperror.Internal("Registration failed", err)
	}

	token, err := u.issue(user)
	if err != nil {
		u.log.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return AuthResult{}, apperror.Internal("Registration failed", err)
	}

	u.metrics.IncRegistration(user.Role)
	u.log.InfoContext(ctx, "User registered", "user_id", user.ID, "role", user.Role)
	return AuthResult{Token: token, User: user}, nil
}

// Login answers unknown email and wrong password with the same error.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := u.users.FindByEmail(email)
	if err != nil {
		return AuthResult{}, apperror.Unauthenticated(msgInvalidCredentials)
	}

	if !auth.CheckPassword(user.Password, password) {
		return AuthResult{}, apperror.Unauthenticated(msgInvalidCredentials)
	}

	token, err := u.issue(*user)
	if err != nil {
		u.log.ErrorContext(ctx, "Failed to sign token", "user_id", user.ID, "error", err)
		return AuthResult{}, apperror.Internal("Login failed", err)
	}

	return AuthResult{Token: token, User: *user}, nil
}

func (u *AuthUsecase) Me(id uint) (model.User, error) {
	user, err := u.users.FindByID(id)
	if err != nil {
		return model.User{}, apperror.NotFound(msgUserNotFound)
	}
	return *user, nil
}

func (u *AuthUsecase) issue(user model.User) (string, error) {
	return u.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role})
}
