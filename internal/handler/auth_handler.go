package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/usecase"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

type RegisterRequest struct {
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=employee admin"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registeredUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loggedInUser struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.Validation("Email, password, and name are required"))
	}
	if err := validate.StructPartial(req, "Email", "Password", "Name"); err != nil {
		return respondError(c, apperror.Validation("Email, password, and name are required"))
	}
	if err := validate.StructPartial(req, "Role"); err != nil {
		return respondError(c, apperror.Validation("Role must be employee or admin"))
	}

	res, err := h.usecase.Register(c.UserContext(), usecase.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   res.Token,
		"user": registeredUser{
			ID:    res.User.ID,
			Email: res.User.Email,
			Name:  res.User.Name,
			Role:  res.User.Role,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bind(c, &req, "Email and password are required"); err != nil {
		return respondError(c, err)
	}

	res, err := h.usecase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   res.Token,
		"user": loggedInUser{
			ID:         res.User.ID,
			Email:      res.User.Email,
			Name:       res.User.Name,
			Role:       res.User.Role,
			Department: res.User.Department,
			Position:   res.User.Position,
		},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.usecase.Me(identity.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
