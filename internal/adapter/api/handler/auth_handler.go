package handler

import (
	"github.com/labstack/echo/v4"

	"osta/internal/domain/entity"
	"osta/internal/usecase"
	"osta/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

type registerUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, token, err := h.authUseCase.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) LoginUser(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, token, err := h.authUseCase.LoginUser(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type registerProviderRequest struct {
	Name          string                 `json:"name" validate:"required,min=2"`
	Email         string                 `json:"email" validate:"required,email"`
	Password      string                 `json:"password" validate:"required,min=8"`
	Category      string                 `json:"category"`
	Categories    []string               `json:"categories"`
	Subcategories []string               `json:"subcategories"`
	Regions       entity.ProviderRegions `json:"regions"`
	Avatar        string                 `json:"avatar" validate:"omitempty,url"`
}

func (h *AuthHandler) RegisterProvider(c echo.Context) error {
	var req registerProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, token, err := h.authUseCase.RegisterProvider(c.Request().Context(), usecase.RegisterProviderInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Category:      req.Category,
		Categories:    req.Categories,
		Subcategories: req.Subcategories,
		Regions:       req.Regions,
		Avatar:        req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"token":    token,
		"provider": provider,
	})
}

func (h *AuthHandler) LoginProvider(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, token, err := h.authUseCase.LoginProvider(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"token":    token,
		"provider": provider,
	})
}
