package handler

import (
	"github.com/labstack/echo/v4"

	"osta/internal/usecase"
	"osta/pkg/response"
)

type RequestHandler struct {
	requestUseCase *usecase.RequestUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase}
}

type createRequestRequest struct {
	UserID     string `json:"userId" validate:"required"`
	ProviderID string `json:"providerId" validate:"required"`
	Message    string `json:"message"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.CreateRequest(c.Request().Context(), req.UserID, req.ProviderID, req.Message)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, request)
}

func (h *RequestHandler) ListForUser(c echo.Context) error {
	requests, err := h.requestUseCase.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *RequestHandler) ListForProvider(c echo.Context) error {
	requests, err := h.requestUseCase.ListForProvider(c.Request().Context(), c.Param("providerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, request)
}
