package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"osta/internal/domain/entity"
	"osta/internal/usecase"
	"osta/pkg/response"
)

type ProviderHandler struct {
	providerUseCase *usecase.ProviderUseCase
}

func NewProviderHandler(providerUseCase *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{providerUseCase: providerUseCase}
}

func (h *ProviderHandler) Get(c echo.Context) error {
	provider, err := h.providerUseCase.GetProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, provider)
}

func (h *ProviderHandler) List(c echo.Context) error {
	minRating, _ := strconv.ParseFloat(c.QueryParam("minRating"), 64)

	providers, err := h.providerUseCase.ListProviders(c.Request().Context(), usecase.ProviderFilter{
		Category:    c.QueryParam("category"),
		Subcategory: c.QueryParam("subcategory"),
		City:        c.QueryParam("city"),
		Area:        c.QueryParam("area"),
		MinRating:   minRating,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}

type updateProviderRequest struct {
	Name          *string                 `json:"name"`
	Avatar        *string                 `json:"avatar"`
	Category      *string                 `json:"category"`
	Categories    []string                `json:"categories"`
	Subcategories []string                `json:"subcategories"`
	Regions       *entity.ProviderRegions `json:"regions"`
}

func (h *ProviderHandler) Update(c echo.Context) error {
	var req updateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.UpdateProvider(c.Request().Context(), c.Param("id"), usecase.UpdateProviderInput{
		Name:          req.Name,
		Avatar:        req.Avatar,
		Category:      req.Category,
		Categories:    req.Categories,
		Subcategories: req.Subcategories,
		Regions:       req.Regions,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, provider)
}

func (h *ProviderHandler) Delete(c echo.Context) error {
	if err := h.providerUseCase.DeleteProvider(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Provider deleted"})
}
