package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"osta/internal/usecase"
	"osta/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUseCase: catalogUseCase}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}

	categories, total, err := h.catalogUseCase.ListCategories(
		c.Request().Context(), c.QueryParam("q"), pageSize, (page-1)*pageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, categories, total, page, pageSize)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.catalogUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Category deleted"})
}

func (h *CatalogHandler) TopCategories(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}

	categories, err := h.catalogUseCase.TopCategories(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CatalogHandler) ProvidersByCategory(c echo.Context) error {
	providers, err := h.catalogUseCase.ProvidersByCategory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}

func (h *CatalogHandler) CategoriesWithProviders(c echo.Context) error {
	categories, err := h.catalogUseCase.CategoriesWithProviders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

type subcategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (h *CatalogHandler) CreateSubcategory(c echo.Context) error {
	var req subcategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	subcategory, err := h.catalogUseCase.CreateSubcategory(c.Request().Context(), req.Name, req.Category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, subcategory)
}

func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	subcategories, err := h.catalogUseCase.ListSubcategories(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, subcategories)
}

func (h *CatalogHandler) DeleteSubcategory(c echo.Context) error {
	if err := h.catalogUseCase.DeleteSubcategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Subcategory deleted"})
}

type cityRequest struct {
	City string `json:"city" validate:"required"`
}

func (h *CatalogHandler) AddCity(c echo.Context) error {
	var req cityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	region, err := h.catalogUseCase.AddCity(c.Request().Context(), req.City)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, region)
}

type areaRequest struct {
	City string `json:"city" validate:"required"`
	Area string `json:"area" validate:"required"`
}

func (h *CatalogHandler) AddArea(c echo.Context) error {
	var req areaRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	region, err := h.catalogUseCase.AddArea(c.Request().Context(), req.City, req.Area)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, region)
}

func (h *CatalogHandler) ListRegions(c echo.Context) error {
	regions, err := h.catalogUseCase.ListRegions(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, regions)
}
