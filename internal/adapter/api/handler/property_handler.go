package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ghargpt/internal/domain/entity"
	"ghargpt/internal/usecase"
	"ghargpt/pkg/errors"
	"ghargpt/pkg/response"
	"ghargpt/pkg/utils"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	pagination, err := utils.GetPaginationParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.ListPropertiesInput{
		City:         c.QueryParam("city"),
		PropertyType: c.QueryParam("property_type"),
		Skip:         pagination.Skip,
		Limit:        pagination.Limit,
	}

	if s := c.QueryParam("min_budget"); s != "" {
		minBudget, err := strconv.ParseInt(s, 10, 64)
		if err != nil || minBudget < 0 {
			return response.Error(c, errors.BadRequest("min_budget must be a non-negative integer", err))
		}
		input.MinBudget = &minBudget
	}

	if s := c.QueryParam("max_budget"); s != "" {
		maxBudget, err := strconv.ParseInt(s, 10, 64)
		if err != nil || maxBudget < 0 {
			return response.Error(c, errors.BadRequest("max_budget must be a non-negative integer", err))
		}
		input.MaxBudget = &maxBudget
	}

	if s := c.QueryParam("is_verified"); s != "" {
		isVerified, err := strconv.ParseBool(s)
		if err != nil {
			return response.Error(c, errors.BadRequest("is_verified must be a boolean", err))
		}
		input.IsVerified = &isVerified
	}

	properties, err := h.propertyUseCase.ListProperties(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	id := c.Param("id")

	property, err := h.propertyUseCase.GetPropertyByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req entity.PropertyCreate
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), &req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

// UpdateProperty serves both PUT and PATCH: only fields present in the
// payload are applied, and an empty payload returns the current entity.
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	id := c.Param("id")

	var req entity.PropertyUpdate
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), id, &req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	id := c.Param("id")

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.NoContent(c)
}
