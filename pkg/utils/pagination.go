package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"ghargpt/pkg/errors"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PaginationParams represents skip/limit pagination parameters
type PaginationParams struct {
	Skip  int
	Limit int
}

// GetPaginationParams extracts and bounds pagination parameters from request
func GetPaginationParams(c echo.Context) (PaginationParams, error) {
	params := PaginationParams{Skip: 0, Limit: DefaultLimit}

	if s := c.QueryParam("skip"); s != "" {
		skip, err := strconv.Atoi(s)
		if err != nil || skip < 0 {
			return params, errors.BadRequest("skip must be a non-negative integer", err)
		}
		params.Skip = skip
	}

	if l := c.QueryParam("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 1 || limit > MaxLimit {
			return params, errors.BadRequest("limit must be between 1 and 1000", err)
		}
		params.Limit = limit
	}

	return params, nil
}
