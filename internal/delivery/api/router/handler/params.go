package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryInt parses a positive integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}

	return v
}
