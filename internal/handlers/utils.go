package handlers

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPeriodParams reads the year and month query parameters, defaulting to
// the current calendar month
func getPeriodParams(c echo.Context) (int, int) {
	now := time.Now()
	year := getIntParam(c, "year", now.Year())
	month := getIntParam(c, "month", int(now.Month()))
	return year, month
}
