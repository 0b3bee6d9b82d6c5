package httpserver

import "github.com/labstack/echo/v4"

// errorResponse is the error body shared by every failing endpoint.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func respondError(c echo.Context, code int, message string, err error) error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return c.JSON(code, errorResponse{Error: message, Details: details})
}
