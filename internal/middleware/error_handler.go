package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiranaMarket/pkg/logger"
	jsonres "kiranaMarket/pkg/response"
)

// ErrorHandler is the echo-wide fallback for errors that escape handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "path", c.Path(), err)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
