package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Chain returns the middleware stack for the API group, outermost first.
// RequestID runs before the logger and the recovery handler so both can
// report the id.
func Chain(log zerolog.Logger, recovery RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		Recover(log, recovery),
	}
}
