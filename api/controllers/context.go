package controllers

import (
	"context"
	"net/http"

	"github.com/rotikita/rotikita-backend/pkg/logger"
)

// withCartToken tags the request context so every log line for this request
// carries the cart token.
func withCartToken(r *http.Request, logg *logger.Logger, token string) context.Context {
	if logg == nil {
		return r.Context()
	}
	return logg.WithCartToken(r.Context(), token)
}
