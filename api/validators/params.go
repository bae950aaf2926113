package validators

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
)

// Cart tokens are client-generated opaque identifiers. Bound the charset so
// a token never needs escaping in Redis keys or logs.
var cartTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)

var orderNumberParamPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{4}$`)

// UUIDParam parses a chi URL parameter as a UUID.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid id").
			WithDetails(map[string]any{"field": name})
	}
	return id, nil
}

// CartTokenParam extracts and validates the cart token URL parameter.
func CartTokenParam(r *http.Request) (string, error) {
	token := SanitizeString(chi.URLParam(r, "cartToken"), 128)
	if !cartTokenPattern.MatchString(token) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid cart token")
	}
	return token, nil
}

// OrderNumberParam extracts and validates the public order number parameter.
func OrderNumberParam(r *http.Request) (string, error) {
	number := SanitizeString(chi.URLParam(r, "orderNumber"), 32)
	if !orderNumberParamPattern.MatchString(number) {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid order number")
	}
	return number, nil
}
