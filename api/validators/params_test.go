package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
)

func requestWithParam(key, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUUIDParam(t *testing.T) {
	id := uuid.New()
	parsed, err := UUIDParam(requestWithParam("id", id.String()), "id")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = UUIDParam(requestWithParam("id", "not-a-uuid"), "id")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestCartTokenParam(t *testing.T) {
	token, err := CartTokenParam(requestWithParam("cartToken", "  abc123XYZ-_token  "))
	require.NoError(t, err)
	assert.Equal(t, "abc123XYZ-_token", token)

	for _, bad := range []string{"", "short", "has spaces here", "emoji🙂token"} {
		_, err := CartTokenParam(requestWithParam("cartToken", bad))
		assert.Error(t, err, "token %q must be rejected", bad)
	}
}

func TestOrderNumberParam(t *testing.T) {
	number, err := OrderNumberParam(requestWithParam("orderNumber", "ORD-20260209-ABCD"))
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260209-ABCD", number)

	for _, bad := range []string{"", "ORD-2026029-ABCD", "ord-20260209-abcd", "ORD-20260209-ABCDE"} {
		_, err := OrderNumberParam(requestWithParam("orderNumber", bad))
		assert.Error(t, err, "number %q must be rejected", bad)
	}
}
