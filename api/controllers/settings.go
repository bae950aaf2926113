package controllers

import (
	"net/http"

	"github.com/rotikita/rotikita-backend/api/responses"
	"github.com/rotikita/rotikita-backend/internal/settings"
	pkgerrors "github.com/rotikita/rotikita-backend/pkg/errors"
	"github.com/rotikita/rotikita-backend/pkg/logger"
)

// SettingsFetch exposes the store settings the storefront needs for pricing
// display. Returns the configured fallbacks when the settings table is down
// rather than failing the page.
func SettingsFetch(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		store, err := svc.Get(r.Context())
		if err != nil {
			if logg != nil {
				logg.Warn(r.Context(), "serving default store settings")
			}
		}

		responses.WriteSuccess(w, store)
	}
}
