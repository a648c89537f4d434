package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DevFolio/go-client-referral/internal/serviceimpl"
	"github.com/DevFolio/go-client-referral/service"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{
		settings: serviceimpl.NewSettingsService(db),
	}
}

type discountsSettingBody struct {
	Enabled bool `json:"enabled"`
}

// GetDiscounts handles GET /settings/discounts
func (h *SettingsHandler) GetDiscounts(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settings.GetDiscountsEnabled()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, discountsSettingBody{Enabled: enabled})
}

// PutDiscounts handles PUT /settings/discounts
func (h *SettingsHandler) PutDiscounts(w http.ResponseWriter, r *http.Request) {
	var body discountsSettingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_body"})
		return
	}

	if err := h.settings.SetDiscountsEnabled(body.Enabled); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, body)
}
