package http

import (
	"net/http"

	"github.com/MKhiriev/nfc-card-relay/internal/app"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/utils"
)

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WritePlainText(w, app.MsgServerIsRunning, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing liveness response")
	}
}
