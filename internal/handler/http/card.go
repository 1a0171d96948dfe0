package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/utils"
	"github.com/MKhiriev/nfc-card-relay/models"
	"github.com/go-chi/chi/v5"
)

const cardNumberParam = "card_no"

func (h *Handler) validateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cardNo, err := cardNumberFromRequest(r)
	if err != nil {
		log.Err(err).Msg("card number could not be decoded")
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("card_no", cardNo).Msg("received card validation request")

	verdict, err := h.services.CardValidationService.ValidateCard(ctx, cardNo)
	if err != nil {
		log.Err(err).Str("card_no", cardNo).Msg("card validation request rejected")
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Str("card_no", cardNo).
		Str("verdict", string(verdict.Kind)).
		Int("status", verdict.StatusCode).
		Msg("card validation completed")

	if _, err = utils.WriteJSON(w, verdict, verdict.StatusCode); err != nil {
		log.Err(err).Msg("error writing card validation verdict")
	}
}

// cardNumberFromRequest returns the decoded card_no path segment, or "" when
// the route has none.
//
// chi matches against the escaped path whenever the request carries one
// (for example when the card number contains an encoded slash), and then the
// parameter still needs decoding. net/http already refuses request lines
// with invalid escapes, so ErrMalformedCardNumber is only seen by requests
// built in-process with a hand-set RawPath.
func cardNumberFromRequest(r *http.Request) (string, error) {
	cardNo := chi.URLParam(r, cardNumberParam)
	if r.URL.RawPath == "" {
		return cardNo, nil
	}

	decoded, err := url.PathUnescape(cardNo)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCardNumber, err)
	}
	return decoded, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := models.Verdict{Message: messageFromError(err)}
	if _, writeErr := utils.WriteJSON(w, body, statusFromError(err)); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}
