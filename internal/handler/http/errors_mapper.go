package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/nfc-card-relay/internal/app"
	"github.com/MKhiriev/nfc-card-relay/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrCardNumberRequired:  http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrMalformedCardNumber:         http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrCardNumberRequired:  app.MsgCardNumberRequired,
	service.ErrInvalidDataProvided: app.MsgCardNumberRequired,
	ErrMalformedCardNumber:         app.MsgCardNumberMalformed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
