package service

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/nfc-card-relay/internal/app"
	"github.com/MKhiriev/nfc-card-relay/models"
)

// Normalize maps an upstream result to the verdict served to the caller.
//
//   - success with at least one item: 200, valid, first item as data;
//   - success with no items: 404, not valid;
//   - upstream 404: 404, not valid, with its own message;
//   - any other upstream status: that status (500 when it is not an error
//     status), with the upstream payload or failure message as error;
//   - no response: 500.
//
// Normalize is pure: the same result always yields the same verdict.
func Normalize(result models.UpstreamResult) models.Verdict {
	switch result.Outcome {
	case models.UpstreamSucceeded:
		if len(result.Items) > 0 {
			return models.Verdict{
				StatusCode: http.StatusOK,
				Kind:       models.VerdictValid,
				Valid:      boolPtr(true),
				Data:       result.Items[0],
			}
		}
		return notFound(app.MsgCardNotFound)

	case models.UpstreamFailed:
		if result.StatusCode == http.StatusNotFound {
			return notFound(app.MsgCardNotFoundAPI404)
		}
		return models.Verdict{
			StatusCode: upstreamErrorStatus(result.StatusCode),
			Kind:       models.VerdictUpstreamError,
			Message:    app.MsgUpstreamValidationFailed,
			Error:      upstreamErrorDetail(result),
		}

	default:
		return models.Verdict{
			StatusCode: http.StatusInternalServerError,
			Kind:       models.VerdictUnreachable,
			Message:    app.MsgUpstreamUnreachable,
		}
	}
}

func notFound(message string) models.Verdict {
	return models.Verdict{
		StatusCode: http.StatusNotFound,
		Kind:       models.VerdictNotFound,
		Valid:      boolPtr(false),
		Message:    message,
	}
}

// upstreamErrorStatus passes 4xx and 5xx statuses through; anything else
// (1xx, 3xx, zero) is served as 500.
func upstreamErrorStatus(status int) int {
	if status >= http.StatusBadRequest && status <= 599 {
		return status
	}
	return http.StatusInternalServerError
}

func upstreamErrorDetail(result models.UpstreamResult) json.RawMessage {
	if len(result.Payload) > 0 {
		return result.Payload
	}

	detail, err := json.Marshal(result.Message)
	if err != nil {
		return nil
	}
	return detail
}

func boolPtr(v bool) *bool {
	return &v
}
