package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/nfc-card-relay/models"
	"github.com/go-resty/resty/v2"
)

// mapUpstreamResponse turns an HTTP response of the validation service into
// an [models.UpstreamResult].
//
// 2xx responses become UpstreamSucceeded with the decoded item collection;
// a body that is not `{"items": [...]}` yields an empty collection.
// Any other status becomes UpstreamFailed carrying the status code, the body
// as a JSON payload and a generic failure message.
func mapUpstreamResponse(resp *resty.Response) models.UpstreamResult {
	status := resp.StatusCode()
	body := resp.Body()

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return models.UpstreamResult{
			Outcome:    models.UpstreamSucceeded,
			StatusCode: status,
			Items:      decodeItems(body),
		}
	}

	return models.UpstreamResult{
		Outcome:    models.UpstreamFailed,
		StatusCode: status,
		Payload:    errorPayload(body),
		Message:    fmt.Sprintf("Request failed with status code %d", status),
	}
}

func decodeItems(body []byte) []json.RawMessage {
	var lookup models.LookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil
	}

	return lookup.Items
}

// errorPayload returns body verbatim when it is JSON, as a JSON string
// otherwise, and nil when it is blank or a falsy JSON value (null, false, 0,
// ""). A nil payload makes the caller report the failure message instead.
func errorPayload(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err == nil {
		if isFalsy(value) {
			return nil
		}
		return json.RawMessage(bytes.Clone(trimmed))
	}

	payload, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return payload
}

func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	default:
		return false
	}
}
