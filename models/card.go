package models

// CardLookupRequest is an inbound request to validate one card number.
type CardLookupRequest struct {
	// CardNo is the card number exactly as extracted from the request path,
	// after percent-decoding. It is forwarded verbatim.
	CardNo string `json:"card_no"`
}
