package adapter

import "errors"

// Construction errors returned by [NewHTTPCardLookupAdapter].
var (
	ErrEmptyBaseURL   = errors.New("empty external API base URL")
	ErrInvalidBaseURL = errors.New("invalid external API base URL")
)
