package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/nfc-card-relay/internal/config"
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/utils"
	"github.com/MKhiriev/nfc-card-relay/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader   = "X-Trace-ID"
	instrumentation = "github.com/MKhiriev/nfc-card-relay/internal/adapter"
)

type httpCardLookupAdapter struct {
	client *utils.HTTPClient

	baseURL string

	tracer trace.Tracer
	logger *logger.Logger
}

// Option configures the adapter built by NewHTTPCardLookupAdapter.
type Option func(*httpCardLookupAdapter)

// WithTracerProvider makes the adapter start its spans on tp instead of the
// global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(h *httpCardLookupAdapter) {
		h.tracer = tp.Tracer(instrumentation)
	}
}

// NewHTTPCardLookupAdapter constructs the HTTP/REST implementation of
// [CardLookupAdapter]. The returned adapter authenticates every request with
// HTTP Basic credentials from cfg and bounds it with cfg.RequestTimeout when
// that is positive.
//
// cfg.URL is used as a plain prefix: the url-encoded card number is appended
// to it verbatim, so it may end in a path segment ("/cards/") or an open
// query parameter ("?card_no="). Returns an error if cfg.URL is empty or is
// not an absolute http(s) URL.
func NewHTTPCardLookupAdapter(cfg config.Adapter, logger *logger.Logger, opts ...Option) (CardLookupAdapter, error) {
	baseURL, err := checkBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.
		SetLogger(newRestyLogger(logger)).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Accept", "application/json")

	h := &httpCardLookupAdapter{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer(instrumentation)
	}

	return h, nil
}

func checkBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidBaseURL, raw)
	}

	return raw, nil
}

// lookupURL appends the url-encoded card number to the configured base URL.
func (h *httpCardLookupAdapter) lookupURL(cardNo string) string {
	return h.baseURL + utils.EncodeURIComponent(cardNo)
}

// LookupCard implements [CardLookupAdapter]. It GETs base URL + encoded
// cardNo with Basic auth and the caller's trace id, then maps the response
// with mapUpstreamResponse. A request that produced no HTTP response at all
// yields UpstreamUnreachable.
func (h *httpCardLookupAdapter) LookupCard(ctx context.Context, cardNo string) models.UpstreamResult {
	log := logger.FromContextOr(ctx, h.logger)
	lookupURL := h.lookupURL(cardNo)

	ctx, span := h.tracer.Start(ctx, "card_lookup", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	log.Info().
		Str("card_no", cardNo).
		Str("url", lookupURL).
		Msg("forwarding card validation request")

	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Get(lookupURL)
	if err != nil {
		log.Err(err).Msg("error calling external API")
		span.RecordError(err)
		span.SetStatus(codes.Error, "external API unreachable")

		return models.UpstreamResult{
			Outcome: models.UpstreamUnreachable,
			Message: err.Error(),
			Err:     err,
		}
	}

	result := mapUpstreamResponse(resp)
	span.SetAttributes(
		attribute.Int("http.response.status_code", result.StatusCode),
		attribute.String("upstream.outcome", result.Outcome.String()),
	)

	if result.Outcome == models.UpstreamSucceeded {
		log.Info().
			Int("status", result.StatusCode).
			Int("items", len(result.Items)).
			Dur("duration", resp.Time()).
			Msg("external API responded")
		log.Debug().Bytes("data", resp.Body()).Msg("external API response data")
		return result
	}

	span.SetStatus(codes.Error, result.Message)
	log.Error().
		Int("status", result.StatusCode).
		Dur("duration", resp.Time()).
		Msg("external API returned an error status")
	log.Debug().Bytes("data", resp.Body()).Msg("external API error data")

	return result
}
