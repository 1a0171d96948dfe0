package adapter

import (
	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/go-resty/resty/v2"
)

// restyLogger routes resty's own diagnostics (such as the Basic-auth over
// plain HTTP warning) into the relay's JSON log stream instead of stderr.
type restyLogger struct {
	logger *logger.Logger
}

var _ resty.Logger = restyLogger{}

func newRestyLogger(l *logger.Logger) restyLogger {
	if l == nil {
		l = logger.Nop()
	}
	return restyLogger{logger: l}
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.logger.Error().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Str("component", "resty").Msgf(format, v...)
}
