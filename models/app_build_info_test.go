package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                           string
		version, date, commit          string
		wantVersion, wantDate, wantCmt string
	}{
		{"all set", "v1.2.0", "2026-10-01", "abc123", "v1.2.0", "2026-10-01", "abc123"},
		{"none set", "", "", "", "N/A", "N/A", "N/A"},
		{"partially set", "v0.1.0", "", "", "v0.1.0", "N/A", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCmt, info.BuildCommit())
		})
	}
}
