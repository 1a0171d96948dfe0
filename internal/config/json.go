package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Server struct {
		Port               int      `json:"port"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	ExternalAPI struct {
		URL            string   `json:"url"`
		Username       string   `json:"username"`
		Password       string   `json:"password"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"external_api,omitempty"`

	LogLevel   string `json:"log_level"`
	TraceSpans bool   `json:"trace_spans"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Port:               jsonCfg.Server.Port,
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			URL:            jsonCfg.ExternalAPI.URL,
			Username:       jsonCfg.ExternalAPI.Username,
			Password:       jsonCfg.ExternalAPI.Password,
			RequestTimeout: time.Duration(jsonCfg.ExternalAPI.RequestTimeout),
		},
		LogLevel:     jsonCfg.LogLevel,
		TraceSpans:   jsonCfg.TraceSpans,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
