package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file.
type StructuredJSONConfig struct {
	Adapter struct {
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		KeepAliveTime    Duration `json:"keepalive_time"`
		KeepAliveTimeout Duration `json:"keepalive_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		Cooldown    Duration `json:"cooldown"`
		HistoryFile string   `json:"history_file"`
	} `json:"session,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
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
		Adapter: Adapter{
			GRPCAddress:      jsonCfg.Adapter.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			KeepAliveTime:    time.Duration(jsonCfg.Adapter.KeepAliveTime),
			KeepAliveTimeout: time.Duration(jsonCfg.Adapter.KeepAliveTimeout),
		},
		Session: Session{
			Cooldown:    time.Duration(jsonCfg.Session.Cooldown),
			HistoryFile: jsonCfg.Session.HistoryFile,
		},
		Log: Log{
			File: jsonCfg.Log.File,
		},
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
