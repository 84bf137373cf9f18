package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-encoded durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Blob struct {
			Provider           string   `json:"provider"`
			Bucket             string   `json:"bucket"`
			Region             string   `json:"region"`
			Endpoint           string   `json:"endpoint"`
			AccessKeyID        string   `json:"access_key_id"`
			SecretAccessKey    string   `json:"secret_access_key"`
			UsePathStyle       bool     `json:"use_path_style"`
			PublicBaseURL      string   `json:"public_base_url"`
			SupabaseURL        string   `json:"supabase_url"`
			SupabaseServiceKey string   `json:"supabase_service_key"`
			RequestTimeout     Duration `json:"request_timeout"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Auth struct {
		SupabaseJWTSecret string `json:"supabase_jwt_secret"`
		JWKSURL           string `json:"jwks_url"`
		Issuer            string `json:"issuer"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Cache struct {
		TTL           Duration `json:"ttl"`
		MaxAge        Duration `json:"max_age"`
		LoadTimeout   Duration `json:"load_timeout"`
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisChannel  string   `json:"redis_channel"`
	} `json:"cache,omitempty"`

	Workers struct {
		CacheSweepSchedule string `json:"cache_sweep_schedule"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  j.App.Version,
			LogLevel: j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
			Blob: Blob{
				Provider:           j.Storage.Blob.Provider,
				Bucket:             j.Storage.Blob.Bucket,
				Region:             j.Storage.Blob.Region,
				Endpoint:           j.Storage.Blob.Endpoint,
				AccessKeyID:        j.Storage.Blob.AccessKeyID,
				SecretAccessKey:    j.Storage.Blob.SecretAccessKey,
				UsePathStyle:       j.Storage.Blob.UsePathStyle,
				PublicBaseURL:      j.Storage.Blob.PublicBaseURL,
				SupabaseURL:        j.Storage.Blob.SupabaseURL,
				SupabaseServiceKey: j.Storage.Blob.SupabaseServiceKey,
				RequestTimeout:     time.Duration(j.Storage.Blob.RequestTimeout),
			},
		},
		Auth: Auth{
			SupabaseJWTSecret: j.Auth.SupabaseJWTSecret,
			JWKSURL:           j.Auth.JWKSURL,
			Issuer:            j.Auth.Issuer,
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			RateLimit:      j.Server.RateLimit,
			RateBurst:      j.Server.RateBurst,
		},
		Cache: Cache{
			TTL:           time.Duration(j.Cache.TTL),
			MaxAge:        time.Duration(j.Cache.MaxAge),
			LoadTimeout:   time.Duration(j.Cache.LoadTimeout),
			RedisAddress:  j.Cache.RedisAddress,
			RedisPassword: j.Cache.RedisPassword,
			RedisChannel:  j.Cache.RedisChannel,
		},
		Workers: Workers{
			CacheSweepSchedule: j.Workers.CacheSweepSchedule,
		},
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
