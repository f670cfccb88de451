// internal/config/config.go

// Package config reads every runtime setting from the process environment.
// Missing values never stop startup; callers ask Missing() and the
// diagnostics endpoint reports presence without revealing values.
package config

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "whatsapp-leads-api"

// hostSampleLen bounds the DB_HOST excerpt shown by /env-check.
const hostSampleLen = 12

type Config struct {
	Port            string `koanf:"port"`
	DBHost          string `koanf:"db_host" validate:"required"`
	DBPort          string `koanf:"db_port"`
	DBName          string `koanf:"db_name"`
	DBUser          string `koanf:"db_user" validate:"required"`
	DBPassword      string `koanf:"db_password" validate:"required"`
	DBSSL           bool   `koanf:"db_ssl"`
	DBSSLSkipVerify bool   `koanf:"db_ssl_skip_verify"`
	DBTLSMinVersion string `koanf:"db_tls_min_version"`
	DBTLSMaxVersion string `koanf:"db_tls_max_version"`
	APISecretKey    string `koanf:"api_secret_key"`
	AMQPURL         string `koanf:"amqp_url"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their environment names, not the Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := fld.Tag.Get("koanf"); tag != "" {
			return strings.ToUpper(tag)
		}
		return fld.Name
	})
	return v
}

// Load builds a Config from the environment. It always returns a usable
// Config with defaults applied; the error only reports that some variables
// could not be decoded (a malformed boolean, for instance).
func Load() (*Config, error) {
	cfg := &Config{}

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		cfg.applyDefaults()
		return cfg, err
	}

	err := k.Unmarshal("", cfg)
	cfg.applyDefaults()
	cfg.APISecretKey = strings.TrimSpace(cfg.APISecretKey)
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "3000"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBName == "" {
		c.DBName = "leads"
	}
}

// Missing lists the required settings that are still empty, under their
// environment names. Empty slice means the config is complete.
func (c *Config) Missing() []string {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

// Addr is the listen address for the HTTP server, all interfaces.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// EnvStatus describes one variable for /env-check. Len and Sample are
// only set when the variable is present; the full value never leaves
// the process.
type EnvStatus struct {
	Present bool   `json:"present"`
	Len     int    `json:"len,omitempty"`
	Sample  string `json:"sample,omitempty"`
}

var reportedKeys = []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "API_SECRET_KEY"}

// EnvReport reads the environment directly so the report reflects what the
// process was actually given, not what defaults filled in afterwards.
func EnvReport() map[string]EnvStatus {
	report := make(map[string]EnvStatus, len(reportedKeys))
	for _, key := range reportedKeys {
		val := os.Getenv(key)
		st := EnvStatus{Present: val != ""}
		if st.Present {
			st.Len = len(val)
			if key == "DB_HOST" {
				st.Sample = truncate(val, hostSampleLen)
			}
		}
		report[key] = st
	}
	return report
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
