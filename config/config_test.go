package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		FatSecret: FatSecretConfig{
			ConsumerKey:    "valid-consumer-key",
			ConsumerSecret: "valid-consumer-secret",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid without access token",
			mutate: func(cfg *Config) {},
		},
		{
			name: "valid with access token pair",
			mutate: func(cfg *Config) {
				cfg.FatSecret.AccessToken = "tok"
				cfg.FatSecret.AccessSecret = "sec"
			},
		},
		{
			name: "missing consumer key",
			mutate: func(cfg *Config) {
				cfg.FatSecret.ConsumerKey = ""
			},
			wantErr: true,
		},
		{
			name: "placeholder consumer key",
			mutate: func(cfg *Config) {
				cfg.FatSecret.ConsumerKey = "your-consumer-key-here"
			},
			wantErr: true,
		},
		{
			name: "missing consumer secret",
			mutate: func(cfg *Config) {
				cfg.FatSecret.ConsumerSecret = ""
			},
			wantErr: true,
		},
		{
			name: "access token without secret",
			mutate: func(cfg *Config) {
				cfg.FatSecret.AccessToken = "tok"
			},
			wantErr: true,
		},
		{
			name: "access secret without token",
			mutate: func(cfg *Config) {
				cfg.FatSecret.AccessSecret = "sec"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug console", level: "debug", format: "console"},
		{name: "error json", level: "error", format: "json"},
		{name: "invalid level", level: "verbose", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "text", wantErr: true},
		{name: "empty level", level: "", format: "console", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasAccessToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		secret string
		want   bool
	}{
		{name: "both present", token: "t", secret: "s", want: true},
		{name: "token only", token: "t", want: false},
		{name: "secret only", secret: "s", want: false},
		{name: "neither", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FatSecretConfig{AccessToken: tt.token, AccessSecret: tt.secret}
			if got := cfg.HasAccessToken(); got != tt.want {
				t.Errorf("HasAccessToken() = %v, want %v", got, tt.want)
			}
		})
	}
}
