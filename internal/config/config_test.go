package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAuthConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name:      "empty config applies defaults",
			config:    &Config{Sessions: SessionConfig{Name: "session_id"}},
			wantError: false,
		},
		{
			name: "custom protected prefixes",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{ProtectedPrefixes: []string{"/reports"}},
			},
			wantError: false,
		},
		{
			name: "password hash must be bcrypt",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{PasswordHash: "plaintext"},
			},
			wantError: true,
			errMsg:    "must be a bcrypt hash",
		},
		{
			name: "flag cookie collides with session cookie",
			config: &Config{
				Sessions: SessionConfig{Name: "auth"},
			},
			wantError: true,
			errMsg:    "must differ",
		},
		{
			name: "flag max age too short",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{FlagMaxAge: time.Second},
			},
			wantError: true,
			errMsg:    "cannot be less than 1 minute",
		},
		{
			name: "relative login path",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{LoginPath: "login"},
			},
			wantError: true,
			errMsg:    "must start with '/'",
		},
		{
			name: "root prefix rejected",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{ProtectedPrefixes: []string{"/"}},
			},
			wantError: true,
			errMsg:    "must be a path below '/'",
		},
		{
			name: "prefix covering login path rejected",
			config: &Config{
				Sessions: SessionConfig{Name: "session_id"},
				Auth:     AuthConfig{ProtectedPrefixes: []string{"/log"}},
			},
			wantError: true,
			errMsg:    "would protect the login path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateAuthConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateAuthConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateAuthConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateAuthConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestValidateAuthConfigDefaults(t *testing.T) {
	c := &Config{Sessions: SessionConfig{Name: "session_id"}}
	if err := c.validateAuthConfig(); err != nil {
		t.Fatalf("validateAuthConfig() unexpected error = %v", err)
	}

	if c.Auth.Username != "admin" || c.Auth.Password != "admin" {
		t.Errorf("expected demo credentials admin/admin, got %s/%s", c.Auth.Username, c.Auth.Password)
	}
	if c.Auth.FlagCookieName != "auth" {
		t.Errorf("FlagCookieName = %q, want %q", c.Auth.FlagCookieName, "auth")
	}
	if c.Auth.FlagMaxAge != 30*24*time.Hour {
		t.Errorf("FlagMaxAge = %v, want 720h", c.Auth.FlagMaxAge)
	}
	if c.Auth.LoginPath != "/login" {
		t.Errorf("LoginPath = %q, want /login", c.Auth.LoginPath)
	}
	want := []string{"/dashboard", "/upload", "/invoices", "/invoice"}
	if strings.Join(c.Auth.ProtectedPrefixes, ",") != strings.Join(want, ",") {
		t.Errorf("ProtectedPrefixes = %v, want %v", c.Auth.ProtectedPrefixes, want)
	}

	c.Auth.ProtectedPrefixes[0] = "/mutated"
	if DefaultAuthConfig.ProtectedPrefixes[0] != "/dashboard" {
		t.Errorf("defaults were mutated through the validated config")
	}
}

func TestValidateBackendConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name:      "empty config applies defaults",
			config:    &Config{},
			wantError: false,
		},
		{
			name:      "trailing slash accepted",
			config:    &Config{Backend: BackendConfig{BaseURL: "https://api.example.com/"}},
			wantError: false,
		},
		{
			name:      "unsupported scheme",
			config:    &Config{Backend: BackendConfig{BaseURL: "ftp://api.example.com"}},
			wantError: true,
			errMsg:    "must have http or https scheme",
		},
		{
			name:      "missing host",
			config:    &Config{Backend: BackendConfig{BaseURL: "http://"}},
			wantError: true,
			errMsg:    "must include a host",
		},
		{
			name: "basic auth without password",
			config: &Config{Backend: BackendConfig{
				BasicAuth: &BasicAuth{Username: "svc"},
			}},
			wantError: true,
			errMsg:    "basic_auth.password is required",
		},
		{
			name:      "negative timeout",
			config:    &Config{Backend: BackendConfig{Timeout: -time.Second}},
			wantError: true,
			errMsg:    "timeout must be positive",
		},
		{
			name:      "refresh interval too short",
			config:    &Config{Backend: BackendConfig{StatsRefreshInterval: time.Second}},
			wantError: true,
			errMsg:    "cannot be less than 10 seconds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateBackendConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateBackendConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateBackendConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateBackendConfig() unexpected error = %v", err)
				}
				if strings.HasSuffix(tt.config.Backend.BaseURL, "/") {
					t.Errorf("BaseURL %q should not end with '/'", tt.config.Backend.BaseURL)
				}
			}
		})
	}
}

func TestValidateRedisConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name:      "address with default indices",
			config:    &Config{Redis: &RedisConfig{Address: "localhost:6379"}},
			wantError: false,
		},
		{
			name:      "missing address",
			config:    &Config{Redis: &RedisConfig{}},
			wantError: true,
			errMsg:    "redis address is required",
		},
		{
			name:      "address without port",
			config:    &Config{Redis: &RedisConfig{Address: "localhost"}},
			wantError: true,
			errMsg:    "expected host:port",
		},
		{
			name: "colliding indices",
			config: &Config{Redis: &RedisConfig{
				Address:      "localhost:6379",
				SessionIndex: 3,
				CacheIndex:   3,
				LeaderIndex:  4,
			}},
			wantError: true,
			errMsg:    "session_index and cache_index should be different",
		},
		{
			name: "sentinel without master name",
			config: &Config{Redis: &RedisConfig{
				Sentinel: &RedisSentinelConfig{SentinelAddresses: []string{"s1:26379"}},
			}},
			wantError: true,
			errMsg:    "sentinel master_name is required",
		},
		{
			name: "sentinel valid",
			config: &Config{Redis: &RedisConfig{
				Sentinel: &RedisSentinelConfig{MasterName: "mymaster", SentinelAddresses: []string{"s1:26379"}},
			}},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateRedisConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateRedisConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateRedisConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("validateRedisConfig() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateLogConfig(t *testing.T) {
	c := &Config{Log: LogConfig{Level: "debug", Format: "json"}}
	if err := c.validateLogConfig(); err != nil {
		t.Fatalf("validateLogConfig() unexpected error = %v", err)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", c.Log.Level)
	}

	c = &Config{Log: LogConfig{Level: "verbose"}}
	if err := c.validateLogConfig(); err == nil {
		t.Errorf("validateLogConfig() expected error for unknown level")
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv(EnvBackendBaseURL, "http://backend.internal:9000")
	t.Setenv(EnvAuthPassword, "s3cret")

	raw := []byte(`
server:
  port: 8081
log:
  level: warn
sessions:
  store: redis
cache:
  type: redis
redis:
  address: localhost:6379
distributed:
  enabled: true
`)

	cfg, err := ParseConfig(raw)
	if err != nil {
		t.Fatalf("ParseConfig() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://backend.internal:9000" {
		t.Errorf("Backend.BaseURL = %q, want env override", cfg.Backend.BaseURL)
	}
	if cfg.Auth.Password != "s3cret" {
		t.Errorf("Auth.Password not overridden from environment")
	}
	if cfg.Redis.CacheIndex != 1 || cfg.Redis.LeaderIndex != 2 {
		t.Errorf("redis indices not defaulted: %+v", cfg.Redis)
	}
	if cfg.Distributed.TTL != DefaultDistributedConfig.TTL {
		t.Errorf("Distributed.TTL = %v, want %v", cfg.Distributed.TTL, DefaultDistributedConfig.TTL)
	}
}

func TestParseConfigRedisRequired(t *testing.T) {
	_, err := ParseConfig([]byte("sessions:\n  store: redis\n"))
	if err == nil {
		t.Fatal("ParseConfig() expected error when redis sessions have no redis section")
	}
	if !strings.Contains(err.Error(), "redis config is nil") {
		t.Errorf("ParseConfig() error = %v, want redis config error", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Sessions.Store != "memory" || cfg.Cache.Type != "memory" {
		t.Errorf("expected memory stores by default, got sessions=%s cache=%s", cfg.Sessions.Store, cfg.Cache.Type)
	}
	if cfg.Backend.BaseURL != "http://localhost:8080" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
}
