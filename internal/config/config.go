package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses raw YAML, applies environment overrides and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns a fully defaulted configuration.
func Default() *Config {
	cfg := &Config{}
	if err := validateConfig(cfg); err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

var (
	EnvBackendBaseURL           = "INVOICE_DASHBOARD_BACKEND_BASE_URL"
	EnvBackendBasicAuthUsername = "INVOICE_DASHBOARD_BACKEND_BASIC_AUTH_USERNAME"
	EnvBackendBasicAuthPassword = "INVOICE_DASHBOARD_BACKEND_BASIC_AUTH_PASSWORD"
	EnvAuthUsername             = "INVOICE_DASHBOARD_AUTH_USERNAME"
	EnvAuthPassword             = "INVOICE_DASHBOARD_AUTH_PASSWORD"
	EnvAuthPasswordHash         = "INVOICE_DASHBOARD_AUTH_PASSWORD_HASH"
	EnvRedisPassword            = "INVOICE_DASHBOARD_REDIS_PASSWORD"
	EnvRedisUsername            = "INVOICE_DASHBOARD_REDIS_USERNAME"
	EnvRedisSentinelUsername    = "INVOICE_DASHBOARD_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword    = "INVOICE_DASHBOARD_REDIS_SENTINEL_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if baseURL := os.Getenv(EnvBackendBaseURL); baseURL != "" {
		config.Backend.BaseURL = baseURL
	}

	if username := os.Getenv(EnvBackendBasicAuthUsername); username != "" {
		if config.Backend.BasicAuth == nil {
			config.Backend.BasicAuth = &BasicAuth{}
		}
		config.Backend.BasicAuth.Username = username
	}

	if password := os.Getenv(EnvBackendBasicAuthPassword); password != "" {
		if config.Backend.BasicAuth == nil {
			config.Backend.BasicAuth = &BasicAuth{}
		}
		config.Backend.BasicAuth.Password = password
	}

	if username := os.Getenv(EnvAuthUsername); username != "" {
		config.Auth.Username = username
	}

	if password := os.Getenv(EnvAuthPassword); password != "" {
		config.Auth.Password = password
	}

	if hash := os.Getenv(EnvAuthPasswordHash); hash != "" {
		config.Auth.PasswordHash = hash
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateBackendConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" || config.distributedEnabled() {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateDistributedConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) distributedEnabled() bool {
	return c.Distributed != nil && c.Distributed.Enabled
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.Lifetime == 0 {
		c.Sessions.Lifetime = DefaultSessionConfig.Lifetime
	} else if c.Sessions.Lifetime < time.Minute {
		return fmt.Errorf("sessions.lifetime cannot be less than 1 minute")
	}

	return nil
}

func (c *Config) validateAuthConfig() error {
	if c.Auth.Username == "" {
		c.Auth.Username = DefaultAuthConfig.Username
	}

	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		c.Auth.Password = DefaultAuthConfig.Password
	}

	if c.Auth.PasswordHash != "" && !strings.HasPrefix(c.Auth.PasswordHash, "$2") {
		return fmt.Errorf("auth.password_hash must be a bcrypt hash")
	}

	if c.Auth.FlagCookieName == "" {
		c.Auth.FlagCookieName = DefaultAuthConfig.FlagCookieName
	}

	if c.Auth.FlagCookieName == c.Sessions.Name {
		return fmt.Errorf("auth.flag_cookie_name and sessions.name must differ (both are %q)", c.Auth.FlagCookieName)
	}

	if c.Auth.FlagMaxAge == 0 {
		c.Auth.FlagMaxAge = DefaultAuthConfig.FlagMaxAge
	} else if c.Auth.FlagMaxAge < time.Minute {
		return fmt.Errorf("auth.flag_max_age cannot be less than 1 minute")
	}

	if c.Auth.LoginPath == "" {
		c.Auth.LoginPath = DefaultAuthConfig.LoginPath
	} else if !strings.HasPrefix(c.Auth.LoginPath, "/") {
		return fmt.Errorf("auth.login_path must start with '/', got %q", c.Auth.LoginPath)
	}

	if len(c.Auth.ProtectedPrefixes) == 0 {
		c.Auth.ProtectedPrefixes = append([]string(nil), DefaultAuthConfig.ProtectedPrefixes...)
	}

	for i, prefix := range c.Auth.ProtectedPrefixes {
		if !strings.HasPrefix(prefix, "/") || prefix == "/" {
			return fmt.Errorf("auth.protected_prefixes[%d] must be a path below '/', got %q", i, prefix)
		}
		if strings.HasPrefix(c.Auth.LoginPath, prefix) {
			return fmt.Errorf("auth.protected_prefixes[%d] %q would protect the login path", i, prefix)
		}
	}

	return nil
}

func (c *Config) validateBackendConfig() error {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendConfig.BaseURL
	}

	if err := validateURL(c.Backend.BaseURL, "backend.base_url"); err != nil {
		return err
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")

	if c.Backend.BasicAuth != nil {
		if c.Backend.BasicAuth.Username == "" {
			return fmt.Errorf("backend.basic_auth.username is required")
		}
		if c.Backend.BasicAuth.Password == "" {
			return fmt.Errorf("backend.basic_auth.password is required")
		}
	}

	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = DefaultBackendConfig.Timeout
	} else if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}

	if c.Backend.StatsTTL == 0 {
		c.Backend.StatsTTL = DefaultBackendConfig.StatsTTL
	}

	if c.Backend.StatsRefreshInterval == 0 {
		c.Backend.StatsRefreshInterval = DefaultBackendConfig.StatsRefreshInterval
	} else if c.Backend.StatsRefreshInterval < 10*time.Second {
		return fmt.Errorf("backend.stats_refresh_interval cannot be less than 10 seconds")
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = "memory"
	}

	switch c.Cache.Type {
	case "memory":
		break
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be enabled to use redis for data cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" && c.Redis.Sentinel == nil {
		return fmt.Errorf("redis address is required")
	}

	if c.Redis.Address != "" {
		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 && c.Redis.LeaderIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
		c.Redis.LeaderIndex = DefaultRedisConfig.LeaderIndex
	}

	const maxRedisDB = 15
	indices := map[string]int{
		"session_index": c.Redis.SessionIndex,
		"cache_index":   c.Redis.CacheIndex,
		"leader_index":  c.Redis.LeaderIndex,
	}
	for name, index := range indices {
		if index < 0 {
			return fmt.Errorf("redis %s must be non-negative, got %d", name, index)
		}
		if index > maxRedisDB {
			return fmt.Errorf("redis %s %d exceeds typical maximum of %d", name, index, maxRedisDB)
		}
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	if c.Redis.LeaderIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis leader_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.LeaderIndex)
	}

	if c.Redis.LeaderIndex == c.Redis.SessionIndex {
		return fmt.Errorf("redis leader_index and session_index should be different to avoid data collision (both are %d)", c.Redis.LeaderIndex)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}
	return nil
}

func (c *Config) validateDistributedConfig() error {
	if !c.distributedEnabled() {
		return nil
	}

	if c.Distributed.TTL.Seconds() <= 0 {
		c.Distributed.TTL = DefaultDistributedConfig.TTL
	} else if c.Distributed.TTL > time.Minute {
		return fmt.Errorf("distributed ttl cannot be more than 1 minute")
	}

	return nil
}
