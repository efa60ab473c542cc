package config

import (
	"time"
)

type Config struct {
	Server      ServerConfig       `yaml:"server"`
	Log         LogConfig          `yaml:"log"`
	CORS        CORSConfig         `yaml:"cors"`
	Sessions    SessionConfig      `yaml:"sessions"`
	Auth        AuthConfig         `yaml:"auth"`
	Backend     BackendConfig      `yaml:"backend"`
	Cache       CacheConfig        `yaml:"cache"`
	Redis       *RedisConfig       `yaml:"redis"`
	Distributed *DistributedConfig `yaml:"distributed"`
}

type ServerConfig struct {
	Port   int                `yaml:"port"`
	Secure bool               `yaml:"secure"`
	Debug  *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 3000,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{"GET", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store    string        `yaml:"store"`
	Lifetime time.Duration `yaml:"lifetime"`
	Name     string        `yaml:"name"`
	Secure   bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:    "memory",
	Lifetime: 30 * 24 * time.Hour,
	Name:     "session_id",
}

// AuthConfig describes the single demo account and the cookie flag the
// route guard reads.
type AuthConfig struct {
	Username          string        `yaml:"username"`
	Password          string        `yaml:"password"`
	PasswordHash      string        `yaml:"password_hash"`
	FlagCookieName    string        `yaml:"flag_cookie_name"`
	FlagMaxAge        time.Duration `yaml:"flag_max_age"`
	LoginPath         string        `yaml:"login_path"`
	ProtectedPrefixes []string      `yaml:"protected_prefixes"`
}

var DefaultAuthConfig = AuthConfig{
	Username:          "admin",
	Password:          "admin",
	FlagCookieName:    "auth",
	FlagMaxAge:        30 * 24 * time.Hour,
	LoginPath:         "/login",
	ProtectedPrefixes: []string{"/dashboard", "/upload", "/invoices", "/invoice"},
}

type BackendConfig struct {
	BaseURL              string        `yaml:"base_url"`
	Timeout              time.Duration `yaml:"timeout"`
	BasicAuth            *BasicAuth    `yaml:"basic_auth"`
	StatsTTL             time.Duration `yaml:"stats_ttl"`
	StatsRefreshInterval time.Duration `yaml:"stats_refresh_interval"`
}

var DefaultBackendConfig = BackendConfig{
	BaseURL:              "http://localhost:8080",
	Timeout:              60 * time.Second,
	StatsTTL:             5 * time.Minute,
	StatsRefreshInterval: time.Minute,
}

type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type CacheConfig struct {
	Type string `yaml:"type"` //  "memory" or "redis"
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
	CacheIndex   int                  `yaml:"cache_index"`
	LeaderIndex  int                  `yaml:"leader_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
	LeaderIndex:  2,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

type DistributedConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

var DefaultDistributedConfig = DistributedConfig{
	Enabled: false,
	TTL:     30 * time.Second,
}
