package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPasswordMinLength  = 8
	defaultSupabaseTimeout    = 10 * time.Second
	defaultAccessCookie       = "sb-access-token"
	defaultRefreshCookie      = "sb-refresh-token"
	defaultClientCookie       = "zephyr-client"

	envProduction = "production"
)

var (
	defaultProtectedRoutes = []string{"/profile", "/results", "/settings"}
	defaultAuthRoutes      = []string{"/login"}
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configuration for the account cleanup push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Supabase configuration for the identity provider
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	App *AppConfig `json:"app" yaml:"app"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Routes configuration for the page route guard
	Routes *RoutesConfig `json:"routes" yaml:"routes"`

	// Redis configuration for the profile mirror
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WorkerConfig defines the cleanup worker HTTP server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Audience expected in Pub/Sub push OIDC tokens; empty disables the check
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// SupabaseConfig defines the identity provider endpoint and keys
type SupabaseConfig struct {
	URL            string        `json:"url" yaml:"url"`
	AnonKey        string        `json:"anonKey" yaml:"anonKey"`
	ServiceRoleKey string        `json:"serviceRoleKey" yaml:"serviceRoleKey"`
	JWTSecret      string        `json:"jwtSecret" yaml:"jwtSecret"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
}

// AppConfig defines the public application URL and the frontend that serves pages
type AppConfig struct {
	URL              string `json:"url" yaml:"url"`
	FrontendUpstream string `json:"frontendUpstream" yaml:"frontendUpstream"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	PasswordMinLength  int  `json:"passwordMinLength" yaml:"passwordMinLength"`
	RequireRecoveryAMR bool `json:"requireRecoveryAMR" yaml:"requireRecoveryAMR"`
}

// SessionConfig defines the session cookies
type SessionConfig struct {
	AccessCookie  string        `json:"accessCookie" yaml:"accessCookie"`
	RefreshCookie string        `json:"refreshCookie" yaml:"refreshCookie"`
	ClientCookie  string        `json:"clientCookie" yaml:"clientCookie"` // Identifies the browser across sessions
	Domain        string        `json:"domain" yaml:"domain"`
	Secure        bool          `json:"secure" yaml:"secure"`
	MaxAge        time.Duration `json:"maxAge" yaml:"maxAge"`
}

// RoutesConfig defines which page paths need a session and which ones must not have one
type RoutesConfig struct {
	Protected  []string `json:"protected" yaml:"protected"`
	AuthRoutes []string `json:"authRoutes" yaml:"authRoutes"`
	Login      string   `json:"login" yaml:"login"`
	Home       string   `json:"home" yaml:"home"`
}

// RedisConfig defines the profile mirror store
type RedisConfig struct {
	URL       string        `json:"url" yaml:"url"`
	MirrorTTL time.Duration `json:"mirrorTTL" yaml:"mirrorTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with env.env = production.
func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.Env.Env, envProduction)
}

func applyDefaults(cfg *Config) {
	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	if cfg.Supabase.Timeout <= 0 {
		cfg.Supabase.Timeout = defaultSupabaseTimeout
	}

	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.PasswordMinLength <= 0 {
		cfg.Auth.PasswordMinLength = defaultPasswordMinLength
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.AccessCookie == "" {
		cfg.Session.AccessCookie = defaultAccessCookie
	}
	if cfg.Session.RefreshCookie == "" {
		cfg.Session.RefreshCookie = defaultRefreshCookie
	}
	if cfg.Session.ClientCookie == "" {
		cfg.Session.ClientCookie = defaultClientCookie
	}

	if cfg.Routes == nil {
		cfg.Routes = &RoutesConfig{}
	}
	if len(cfg.Routes.Protected) == 0 {
		cfg.Routes.Protected = defaultProtectedRoutes
	}
	if len(cfg.Routes.AuthRoutes) == 0 {
		cfg.Routes.AuthRoutes = defaultAuthRoutes
	}
	if cfg.Routes.Login == "" {
		cfg.Routes.Login = "/login"
	}
	if cfg.Routes.Home == "" {
		cfg.Routes.Home = "/"
	}
}

// validate refuses to start a production service without identity provider credentials.
func (cfg *Config) validate() error {
	if !cfg.IsProduction() {
		return nil
	}

	if strings.TrimSpace(cfg.Supabase.URL) == "" || strings.TrimSpace(cfg.Supabase.AnonKey) == "" {
		return errors.New("missing Supabase configuration: supabase.url and supabase.anonKey are required in production")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
