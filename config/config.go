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
	defaultMaxRequestBodySize = "5MB"
	defaultSessionCookie      = "sf_session"
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultPhoneLocale        = "PE"
	defaultSiteName           = "CHIC SHOP"
	defaultPageTitle          = "Aplicación"
	defaultSignedURLTTL       = 15 * time.Minute
	defaultAdminGroup         = "admin"
	defaultSessionCleanup     = time.Hour
	defaultLocalStorePath     = "storefront.db"
	defaultMaxUploadBytes     = 5 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Cognito configures the hosted identity provider
	Cognito *CognitoConfig `json:"cognito" yaml:"cognito"`

	// Session configures the server-side browser session
	Session *SessionConfig `json:"session" yaml:"session"`

	// Phone selects the phone-number normalization rule used for identifiers
	Phone *PhoneConfig `json:"phone" yaml:"phone"`

	// Storage configures the object storage bucket for catalog and order images
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// LocalStore configures the node-local key-value store
	LocalStore *LocalStoreConfig `json:"localStore" yaml:"localStore"`

	// Site holds presentation settings used by the navigation guard
	Site *SiteConfig `json:"site" yaml:"site"`

	// Firebase configuration for admin push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for payment-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the order event worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// CognitoConfig defines the identity provider settings
type CognitoConfig struct {
	Region       string `json:"region" yaml:"region"`
	UserPoolID   string `json:"userPoolId" yaml:"userPoolId"`
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	// Endpoint overrides the service endpoint (local emulators)
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	AdminGroup string `json:"adminGroup" yaml:"adminGroup"`
}

// SessionConfig defines the browser session cookie and lifetime
type SessionConfig struct {
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	TTL          time.Duration `json:"ttl" yaml:"ttl"`
	Secure       bool          `json:"secure" yaml:"secure"`
	SealKey      string        `json:"sealKey" yaml:"sealKey"`
	CleanupEvery time.Duration `json:"cleanupEvery" yaml:"cleanupEvery"`
}

// PhoneConfig defines how phone-style identifiers are normalized
type PhoneConfig struct {
	// Locale selects a built-in rule (PE, AR)
	Locale string `json:"locale" yaml:"locale"`

	// Rule overrides the built-in rule when CountryCode is set
	Rule *PhoneRuleConfig `json:"rule" yaml:"rule"`
}

// PhoneRuleConfig is a custom country rule
type PhoneRuleConfig struct {
	CountryCode      string `json:"countryCode" yaml:"countryCode"`
	TrunkPrefix      string `json:"trunkPrefix" yaml:"trunkPrefix"`
	MobilePrefix     string `json:"mobilePrefix" yaml:"mobilePrefix"`
	NationalLength   int    `json:"nationalLength" yaml:"nationalLength"`
	MobileInNational bool   `json:"mobileInNational" yaml:"mobileInNational"`
}

// StorageConfig defines the object storage bucket
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL (file://, mem://, s3://, gs://)
	BucketURL      string        `json:"bucketUrl" yaml:"bucketUrl"`
	SignedURLTTL   time.Duration `json:"signedUrlTtl" yaml:"signedUrlTtl"`
	MaxUploadBytes int64         `json:"maxUploadBytes" yaml:"maxUploadBytes"`
}

// LocalStoreConfig defines the sqlite-backed key-value store
type LocalStoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// SiteConfig defines presentation settings
type SiteConfig struct {
	Name         string `json:"name" yaml:"name"`
	DefaultTitle string `json:"defaultTitle" yaml:"defaultTitle"`
	LandingPath  string `json:"landingPath" yaml:"landingPath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	AdminTopic      string `json:"adminTopic" yaml:"adminTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// WorkerConfig defines the order event worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// VerifyPushAuth enables OIDC verification of Pub/Sub push requests
	VerifyPushAuth bool   `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	PushAudience   string `json:"pushAudience" yaml:"pushAudience"`
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

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections so downstream constructors never see nil.
func applyDefaults(cfg *Config) {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookie
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.CleanupEvery <= 0 {
		cfg.Session.CleanupEvery = defaultSessionCleanup
	}

	if cfg.Phone == nil {
		cfg.Phone = &PhoneConfig{}
	}
	if cfg.Phone.Locale == "" {
		cfg.Phone.Locale = defaultPhoneLocale
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = defaultSiteName
	}
	if cfg.Site.DefaultTitle == "" {
		cfg.Site.DefaultTitle = defaultPageTitle
	}
	if cfg.Site.LandingPath == "" {
		cfg.Site.LandingPath = "/"
	}

	if cfg.Storage != nil {
		if cfg.Storage.SignedURLTTL <= 0 {
			cfg.Storage.SignedURLTTL = defaultSignedURLTTL
		}
		if cfg.Storage.MaxUploadBytes <= 0 {
			cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
		}
	}

	if cfg.LocalStore == nil {
		cfg.LocalStore = &LocalStoreConfig{}
	}
	if cfg.LocalStore.Path == "" {
		cfg.LocalStore.Path = defaultLocalStorePath
	}

	if cfg.Cognito != nil && cfg.Cognito.AdminGroup == "" {
		cfg.Cognito.AdminGroup = defaultAdminGroup
	}
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
