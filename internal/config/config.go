package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ServerAddress string     `json:"serverAddress"`
	DatabasePath  string     `json:"databasePath"`
	DatabaseURL   string     `json:"databaseUrl"`
	CatalogAPI    CatalogAPI `json:"catalogApi"`
	Uploads       Uploads    `json:"uploads"`
	Security      Security   `json:"security"`
}

// CatalogAPI configures the remote catalog REST API the console drives
type CatalogAPI struct {
	BaseURL        string `json:"baseUrl"`
	Token          string `json:"token"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	// Client credentials take precedence over Token when all three are set
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	TokenURL     string `json:"tokenUrl"`
	// ImageCDNURL serves resized variant images. Defaults to BaseURL.
	ImageCDNURL string `json:"imageCdnUrl"`
}

// UsesClientCredentials reports whether tokens are fetched from TokenURL
func (c CatalogAPI) UsesClientCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}

// Timeout returns the per-request timeout for catalog API calls
func (c CatalogAPI) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Uploads configures how image uploads are prepared before forwarding
type Uploads struct {
	MaxFileSizeMB     int64    `json:"maxFileSizeMB"`
	MaxDimension      int      `json:"maxDimension"`
	AllowedExtensions []string `json:"allowedExtensions"`
}

// Security configuration
type Security struct {
	SessionDurationHours  int    `json:"sessionDurationHours"`
	AdminUsername         string `json:"adminUsername"`
	AdminPassword         string `json:"adminPassword"`
	ActivityRetentionDays int    `json:"activityRetentionDays"`
}

// UsePostgres returns true if PostgreSQL should be used
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// Default configuration
func defaultConfig() *Config {
	return &Config{
		ServerAddress: ":8080",
		DatabasePath:  "hairshop-admin.db",
		CatalogAPI: CatalogAPI{
			BaseURL:        "https://api.perukytyt.com",
			TimeoutSeconds: 30,
		},
		Uploads: Uploads{
			MaxFileSizeMB: 10,
			MaxDimension:  2000,
			AllowedExtensions: []string{
				".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".heic", ".heif",
			},
		},
		Security: Security{
			SessionDurationHours:  24,
			ActivityRetentionDays: 90,
		},
	}
}

// Load loads configuration from .env, config file and environment, in that order
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	cfg.CatalogAPI.BaseURL = strings.TrimRight(cfg.CatalogAPI.BaseURL, "/")
	if cfg.CatalogAPI.ImageCDNURL == "" {
		cfg.CatalogAPI.ImageCDNURL = cfg.CatalogAPI.BaseURL
	}
	cfg.CatalogAPI.ImageCDNURL = strings.TrimRight(cfg.CatalogAPI.ImageCDNURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.ServerAddress = addr
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	// Catalog API
	if url := os.Getenv("CATALOG_API_URL"); url != "" {
		cfg.CatalogAPI.BaseURL = url
	}
	if token := os.Getenv("CATALOG_API_TOKEN"); token != "" {
		cfg.CatalogAPI.Token = token
	}
	if id := os.Getenv("CATALOG_API_CLIENT_ID"); id != "" {
		cfg.CatalogAPI.ClientID = id
	}
	if secret := os.Getenv("CATALOG_API_CLIENT_SECRET"); secret != "" {
		cfg.CatalogAPI.ClientSecret = secret
	}
	if tokenURL := os.Getenv("CATALOG_API_TOKEN_URL"); tokenURL != "" {
		cfg.CatalogAPI.TokenURL = tokenURL
	}
	if timeout := os.Getenv("CATALOG_API_TIMEOUT_SECONDS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			cfg.CatalogAPI.TimeoutSeconds = secs
		}
	}
	if cdn := os.Getenv("IMAGE_CDN_URL"); cdn != "" {
		cfg.CatalogAPI.ImageCDNURL = cdn
	}

	// Uploads
	if size := os.Getenv("UPLOAD_MAX_FILE_SIZE_MB"); size != "" {
		if mb, err := strconv.ParseInt(size, 10, 64); err == nil {
			cfg.Uploads.MaxFileSizeMB = mb
		}
	}
	if dim := os.Getenv("UPLOAD_MAX_DIMENSION"); dim != "" {
		if px, err := strconv.Atoi(dim); err == nil {
			cfg.Uploads.MaxDimension = px
		}
	}

	// Security
	if hours := os.Getenv("SESSION_DURATION_HOURS"); hours != "" {
		if h, err := strconv.Atoi(hours); err == nil {
			cfg.Security.SessionDurationHours = h
		}
	}
	if user := os.Getenv("ADMIN_USERNAME"); user != "" {
		cfg.Security.AdminUsername = user
	}
	if pass := os.Getenv("ADMIN_PASSWORD"); pass != "" {
		cfg.Security.AdminPassword = pass
	}
	if days := os.Getenv("ACTIVITY_RETENTION_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil {
			cfg.Security.ActivityRetentionDays = d
		}
	}
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if c.CatalogAPI.BaseURL == "" {
		return errors.New("catalog API base URL is required")
	}
	if c.CatalogAPI.TimeoutSeconds <= 0 {
		return errors.New("catalog API timeout must be positive")
	}
	if c.Uploads.MaxFileSizeMB <= 0 {
		return errors.New("upload max file size must be positive")
	}
	if c.Uploads.MaxDimension <= 0 {
		return errors.New("upload max dimension must be positive")
	}
	if c.Security.SessionDurationHours <= 0 {
		return errors.New("session duration must be positive")
	}
	return nil
}
