package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Ledger   LedgerConfig
	Security SecurityConfig
	Session  SessionConfig
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	FixturePath string `env:"LEDGER_FIXTURE"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	File   string `env:"LOG_FILE" envDefault:"logs/ledger.log"`
}

type LedgerConfig struct {
	MaintenanceFee string `env:"LEDGER_MAINTENANCE_FEE" envDefault:"10.00"`
}

// MaintenanceFeeAmount parses the configured fee
func (c LedgerConfig) MaintenanceFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(c.MaintenanceFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid LEDGER_MAINTENANCE_FEE %q: %w", c.MaintenanceFee, err)
	}
	if !fee.IsPositive() {
		return decimal.Zero, fmt.Errorf("LEDGER_MAINTENANCE_FEE must be positive, got %s", c.MaintenanceFee)
	}
	return fee, nil
}

type SecurityConfig struct {
	BCryptCost          int     `env:"BCRYPT_COST" envDefault:"12"`
	PasswordMinLength   int     `env:"PASSWORD_MIN_LENGTH" envDefault:"12"`
	RequireUppercase    bool    `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"true"`
	RequireLowercase    bool    `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"true"`
	RequireNumbers      bool    `env:"PASSWORD_REQUIRE_NUMBERS" envDefault:"true"`
	RequireSpecialChars bool    `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"true"`
	LoginRatePerMinute  float64 `env:"LOGIN_RATE_PER_MINUTE" envDefault:"6"`
	MaxFailedAttempts   int     `env:"MAX_FAILED_ATTEMPTS" envDefault:"3"`
}

type SessionConfig struct {
	TokenDuration time.Duration `env:"SESSION_TOKEN_DURATION" envDefault:"30m"`
	Issuer        string        `env:"SESSION_ISSUER" envDefault:"bank-ledger"`
	PrivateKey    *rsa.PrivateKey
	PublicKey     *rsa.PublicKey
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if _, err := cfg.Ledger.MaintenanceFeeAmount(); err != nil {
		return nil, err
	}

	var err error
	cfg.Session.PrivateKey, cfg.Session.PublicKey, err = cfg.loadSessionKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

// loadSessionKeys loads the RSA keys used to sign session tokens
// Priority order:
// 1. SESSION_PRIVATE_KEY and SESSION_PUBLIC_KEY env vars (base64 PEM)
// 2. In production, missing keys are an error
// 3. Otherwise a new keypair is generated; sessions do not survive a restart
func (c *Config) loadSessionKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("SESSION_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("SESSION_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		return loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("SESSION_PRIVATE_KEY and SESSION_PUBLIC_KEY environment variables must be set in production environments")
	}

	return GenerateRSAKeyPair()
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode SESSION_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode SESSION_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
