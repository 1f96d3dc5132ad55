package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Storage  StorageConfig  `mapstructure:"storage"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// StorageConfig selects and configures the profile picture backend.
// Driver is "local" (files under LocalDir, served at PublicPrefix) or "s3".
type StorageConfig struct {
	Driver       string   `mapstructure:"driver"`
	LocalDir     string   `mapstructure:"local_dir"`
	PublicPrefix string   `mapstructure:"public_prefix"`
	S3           S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads configuration from file or environment variables.
// Nested keys map to env vars with underscores, e.g. jwt.secret -> JWT_SECRET.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// AutomaticEnv only resolves keys viper has already seen, so every key
	// is bound explicitly; without this, keys that lack a default (e.g.
	// database.uri) would never pick up their env var.
	for _, key := range []string{
		"server.address",
		"database.uri",
		"database.name",
		"jwt.secret",
		"jwt.expiration",
		"storage.driver",
		"storage.local_dir",
		"storage.public_prefix",
		"storage.s3.endpoint",
		"storage.s3.region",
		"storage.s3.access_key_id",
		"storage.s3.secret_access_key",
		"storage.s3.bucket_name",
		"storage.s3.use_ssl",
		"cors.allowed_origins",
	} {
		if err = viper.BindEnv(key); err != nil {
			return
		}
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.name", "fitfusion")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("storage.driver", "local")
	viper.SetDefault("storage.local_dir", "uploads")
	viper.SetDefault("storage.public_prefix", "/uploads")
	viper.SetDefault("storage.s3.use_ssl", true)
	viper.SetDefault("cors.allowed_origins", []string{"*"})

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults may cover everything.
		err = nil
	} else if err != nil {
		return
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate checks that every required setting is present and returns a single
// error naming all that are missing, so an operator can fix them in one pass.
func (c Config) Validate() error {
	var missing []string
	if c.Database.URI == "" {
		missing = append(missing, "database.uri (DATABASE_URI)")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "jwt.secret (JWT_SECRET)")
	}
	if c.Storage.Driver == "s3" {
		if c.Storage.S3.BucketName == "" {
			missing = append(missing, "storage.s3.bucket_name (STORAGE_S3_BUCKET_NAME)")
		}
		if c.Storage.S3.AccessKeyID == "" {
			missing = append(missing, "storage.s3.access_key_id (STORAGE_S3_ACCESS_KEY_ID)")
		}
		if c.Storage.S3.SecretAccessKey == "" {
			missing = append(missing, "storage.s3.secret_access_key (STORAGE_S3_SECRET_ACCESS_KEY)")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration:\n  - %s", strings.Join(missing, "\n  - "))
	}
	if c.Storage.Driver != "local" && c.Storage.Driver != "s3" {
		return fmt.Errorf("unknown storage driver %q (must be \"local\" or \"s3\")", c.Storage.Driver)
	}
	return nil
}
