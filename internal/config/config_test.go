package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Address: ":8080"},
		Database: DatabaseConfig{URI: "mongodb://localhost:27017", Name: "fitfusion"},
		JWT:      JWTConfig{Secret: "secret"},
		Storage:  StorageConfig{Driver: "local", LocalDir: "uploads", PublicPrefix: "/uploads"},
	}
}

func TestLoadConfigFromEnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://envhost:27017")
	t.Setenv("JWT_SECRET", "env-secret")

	// No config file in the directory; env vars and defaults must suffice.
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig with env-only configuration failed: %v", err)
	}
	if cfg.Database.URI != "mongodb://envhost:27017" {
		t.Errorf("database URI: got %q", cfg.Database.URI)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT secret: got %q", cfg.JWT.Secret)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("default server address not applied: %q", cfg.Server.Address)
	}
}

func TestLoadConfigNestedEnvKeys(t *testing.T) {
	t.Setenv("DATABASE_URI", "mongodb://envhost:27017")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("STORAGE_S3_BUCKET_NAME", "fitfusion-uploads")
	t.Setenv("STORAGE_S3_ACCESS_KEY_ID", "key-id")
	t.Setenv("STORAGE_S3_SECRET_ACCESS_KEY", "key-secret")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Driver != "s3" {
		t.Errorf("storage driver: got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.S3.BucketName != "fitfusion-uploads" {
		t.Errorf("bucket name: got %q", cfg.Storage.S3.BucketName)
	}
	if cfg.Storage.S3.AccessKeyID != "key-id" || cfg.Storage.S3.SecretAccessKey != "key-secret" {
		t.Errorf("S3 credentials not bound: %+v", cfg.Storage.S3)
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidateListsAllMissingKeys(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URI = ""
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	// Both missing settings must be named in the one error.
	for _, want := range []string{"database.uri", "DATABASE_URI", "jwt.secret", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q: %v", want, err)
		}
	}
}

func TestValidateS3RequiresCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "s3"
	cfg.Storage.S3 = S3Config{Region: "eu-west-1"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"bucket_name", "access_key_id", "secret_access_key"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q: %v", want, err)
		}
	}

	// The same keys are irrelevant for the local driver.
	cfg.Storage.Driver = "local"
	if err := cfg.Validate(); err != nil {
		t.Errorf("local driver rejected without S3 settings: %v", err)
	}
}

func TestValidateUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "ftp"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown storage driver accepted")
	}
}
