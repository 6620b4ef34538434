package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port == "" {
		t.Error("Load() returned empty port")
	}
	if cfg.DynamoDB.TableName != "users_info" {
		t.Errorf("Default table name = %q, want %q", cfg.DynamoDB.TableName, "users_info")
	}
	if cfg.Repository.Driver == "" {
		t.Error("Load() returned empty repository driver")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_CONFIG_KEY", "value")
	defer os.Unsetenv("TEST_CONFIG_KEY")

	if got := GetEnv("TEST_CONFIG_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv() = %q, want %q", got, "value")
	}
	if got := GetEnv("TEST_CONFIG_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_CONFIG_INT", "42")
	defer os.Unsetenv("TEST_CONFIG_INT")

	if got := GetEnvAsInt("TEST_CONFIG_INT", 7); got != 42 {
		t.Errorf("GetEnvAsInt() = %d, want 42", got)
	}
	if got := GetEnvAsInt("TEST_CONFIG_INT_MISSING", 7); got != 7 {
		t.Errorf("GetEnvAsInt() = %d, want fallback 7", got)
	}

	os.Setenv("TEST_CONFIG_INT_BAD", "nope")
	defer os.Unsetenv("TEST_CONFIG_INT_BAD")
	if got := GetEnvAsInt("TEST_CONFIG_INT_BAD", 7); got != 7 {
		t.Errorf("GetEnvAsInt() with bad value = %d, want fallback 7", got)
	}
}
