package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAdminAuthUnconfiguredNeverSucceeds(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("ADMIN_TOKEN_FILE", "")

	if err := InitializeAdminAuth(); err != nil {
		t.Fatalf("InitializeAdminAuth() failed: %v", err)
	}

	a := GetAdminAuth()
	if a.Configured() {
		t.Fatal("Configured() = true with no token set")
	}
	if a.Check("") || a.Check("anything") {
		t.Error("Check() must always fail when no token is configured")
	}
}

func TestAdminAuthFromEnv(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "hunter2")
	t.Setenv("ADMIN_TOKEN_FILE", "")

	if err := InitializeAdminAuth(); err != nil {
		t.Fatalf("InitializeAdminAuth() failed: %v", err)
	}

	a := GetAdminAuth()
	if !a.Configured() {
		t.Fatal("Configured() = false with ADMIN_TOKEN set")
	}
	if !a.Check("hunter2") {
		t.Error("Check() rejected the correct secret")
	}
	if a.Check("hunter3") || a.Check("") {
		t.Error("Check() accepted a wrong secret")
	}
}

func TestAdminAuthFromFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_token")
	if err := os.WriteFile(path, []byte("file-secret\ntrailing junk\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_TOKEN", "env-secret")
	t.Setenv("ADMIN_TOKEN_FILE", path)

	if err := InitializeAdminAuth(); err != nil {
		t.Fatalf("InitializeAdminAuth() failed: %v", err)
	}

	a := GetAdminAuth()
	if !a.Check("file-secret") {
		t.Error("Check() rejected the first line of the secret file")
	}
	if a.Check("env-secret") {
		t.Error("Check() accepted the env token despite the file being set")
	}
}

func TestAdminAuthMissingFileIsAnError(t *testing.T) {
	t.Setenv("ADMIN_TOKEN_FILE", filepath.Join(t.TempDir(), "nope"))

	if err := InitializeAdminAuth(); err == nil {
		t.Error("InitializeAdminAuth() should fail when the secret file is unreadable")
	}
}
