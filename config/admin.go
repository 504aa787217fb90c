package config

import (
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth checks presented admin secrets against the configured token.
// Only the bcrypt hash of the token is kept in memory after startup.
// When no token is configured, authentication can never succeed.
type AdminAuth struct {
	hash []byte
}

var adminAuth *AdminAuth

// InitializeAdminAuth loads the admin token from ADMIN_TOKEN_FILE (first
// line of a mounted secret file) or, failing that, the ADMIN_TOKEN
// environment variable, and stores its bcrypt hash.
func InitializeAdminAuth() error {
	secret := ""
	if file := os.Getenv("ADMIN_TOKEN_FILE"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		secret = strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	}
	if secret == "" {
		secret = os.Getenv("ADMIN_TOKEN")
	}

	if secret == "" {
		adminAuth = &AdminAuth{}
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminAuth = &AdminAuth{hash: hash}
	return nil
}

// GetAdminAuth returns the process-wide admin auth checker
func GetAdminAuth() *AdminAuth {
	if adminAuth == nil {
		adminAuth = &AdminAuth{}
	}
	return adminAuth
}

// Configured reports whether an admin token was provided at startup
func (a *AdminAuth) Configured() bool {
	return len(a.hash) > 0
}

// Check verifies a presented secret against the configured token hash.
// Always false when no token is configured.
func (a *AdminAuth) Check(secret string) bool {
	if len(a.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.hash, []byte(secret)) == nil
}
