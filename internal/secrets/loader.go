package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when no source yields a usable secret.
var ErrNotConfigured = errors.New("secret is not configured")

// Source describes where a secret may come from. File wins over Value, and
// Value wins over Env.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// File points to a file containing the secret value.
	File string
	// Value is an inline secret value provided via configuration or flags.
	Value string
	// Env is the name of an environment variable consulted last.
	Env string
}

var lookupEnv = os.LookupEnv

// Load resolves the secret described by src. The returned value is trimmed.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if value, ok := lookupEnv(env); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
		return "", fmt.Errorf("%s: %w (checked %s)", name, ErrNotConfigured, env)
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
}
