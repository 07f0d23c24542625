package data

import (
	"encoding/json"
	"fmt"
	"os"
)

// Secrets is the flat JSON secret file, a fallback credential source for
// environments where EIA_API_KEY is not exported.
type Secrets struct {
	EIAAPIKey string `json:"EIA_API_KEY"`
}

// LoadSecrets reads a secrets file.
func LoadSecrets(path string) (*Secrets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Secrets
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid secrets file %s: %w", path, err)
	}
	return &s, nil
}

// ResolveAPIKey picks the API key from, in order: the explicit value, the
// EIA_API_KEY environment variable, the secrets file. Failing all three is a
// configuration error, surfaced before any network call.
func ResolveAPIKey(explicit, secretsPath string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if key := os.Getenv("EIA_API_KEY"); key != "" {
		return key, nil
	}
	if secretsPath != "" {
		s, err := LoadSecrets(secretsPath)
		if err == nil && s.EIAAPIKey != "" {
			return s.EIAAPIKey, nil
		}
	}
	return "", fmt.Errorf("an EIA API key is required: set EIA_API_KEY, pass --api-key, or provide a secrets file")
}
