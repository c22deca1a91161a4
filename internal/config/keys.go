package config

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups newsboard's secrets in the OS keychain.
	KeyringService = "newsboard"

	// EnvFinnhubKey overrides sources.finnhub.api_key.
	EnvFinnhubKey = EnvPrefix + "_SOURCES_FINNHUB_API_KEY"
)

// keyringAccounts maps a source name to its keychain account.
var keyringAccounts = map[string]string{
	"finnhub": "finnhub:api_key",
}

// APIKeySource represents where an API key comes from.
type APIKeySource string

const (
	KeySourceEnv     APIKeySource = "env"
	KeySourceConfig  APIKeySource = "config"
	KeySourceKeyring APIKeySource = "keyring"
	KeySourceNone    APIKeySource = "none"
)

// KeyStatus represents the status of an API key.
type KeyStatus struct {
	Name   string       `json:"name"`
	Source APIKeySource `json:"source"`
	IsSet  bool         `json:"is_set"`
	Masked string       `json:"masked,omitempty"` // e.g., "abc...678"
}

// ErrUnknownKey is returned for sources that do not take an API key.
var ErrUnknownKey = errors.New("source has no API key")

// SetKey stores a source API key in the OS keychain.
func SetKey(source, value string) error {
	account, ok := keyringAccounts[strings.ToLower(source)]
	if !ok {
		return ErrUnknownKey
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("key is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

// DeleteKey removes a source API key from the OS keychain.
func DeleteKey(source string) error {
	account, ok := keyringAccounts[strings.ToLower(source)]
	if !ok {
		return ErrUnknownKey
	}
	return keyring.Delete(KeyringService, account)
}

// ResolveKeys fills API keys missing from config and environment with values
// from the OS keychain. Keychain errors leave the key empty.
func ResolveKeys(cfg *Config) {
	if cfg.Sources.Finnhub.APIKey == "" {
		cfg.Sources.Finnhub.APIKey = keyringValue("finnhub")
	}
}

func keyringValue(source string) string {
	pw, err := keyring.Get(KeyringService, keyringAccounts[source])
	if err != nil {
		return ""
	}
	return strings.TrimSpace(pw)
}

// CheckAPIKeys returns the status of all source API keys.
func CheckAPIKeys(cfg *Config) []KeyStatus {
	return []KeyStatus{
		checkKey("Finnhub API Key", cfg.Sources.Finnhub.APIKey, EnvFinnhubKey, "finnhub"),
	}
}

// checkKey checks if a key is set and where it came from.
func checkKey(name, value, envVar, source string) KeyStatus {
	status := KeyStatus{
		Name:  name,
		IsSet: value != "",
	}

	switch {
	case value == "":
		status.Source = KeySourceNone
	case os.Getenv(envVar) != "":
		status.Source = KeySourceEnv
	case keyringValue(source) == value:
		status.Source = KeySourceKeyring
	default:
		status.Source = KeySourceConfig
	}
	if value != "" {
		status.Masked = maskKey(value)
	}
	return status
}

// maskKey masks an API key for display, showing only first 3 and last 3 chars.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:3] + "..." + key[len(key)-3:]
}
