// Package provider defines the news source abstraction: a Source looks up
// at most one representative news item for a company, and a Registry maps
// source names to implementations so the lookup order can be configured.
package provider

import (
	"context"
	"fmt"

	"github.com/seenimoa/newsboard/pkg/models"
)

// Field names a company attribute a source depends on.
type Field string

const (
	FieldTicker Field = "ticker"
	FieldCIK    Field = "cik"
	FieldName   Field = "name"
)

// SourceCredential describes a credential a source can use.
type SourceCredential struct {
	Name        string `json:"name"`        // e.g., "api_key"
	Description string `json:"description"` // e.g., "Finnhub API key from finnhub.io"
	Required    bool   `json:"required"`
	EnvVar      string `json:"env_var"` // e.g., "NEWSBOARD_SOURCES_FINNHUB_API_KEY"
}

// SourceInfo holds metadata about a registered source.
type SourceInfo struct {
	Name        string             `json:"name"`        // registry key, e.g., "finnhub"
	Label       string             `json:"label"`       // default source label on items
	Description string             `json:"description"` // human-readable description
	Website     string             `json:"website"`
	Credentials []SourceCredential `json:"credentials"`
	Requires    []Field            `json:"requires"` // company fields needed for a lookup
}

// Source is implemented by every news source.
type Source interface {
	// Info returns metadata about this source.
	Info() SourceInfo

	// Init configures the source with credentials. Called once before use.
	Init(credentials map[string]string) error

	// Lookup returns the most relevant news item for the company.
	// A nil item with a nil error means the source has nothing to offer.
	// Errors are diagnostic only; callers treat them as "no result".
	Lookup(ctx context.Context, c models.Company) (*models.NewsItem, error)
}

// ErrSourceNotFound is returned when a requested source is not registered.
type ErrSourceNotFound struct {
	Name string
}

func (e *ErrSourceNotFound) Error() string {
	return fmt.Sprintf("source %q not found", e.Name)
}

// ErrMissingField is returned when a company lacks a field the source needs.
type ErrMissingField struct {
	Source string
	Field  Field
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("source %q needs company field %q", e.Source, e.Field)
}

// ErrInvalidCredentials is returned when source credentials are missing or invalid.
type ErrInvalidCredentials struct {
	Source string
	Detail string
}

func (e *ErrInvalidCredentials) Error() string {
	return fmt.Sprintf("invalid credentials for source %q: %s", e.Source, e.Detail)
}

// CheckFields returns ErrMissingField for the first required field c lacks.
func CheckFields(source string, c models.Company, required []Field) error {
	for _, f := range required {
		var ok bool
		switch f {
		case FieldTicker:
			ok = c.HasTicker()
		case FieldCIK:
			ok = c.HasCIK()
		case FieldName:
			ok = c.Name != ""
		}
		if !ok {
			return &ErrMissingField{Source: source, Field: f}
		}
	}
	return nil
}
