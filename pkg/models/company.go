// Package models defines the core data structures used throughout newsboard.
package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Company is a listed company tracked on the dashboard. CIK is the SEC
// regulator id and IRURL the investor-relations page; both are optional.
// Values are immutable after loading and are passed by value.
type Company struct {
	Name     string `json:"name"               yaml:"name"`
	Ticker   string `json:"ticker,omitempty"   yaml:"ticker"`
	Exchange string `json:"exchange,omitempty" yaml:"exchange"`
	CIK      string `json:"cik,omitempty"      yaml:"cik"`
	IRURL    string `json:"ir_url,omitempty"   yaml:"ir_url"`
}

// DisplayName returns "Name (TICKER)", or just the name when no ticker is known.
func (c Company) DisplayName() string {
	if c.Ticker == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Ticker)
}

// HasTicker reports whether a ticker symbol is available.
func (c Company) HasTicker() bool { return strings.TrimSpace(c.Ticker) != "" }

// HasCIK reports whether a regulator id is available.
func (c Company) HasCIK() bool { return strings.TrimSpace(c.CIK) != "" }

// Validate checks the invariants of a company record.
func (c Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("company name is required")
	}
	if c.CIK != "" {
		for _, r := range c.CIK {
			if r < '0' || r > '9' {
				return fmt.Errorf("company %q: cik must be numeric, got %q", c.Name, c.CIK)
			}
		}
	}
	if c.IRURL != "" {
		if err := ValidateURL(c.IRURL); err != nil {
			return fmt.Errorf("company %q: ir_url: %w", c.Name, err)
		}
	}
	return nil
}

// ValidateURL checks that raw is an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
