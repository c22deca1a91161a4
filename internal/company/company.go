// Package company loads the list of companies shown on the dashboard.
// The list is loaded once per run and passed to the loader by value; a
// built-in default is used when no file or URL is configured.
package company

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seenimoa/newsboard/internal/infra"
	"github.com/seenimoa/newsboard/pkg/models"
	"github.com/seenimoa/newsboard/pkg/utils"
)

//go:embed companies.json
var defaultList []byte

// Format is the encoding of a company list.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Default returns the built-in company list.
func Default() []models.Company {
	list, err := Parse(defaultList, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded company list: %v", err))
	}
	return list
}

// Load resolves the company list: file wins over url, and with neither the
// built-in list is returned.
func Load(ctx context.Context, file, url string) ([]models.Company, error) {
	switch {
	case file != "":
		return LoadFile(file)
	case url != "":
		return LoadURL(ctx, url)
	default:
		return Default(), nil
	}
}

// LoadFile reads a JSON or YAML company list; the format follows the file
// extension (.yaml/.yml, otherwise JSON).
func LoadFile(path string) ([]models.Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read company list: %w", err)
	}
	list, err := Parse(data, formatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// LoadURL fetches a JSON company list over HTTP.
func LoadURL(ctx context.Context, url string) ([]models.Company, error) {
	if err := models.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("company list url: %w", err)
	}
	body, _, err := infra.DoGet(ctx, url, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("fetch company list: %w", err)
	}
	defer body.Close()

	var raw []models.Company
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse company list: %w", err)
	}
	return normalize(raw)
}

// Parse decodes and validates a company list.
func Parse(data []byte, format Format) ([]models.Company, error) {
	var raw []models.Company
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return normalize(raw)
}

// normalize trims fields, splits "Name (TICKER)" display names and
// validates every entry.
func normalize(raw []models.Company) ([]models.Company, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("company list is empty")
	}
	out := make([]models.Company, 0, len(raw))
	for i, c := range raw {
		c.Name = strings.TrimSpace(c.Name)
		c.Ticker = utils.NormalizeTicker(c.Ticker)
		c.Exchange = strings.ToUpper(strings.TrimSpace(c.Exchange))
		c.CIK = strings.TrimSpace(c.CIK)
		c.IRURL = strings.TrimSpace(c.IRURL)
		// An explicit ticker wins over one embedded in the name.
		name, embedded := utils.SplitDisplayName(c.Name)
		c.Name = name
		if c.Ticker == "" {
			c.Ticker = embedded
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
