package provider

import (
	"github.com/seenimoa/newsboard/pkg/models"
)

// BaseSource provides common functionality for source implementations.
// Embed this in concrete sources to get Info, Init, and credential storage.
type BaseSource struct {
	info        SourceInfo
	credentials map[string]string
}

// NewBaseSource creates a base source.
func NewBaseSource(name, label, description, website string, requires []Field, creds []SourceCredential) BaseSource {
	return BaseSource{
		info: SourceInfo{
			Name:        name,
			Label:       label,
			Description: description,
			Website:     website,
			Credentials: creds,
			Requires:    requires,
		},
		credentials: make(map[string]string),
	}
}

func (b *BaseSource) Info() SourceInfo { return b.info }

func (b *BaseSource) Init(credentials map[string]string) error {
	for _, cred := range b.info.Credentials {
		if cred.Required {
			val, ok := credentials[cred.Name]
			if !ok || val == "" {
				return &ErrInvalidCredentials{
					Source: b.info.Name,
					Detail: "missing required credential: " + cred.Name,
				}
			}
		}
	}
	b.credentials = make(map[string]string, len(credentials))
	for k, v := range credentials {
		b.credentials[k] = v
	}
	return nil
}

// Credential returns a stored credential value.
func (b *BaseSource) Credential(name string) string {
	return b.credentials[name]
}

// Check verifies the company carries every field this source requires.
func (b *BaseSource) Check(c models.Company) error {
	return CheckFields(b.info.Name, c, b.info.Requires)
}

// Item builds an article item labelled with the source's default label when
// sourceName is empty.
func (b *BaseSource) Item(title, url, sourceName string) *models.NewsItem {
	if sourceName == "" {
		sourceName = b.info.Label
	}
	return &models.NewsItem{
		Title:  title,
		URL:    url,
		Source: sourceName,
		Kind:   models.KindArticle,
	}
}
