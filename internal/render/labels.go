package render

import (
	"github.com/seenimoa/newsboard/internal/analysis/impact"
	"github.com/seenimoa/newsboard/pkg/models"
)

// labels holds the user-visible strings of one language.
type labels struct {
	badges  map[models.Impact]string
	noNews  string
	summary string // news count, company count, load time
}

var english = labels{
	badges: map[models.Impact]string{
		models.ImpactCritical: impact.Label(models.ImpactCritical),
		models.ImpactPositive: impact.Label(models.ImpactPositive),
		models.ImpactNeutral:  impact.Label(models.ImpactNeutral),
		models.ImpactNone:     impact.Label(models.ImpactNone),
	},
	noNews:  "No news",
	summary: "%d news items for %d companies · updated %s",
}

var german = labels{
	badges: map[models.Impact]string{
		models.ImpactCritical: "Kritische Auswirkung",
		models.ImpactPositive: "Positive Entwicklung",
		models.ImpactNeutral:  "Wichtige Nachricht",
		models.ImpactNone:     "IR-Seite besuchen",
	},
	noNews:  "Keine Neuigkeiten",
	summary: "%d Nachrichten für %d Unternehmen · aktualisiert %s",
}

func labelsFor(lang string) labels {
	if lang == "de" {
		return german
	}
	return english
}

// Badge returns the badge text for an impact in the given language ("en" or "de").
func Badge(lang string, i models.Impact) string {
	if b, ok := labelsFor(lang).badges[i]; ok {
		return b
	}
	return labelsFor(lang).badges[models.ImpactNone]
}
