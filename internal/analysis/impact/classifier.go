package impact

import (
	"regexp"
	"strings"

	"github.com/seenimoa/newsboard/pkg/models"
)

// ------------------------------------------------------------------
// Keyword-based impact classifier (offline, deterministic).
// Rules are tested in order; the first list with a matching term wins.
// Matching is plain substring, so "miss" also hits "missing".
// ------------------------------------------------------------------

// Rule maps a keyword list to the label it produces.
type Rule struct {
	Impact   models.Impact
	Keywords []string
	re       *regexp.Regexp
}

// Matches reports whether any keyword occurs in the lower-cased text.
func (r Rule) Matches(lower string) bool {
	return r.re.MatchString(lower)
}

var criticalWords = []string{
	"bankruptcy", "lawsuit", "fraud", "investigation", "scandal", "decline",
	"loss", "crash", "plunge", "suspend", "delay", "warning", "miss",
	"downgrade", "concern",
	// German
	"insolvenz", "klage", "betrug", "ermittlung", "skandal", "rückgang",
	"verlust", "absturz", "einbruch", "warnung", "herabstufung",
}

var positiveWords = []string{
	"profit", "growth", "beat", "surge", "record", "success", "expansion",
	"partnership", "innovation", "breakthrough", "upgrade", "raise", "exceed",
	"strong", "gain",
	// German
	"gewinn", "wachstum", "rekord", "erfolg", "partnerschaft", "übertroffen",
	"anstieg", "heraufstufung",
}

var neutralWords = []string{
	"filing", "report", "announcement", "presentation", "merger", "acquisition",
	"conference", "meeting", "dividend", "earnings", "financial", "quarter",
	// German
	"bericht", "mitteilung", "präsentation", "fusion", "übernahme",
	"konferenz", "hauptversammlung", "dividende", "quartal", "finanz",
}

var rules = []Rule{
	newRule(models.ImpactCritical, criticalWords),
	newRule(models.ImpactPositive, positiveWords),
	newRule(models.ImpactNeutral, neutralWords),
}

func newRule(impact models.Impact, words []string) Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return Rule{
		Impact:   impact,
		Keywords: words,
		re:       regexp.MustCompile(strings.Join(quoted, "|")),
	}
}

// Rules returns the ordered rule list (critical, positive, neutral).
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify labels a headline and its optional description.
func Classify(title, description string) models.Impact {
	text := strings.ToLower(title + " " + description)
	for _, r := range rules {
		if r.Matches(text) {
			return r.Impact
		}
	}
	return models.ImpactNone
}

// Label returns the badge text shown next to an item with the given impact.
func Label(i models.Impact) string {
	switch i {
	case models.ImpactCritical:
		return "Critical impact"
	case models.ImpactPositive:
		return "Positive development"
	case models.ImpactNeutral:
		return "Important news"
	default:
		return "Visit IR page"
	}
}
