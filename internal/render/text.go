package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seenimoa/newsboard/pkg/models"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}

	impactColors = map[models.Impact]lipgloss.AdaptiveColor{
		models.ImpactCritical: {Light: "#DC2626", Dark: "#F87171"},
		models.ImpactPositive: {Light: "#16A34A", Dark: "#25D366"},
		models.ImpactNeutral:  {Light: "#2563EB", Dark: "#60A5FA"},
		models.ImpactNone:     {Light: "#6B7280", Dark: "#9CA3AF"},
	}
)

// textStyles are bound to the renderer of the output writer, so colours are
// dropped automatically when writing to a file or pipe.
type textStyles struct {
	header  lipgloss.Style
	card    lipgloss.Style
	heading lipgloss.Style
	meta    lipgloss.Style
	noNews  lipgloss.Style
	r       *lipgloss.Renderer
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		header: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(72),
		heading: r.NewStyle().Bold(true),
		meta:    r.NewStyle().Foreground(colorDim),
		noNews:  r.NewStyle().Foreground(colorDim).Italic(true),
		r:       r,
	}
}

func (s textStyles) badge(i models.Impact) lipgloss.Style {
	return s.r.NewStyle().Bold(true).Foreground(impactColors[i])
}

// Text writes the dashboard as terminal cards.
func Text(w io.Writer, d models.Dashboard, opts Options) error {
	opts = opts.withDefaults()
	page := buildPage(d, opts)
	st := newTextStyles(w)

	var sb strings.Builder
	sb.WriteString(st.header.Render(page.Title) + "\n")
	sb.WriteString(st.meta.Render(page.Summary) + "\n\n")

	for _, c := range page.Cards {
		var body []string
		body = append(body, st.heading.Render(c.Heading))
		if c.HasNews {
			body = append(body,
				c.Title,
				st.meta.Render(string(c.URL)),
				st.meta.Render(c.Meta)+"  "+st.badge(c.Impact).Render("["+c.Badge+"]"),
			)
		} else {
			body = append(body, st.noNews.Render(c.NoNews))
		}
		sb.WriteString(st.card.Render(strings.Join(body, "\n")) + "\n")
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}
