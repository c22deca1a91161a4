package render

// DashboardTemplate is the HTML page for the dashboard.
// It is embedded as a Go constant, no external file dependencies.
const DashboardTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #f5f7fa;
    --card: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --blue: #2563eb;
    --grey: #9ca3af;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.5;
    padding: 24px;
  }
  header { max-width: 1200px; margin: 0 auto 20px; }
  header h1 { font-size: 1.6rem; color: var(--accent); }
  header p { color: var(--muted); font-size: 0.85rem; }

  #dashboard {
    max-width: 1200px;
    margin: 0 auto;
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(320px, 1fr));
    gap: 16px;
  }
  .company-card {
    background: var(--card);
    border: 1px solid var(--border);
    border-radius: 10px;
    padding: 16px;
  }
  .company-name { font-weight: 700; font-size: 1.05rem; margin-bottom: 10px; }
  .news-title a { color: var(--text); text-decoration: none; font-weight: 500; }
  .news-title a:hover { color: var(--accent); text-decoration: underline; }
  .news-meta { color: var(--muted); font-size: 0.8rem; margin: 6px 0 10px; }
  .impact-badge {
    display: inline-block;
    padding: 2px 10px;
    border-radius: 12px;
    font-size: 0.75rem;
    font-weight: 600;
    color: #fff;
  }
  .impact-critical { background: var(--red); }
  .impact-positive { background: var(--green); }
  .impact-neutral { background: var(--blue); }
  .impact-none { background: var(--grey); }
  .no-news { color: var(--muted); font-style: italic; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.Summary}}</p>
</header>
<div id="dashboard">
{{- range .Cards}}
  <div class="company-card">
    <div class="company-name">{{.Heading}}</div>
    {{- if .HasNews}}
    <div class="news-item">
      <div class="news-title"><a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a></div>
      <div class="news-meta">{{.Meta}}</div>
      <div class="impact-badge impact-{{.Impact}}">{{.Badge}}</div>
    </div>
    {{- else}}
    <div class="no-news">{{.NoNews}}</div>
    {{- end}}
  </div>
{{- end}}
</div>
</body>
</html>
`
