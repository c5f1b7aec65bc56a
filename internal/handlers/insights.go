package handlers

import (
	"net/http"
	"strings"
	"time"

	"stonebranch/internal/insights"
)

func formatArticleDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// InsightsListHandler serves GET /insights.
func InsightsListHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cards strings.Builder
	for _, a := range insights.GetAll() {
		cards.WriteString(`<article class="card">`)
		if a.Topic != "" {
			cards.WriteString(`<div class="card-tag">` + a.Topic + `</div>`)
		}
		cards.WriteString(`<h2 class="card-title"><a href="/insights/` + a.Slug + `">` + a.Title + `</a></h2>`)
		cards.WriteString(`<p class="card-body">` + a.Description + `</p>`)
		cards.WriteString(`<p class="form-note">` + formatArticleDate(a.Date) + `</p>`)
		cards.WriteString(`<a href="/insights/` + a.Slug + `" class="card-link">Read more &rarr;</a>`)
		cards.WriteString(`</article>`)
	}

	grid := `<div class="card-grid">` + cards.String() + `</div>`
	if cards.Len() == 0 {
		grid = `<p class="section-subtitle">Nothing published yet — check back soon.</p>`
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">Insights</div>
<h1 class="section-title">Notes on systems, operations, and automation.</h1>
<p class="section-subtitle">Short, practical write-ups from running our own ventures — what we automate, what we keep manual, and why.</p>
` + grid + `
</div>
</section>`

	writePage(w,
		"Insights — Stonebranch Capital LLC",
		"Practical notes on systems, operations, and automation for local service businesses.",
		"/insights", "", body)
}

// InsightsArticleHandler serves GET /insights/{slug}.
func InsightsArticleHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/insights/")
	slug = strings.Trim(slug, "/")
	if slug == "" {
		InsightsListHandler(w, r)
		return
	}

	a := insights.GetBySlug(slug)
	if a == nil {
		NotFoundHandler(w, r)
		return
	}

	body := `
<section class="section reveal">
<div class="container" style="max-width:760px">
<div class="section-kicker">` + a.Topic + `</div>
<h1 class="section-title">` + a.Title + `</h1>
<p class="form-note">` + formatArticleDate(a.Date) + `</p>
<div class="article-body">` + a.HTMLContent + `</div>
<p style="margin-top:32px"><a href="/insights" class="card-link">&larr; All insights</a></p>
</div>
</section>`

	extraCSS := `<style>
.article-body{margin-top:28px;color:var(--ink-70)}
.article-body h2,.article-body h3{color:var(--ink);margin:28px 0 10px}
.article-body p{margin-bottom:14px}
.article-body ul,.article-body ol{margin:0 0 14px 22px}
.article-body li{margin-bottom:6px}
.article-body strong{color:var(--ink)}
</style>`

	writePage(w,
		a.Title+" — Stonebranch Capital LLC",
		a.Description,
		"/insights/"+a.Slug, extraCSS, body)
}
