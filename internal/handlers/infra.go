package handlers

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"stonebranch/internal/config"
	"stonebranch/internal/insights"
)

var startTime = time.Now()

// HealthHandler returns basic process health info.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(startTime)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(uptime.Seconds()),
		"uptime_human":   formatDuration(uptime),
		"insights":       len(insights.GetAll()),
	})
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

type siteURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	XMLNS   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	baseURL := config.Cfg.BaseURL
	today := time.Now().Format("2006-01-02")

	urls := []siteURL{
		{Loc: baseURL + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: baseURL + "/about", ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: baseURL + "/ventures", ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: baseURL + "/automation", ChangeFreq: "monthly", Priority: "0.8"},
		{Loc: baseURL + "/automation-examples", ChangeFreq: "monthly", Priority: "0.6"},
		{Loc: baseURL + "/insights", ChangeFreq: "weekly", Priority: "0.6"},
		{Loc: baseURL + "/contact", ChangeFreq: "yearly", Priority: "0.5"},
	}

	for _, a := range insights.GetAll() {
		urls = append(urls, siteURL{
			Loc:        baseURL + "/insights/" + a.Slug,
			LastMod:    a.Date.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	sitemap := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	enc.Encode(sitemap)
}

// RobotsTxtHandler serves robots.txt with the sitemap link.
func RobotsTxtHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write([]byte("User-agent: *\nAllow: /\nDisallow: /api/\nDisallow: /static/\nDisallow: /.env\nDisallow: /.git\n\nSitemap: " + config.Cfg.BaseURL + "/sitemap.xml\n"))
}
