package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// NotFoundHandler serves a styled 404 page or JSON error for API routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "endpoint not found"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(errorPageHTML("404", "Page not found", "The page you're looking for doesn't exist or has been moved.")))
}

// InternalErrorHandler serves a styled 500 page or JSON error for API routes.
func InternalErrorHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(errorPageHTML("500", "Server error", "Something went wrong on our end. Please try again in a moment.")))
}

func errorPageHTML(code, title, message string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + title + ` — Stonebranch Capital LLC</title>
<meta name="robots" content="noindex">
<meta name="theme-color" content="#0B1120">
<style>` + SharedCSS() + `
.error-wrap{min-height:60vh;display:flex;align-items:center;justify-content:center;text-align:center;padding:40px 24px}
.error-code{font-size:clamp(4rem,14vw,7rem);font-weight:800;color:var(--accent);line-height:1;margin-bottom:10px;opacity:.9}
.error-wrap h1{font-size:clamp(1.3rem,3vw,1.8rem);margin-bottom:12px}
.error-wrap p{color:var(--ink-70);max-width:460px;margin:0 auto 24px}
</style>
</head>
<body>
` + SiteHeader("") + `
<main class="error-wrap">
<div>
<div class="error-code">` + code + `</div>
<h1>` + title + `</h1>
<p>` + message + `</p>
<a href="/" class="btn btn-primary">Back to home</a>
</div>
</main>
` + SiteFooter() + `
</body>
</html>`
}
