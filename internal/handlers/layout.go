package handlers

import (
	"stonebranch/internal/config"
	"strconv"
	"time"
)

// SharedMetaTags returns common SEO meta tags for a page.
func SharedMetaTags(title, description, canonicalPath string) string {
	base := config.Cfg.BaseURL
	return `<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>` + title + `</title>
<meta name="description" content="` + description + `">
<meta name="robots" content="index, follow">
<meta property="og:type" content="website">
<meta property="og:url" content="` + base + canonicalPath + `">
<meta property="og:title" content="` + title + `">
<meta property="og:description" content="` + description + `">
<meta property="og:site_name" content="Stonebranch Capital LLC">
<meta name="twitter:card" content="summary">
<meta name="twitter:title" content="` + title + `">
<meta name="twitter:description" content="` + description + `">
<link rel="canonical" href="` + base + canonicalPath + `">
<link rel="icon" type="image/png" sizes="32x32" href="/static/favicon-32x32.png">
<meta name="theme-color" content="#0B1120">`
}

// SharedCSS returns CSS for the shared layout (header, nav, footer, cards,
// sections, reveal animation, form fields).
func SharedCSS() string {
	return `
:root{--bg:#0B1120;--bg-raise:#111A2E;--ink:#E6EAF2;--ink-70:#A8B0C2;--ink-45:#6B7487;--line:rgba(230,234,242,0.12);--accent:#7C9CF5;--accent-soft:rgba(124,156,245,0.14);--ok:#86EFAC;--err:#FCA5A5;--radius:8px;--radius-lg:14px;--max-w:1080px;--gutter:24px}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:'Inter',-apple-system,'Segoe UI',sans-serif;background:var(--bg);color:var(--ink);min-height:100vh;font-size:15.5px;line-height:1.65;-webkit-font-smoothing:antialiased}
h1,h2,h3{font-weight:650;letter-spacing:-0.015em;line-height:1.2}
a{color:var(--accent);text-decoration:none}a:hover{text-decoration:underline}
.container{max-width:var(--max-w);margin:0 auto;padding:0 var(--gutter)}
.site-header{border-bottom:1px solid var(--line);position:sticky;top:0;z-index:100;background:rgba(11,17,32,0.88);backdrop-filter:blur(10px)}
.site-header-inner{display:flex;align-items:center;justify-content:space-between;height:64px}
.logo{display:flex;align-items:center;gap:10px;color:var(--ink)}
.logo:hover{text-decoration:none}
.logo-mark{width:30px;height:30px;background:var(--accent);border-radius:7px;display:flex;align-items:center;justify-content:center;color:#0B1120;font-weight:800;font-size:.9rem}
.logo-text-main{font-weight:700;font-size:.95rem}
.logo-text-sub{font-size:.7rem;color:var(--ink-45)}
.nav-links{display:flex;align-items:center;gap:20px}
.nav-links a{font-size:.86rem;color:var(--ink-70)}
.nav-links a:hover{color:var(--ink);text-decoration:none}
.nav-links a.nav-active{color:var(--ink);font-weight:600}
.btn{display:inline-block;padding:10px 20px;border-radius:var(--radius);font-weight:600;font-size:.9rem;cursor:pointer;border:1px solid transparent}
.btn:hover{text-decoration:none}
.btn-primary{background:var(--accent);color:#0B1120}
.btn-primary:hover{filter:brightness(1.08)}
.btn-primary:disabled{opacity:.7;cursor:default}
.btn-outline{border-color:var(--line);color:var(--ink)}
.btn-outline:hover{border-color:var(--accent)}
.section{padding:56px 0}
.section-kicker{font-size:.74rem;text-transform:uppercase;letter-spacing:.12em;color:var(--accent);margin-bottom:10px;font-weight:600}
.section-title{font-size:clamp(1.5rem,3.4vw,2.1rem);margin-bottom:14px}
.section-subtitle{color:var(--ink-70);max-width:640px}
.section-band{background:var(--bg-raise)}
.hero{padding:80px 0 56px}
.hero-kicker{font-size:.78rem;text-transform:uppercase;letter-spacing:.14em;color:var(--accent);font-weight:600;margin-bottom:14px}
.hero-title{font-size:clamp(1.9rem,4.5vw,2.9rem);margin-bottom:18px;max-width:760px}
.hero-title span{color:var(--accent)}
.hero-subtitle{color:var(--ink-70);max-width:620px;margin-bottom:26px;font-size:1.02rem}
.hero-cta-row{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:22px}
.hero-footnote{font-size:.8rem;color:var(--ink-45);max-width:560px}
.card-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(280px,1fr));gap:20px;margin-top:32px}
.card{background:var(--bg-raise);border:1px solid var(--line);border-radius:var(--radius-lg);padding:26px 24px}
.card-tag{display:inline-block;font-size:.7rem;text-transform:uppercase;letter-spacing:.1em;font-weight:700;color:var(--accent);background:var(--accent-soft);border-radius:99px;padding:3px 10px;margin-bottom:14px}
.card-title{font-size:1.1rem;margin-bottom:10px}
.card-body{color:var(--ink-70);font-size:.92rem;margin-bottom:12px}
.card-list{list-style:none;margin:0 0 14px}
.card-list li{position:relative;padding-left:18px;color:var(--ink-70);font-size:.88rem;margin-bottom:6px}
.card-list li:before{content:"—";position:absolute;left:0;color:var(--accent)}
.card-link{font-size:.88rem;font-weight:600}
.site-footer{border-top:1px solid var(--line);padding:28px 0;margin-top:40px}
.footer-inner{display:flex;align-items:center;justify-content:space-between;gap:16px;flex-wrap:wrap;font-size:.82rem;color:var(--ink-45)}
.footer-links{display:flex;gap:16px;flex-wrap:wrap}
.footer-links a{color:var(--ink-70)}
.form-row{display:grid;grid-template-columns:1fr 1fr;gap:16px}
.form-field{margin-bottom:16px}
.form-field label{display:block;font-size:.82rem;font-weight:600;margin-bottom:6px;color:var(--ink-70)}
.form-field input,.form-field textarea{width:100%;padding:11px 14px;border:1px solid var(--line);border-radius:var(--radius);background:var(--bg);color:var(--ink);font-family:inherit;font-size:.92rem}
.form-field textarea{resize:vertical}
.form-field input:focus,.form-field textarea:focus{outline:none;border-color:var(--accent)}
.form-actions{display:flex;align-items:center;gap:14px;flex-wrap:wrap}
.form-note{font-size:.82rem;color:var(--ink-45)}
.form-note.is-error{color:var(--err)}
.form-note.is-success{color:var(--ok)}
.reveal{opacity:0;transform:translateY(14px);transition:opacity .5s ease,transform .5s ease}
.reveal.visible{opacity:1;transform:none}
html:not(.js) .reveal{opacity:1;transform:none}
@media(max-width:720px){.nav-links{gap:12px}.nav-links a{font-size:.78rem}.logo-text-sub{display:none}.form-row{grid-template-columns:1fr}.hero{padding:56px 0 40px}}
`
}

// SiteHeader returns the shared header with the active nav item highlighted.
func SiteHeader(activePath string) string {
	nav := func(href, label string) string {
		cls := ""
		if href == activePath {
			cls = ` class="nav-active"`
		}
		return `<a href="` + href + `"` + cls + `>` + label + `</a>`
	}
	contactCls := `btn btn-outline`
	if activePath == "/contact" {
		contactCls += ` nav-active`
	}
	return `<header class="site-header"><div class="container"><div class="site-header-inner">
<a href="/" class="logo"><div class="logo-mark">S</div><div><div class="logo-text-main">Stonebranch Capital LLC</div><div class="logo-text-sub">Parent company &amp; ventures</div></div></a>
<nav class="nav-links" aria-label="Primary">` +
		nav("/", "Home") +
		nav("/about", "About") +
		nav("/ventures", "Business Ventures") +
		nav("/automation", "Business Assistance") +
		nav("/insights", "Insights") +
		`<a href="/contact" class="` + contactCls + `">Contact</a>` +
		`</nav></div></div></header>`
}

// SiteFooter returns the shared footer.
func SiteFooter() string {
	year := strconv.Itoa(time.Now().Year())
	return `<footer class="site-footer"><div class="container"><div class="footer-inner">
<div>&copy; ` + year + ` Stonebranch Capital LLC. All rights reserved.</div>
<div class="footer-links">
<a href="/">Home</a>
<a href="/about">About</a>
<a href="/ventures">Ventures</a>
<a href="/automation">Business Assistance</a>
<a href="/insights">Insights</a>
<a href="/contact">Contact</a>
</div>
</div></div></footer>`
}

// SharedScripts returns the scroll-reveal initializer shared by every page.
// Elements marked .reveal animate in once when they enter the viewport; with
// no IntersectionObserver support everything is shown immediately.
func SharedScripts() string {
	return `<script>
(function(){
document.documentElement.classList.add('js');
var reveals=Array.prototype.slice.call(document.querySelectorAll('.reveal'));
if(!reveals.length)return;
if(!('IntersectionObserver' in window)){reveals.forEach(function(el){el.classList.add('visible')});return}
var observer=new IntersectionObserver(function(entries){
entries.forEach(function(entry){
if(entry.isIntersecting){entry.target.classList.add('visible');observer.unobserve(entry.target)}
})
},{threshold:0.15});
reveals.forEach(function(el){observer.observe(el)});
})();
</script>`
}
