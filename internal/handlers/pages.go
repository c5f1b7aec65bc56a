package handlers

import (
	"net/http"
	"strings"
)

// writePage assembles the shared document shell around a page body and writes
// it with the HTML content type.
func writePage(w http.ResponseWriter, title, description, path, extraHead, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
` + SharedMetaTags(title, description, path) + `
` + extraHead + `
<style>` + SharedCSS() + `</style>
</head>
<body>
` + SiteHeader(path) + `
<main>
` + body + `
</main>
` + SiteFooter() + `
` + SharedScripts() + `
</body>
</html>`)

	w.Write([]byte(sb.String()))
}

// HomeHandler serves GET /.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFoundHandler(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := `
<section class="hero reveal">
<div class="container">
<div class="hero-kicker">Stonebranch Capital LLC</div>
<h1 class="hero-title">A home for the ideas, brands, and ventures we're building under <span>Stonebranch Capital</span>.</h1>
<p class="hero-subtitle">Stonebranch Capital serves as the parent company behind our service-based businesses and future projects — including Southern Elite Bin Cleaning and AI-powered automation services for local businesses.</p>
<div class="hero-cta-row">
<a href="/automation" class="btn btn-primary">Explore business assistance</a>
<a href="/ventures" class="btn btn-outline">View active ventures</a>
</div>
<div class="hero-footnote">Built in South Carolina. Focused on practical systems, clean operations, and long-term stability — only taking on work we can stand behind. Privacy-first by default.</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="section-kicker">What lives under Stonebranch</div>
<h2 class="section-title">A small portfolio, built intentionally.</h2>
<p class="section-subtitle">Stonebranch is designed to hold multiple ventures — from home services to software and automation — under one umbrella so we can grow without scattering our identity.</p>
<div class="card-grid">
<article class="card">
<div class="card-tag">Active venture</div>
<h3 class="card-title">Southern Elite Bin Cleaning</h3>
<p class="card-body">Residential trash bin cleaning &amp; exterior wash services built around routes, reliable schedules, and a polished customer experience.</p>
<ul class="card-list">
<li>Recurring bin cleaning plans</li>
<li>Driveway &amp; sidewalk add-ons</li>
<li>Modern booking and reminders</li>
</ul>
<a href="/ventures" class="card-link">View in Business Ventures &rarr;</a>
</article>
<article class="card">
<div class="card-tag">New &amp; growing</div>
<h3 class="card-title">AI Automation for Local Business</h3>
<p class="card-body">Done-for-you automations that improve speed, consistency, and follow-up across lead intake, scheduling, and customer communication — when there's a clear fit.</p>
<ul class="card-list">
<li>24/7 lead response &amp; intake</li>
<li>Scheduling &amp; reminder flows</li>
<li>Review &amp; reputation systems</li>
</ul>
<a href="/automation" class="card-link">Explore automation services &rarr;</a>
</article>
<article class="card">
<div class="card-tag">On the horizon</div>
<h3 class="card-title">Future projects &amp; software</h3>
<p class="card-body">Stonebranch gives us a stable home base for new products, software tools, and service lines as they become real.</p>
<ul class="card-list">
<li>Internal tools that turn into products</li>
<li>Spin-off brands under one umbrella</li>
<li>Room to grow without re-starting</li>
</ul>
<a href="/about" class="card-link">Learn more about Stonebranch &rarr;</a>
</article>
</div>
</div>
</section>`

	writePage(w,
		"Stonebranch Capital LLC",
		"Stonebranch Capital LLC — parent company & ventures. Systems, operations, and automation for service businesses.",
		"/", "", body)
}

// AboutHandler serves GET /about.
func AboutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">About Stonebranch</div>
<h1 class="section-title">Built to create, support, and scale ventures the right way.</h1>
<p class="section-subtitle">Stonebranch Capital LLC is a small, intentional parent company based in South Carolina. We exist to give our own brands — and select partner businesses — a stable operational foundation, modern customer experience, and systems that support sustainable growth.</p>
</div>
</section>

<section class="section section-band reveal">
<div class="container">
<div class="card-grid">
<article class="card">
<div class="card-tag">Our mission</div>
<h2 class="card-title">Build reliable, modern business systems.</h2>
<p class="card-body">Our mission is to build reliable, efficient, modern operating systems for small businesses — whether they're ventures we own or companies we support. We focus on clean operations, clear communication, and customer experiences that feel professional, respectful, and easy.</p>
<p class="card-body">Every venture under Stonebranch should feel organized, predictable, and trustworthy — from the first inquiry to the final invoice.</p>
</article>
<article class="card">
<div class="card-tag">Our vision</div>
<h2 class="card-title">A portfolio that grows together, not apart.</h2>
<p class="card-body">Our vision is to create a portfolio of service businesses and digital tools that share processes, systems, and standards. New projects shouldn't have to start from zero; they should inherit what works and improve on it.</p>
<p class="card-body">Stonebranch is especially committed to supporting veteran-owned and early-stage businesses where access to capital, time, and operational support is limited. For select partnerships, we use flexible models so we can align with long-term success instead of loading founders with up-front cost.</p>
<p class="card-body"><strong>Important:</strong> Stonebranch Capital LLC is <em>not</em> a lender or funding company. We do not offer loans, lines of credit, or financial products.</p>
</article>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="section-kicker">What we do</div>
<h2 class="section-title">A focused parent company, not a collection of random ideas.</h2>
<p class="section-subtitle">Stonebranch is designed to hold a small number of ventures that share a common thread: practical services, strong systems, and a modern, respectful experience for customers and teams.</p>
<div class="card-grid">
<article class="card">
<div class="card-tag">01</div>
<h3 class="card-title">Service-based ventures</h3>
<p class="card-body">We build and operate service businesses like Southern Elite Bin Cleaning with an emphasis on recurring revenue, route efficiency, and a clean brand presence.</p>
<ul class="card-list">
<li>Residential &amp; local services</li>
<li>Route-based operations and scheduling</li>
<li>Customer portals, reminders, and follow-up</li>
</ul>
</article>
<article class="card">
<div class="card-tag">02</div>
<h3 class="card-title">Automation &amp; business systems</h3>
<p class="card-body">We help local businesses modernize how they handle lead intake, scheduling, and customer communication. That includes AI-powered intake, follow-up, and internal workflows.</p>
<ul class="card-list">
<li>Lead capture &amp; response automation</li>
<li>Scheduling &amp; reminder flows</li>
<li>Review, reputation, and retention systems</li>
</ul>
</article>
<article class="card">
<div class="card-tag">03</div>
<h3 class="card-title">Tools, software &amp; future ventures</h3>
<p class="card-body">Some of the systems we build for ourselves become templates, internal tools, or candidates for stand-alone software products in the future.</p>
<ul class="card-list">
<li>Internal tools that may evolve into products</li>
<li>Shared processes across multiple ventures</li>
<li>Room to launch new ideas under one umbrella</li>
</ul>
</article>
</div>
</div>
</section>`

	writePage(w,
		"About — Stonebranch Capital LLC",
		"Stonebranch Capital LLC is a small, intentional parent company based in South Carolina, building and supporting service ventures with strong systems.",
		"/about", "", body)
}

// VenturesHandler serves GET /ventures.
func VenturesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">Business ventures</div>
<h1 class="section-title">A small portfolio of ventures built slowly, on purpose.</h1>
<p class="section-subtitle">Stonebranch Capital develops a focused set of ventures and operating divisions. Some are live and growing, others are in development or early exploration — but all share the same foundation: systems, clean operations, and long-term thinking.</p>
</div>
</section>

<section class="section section-band reveal">
<div class="container">
<div class="card-grid">
<article class="card">
<div class="card-tag">Division I</div>
<h2 class="card-title">Residential &amp; local services</h2>
<p class="card-body">Status: Active &amp; growing. Route-based, residential services built around recurring revenue and a clean, modern customer experience.</p>
<ul class="card-list">
<li><strong>Southern Elite Bin Cleaning</strong> — residential trash bin cleaning &amp; exterior wash services with a focus on routes, predictable schedules, and polished branding.</li>
<li><strong>Southern Elite Property Inspections</strong> — a developing concept for inspections and reporting designed to be clear and easy for buyers and owners to act on.</li>
<li>Shared systems across ventures for scheduling, reminders, and customer communication.</li>
</ul>
<a href="/about" class="card-link">How we think about service ventures &rarr;</a>
</article>
<article class="card">
<div class="card-tag">Division II</div>
<h2 class="card-title">Automation &amp; business systems</h2>
<p class="card-body">Status: Active. Building and implementing the systems that help local businesses capture more leads, book more work, and reduce repetitive admin tasks.</p>
<ul class="card-list">
<li><strong>AI automation for local business</strong> — done-for-you automations for lead intake, follow-up, scheduling, reminders, and review building.</li>
<li>Infrastructure used within Stonebranch-owned ventures or as a service for outside businesses.</li>
<li>Emphasis on clear reporting, human oversight, and systems owners actually understand and can trust.</li>
</ul>
<a href="/automation" class="card-link">Explore automation services &rarr;</a>
</article>
<article class="card">
<div class="card-tag">Division III</div>
<h2 class="card-title">Internal tools &amp; future initiatives</h2>
<p class="card-body">Status: Exploration &amp; early development. Some of the systems we build for our own use become internal tools — and sometimes those tools evolve into stand-alone offerings.</p>
<ul class="card-list">
<li>Frameworks for operations, routing, scheduling, and customer communication across multiple brands.</li>
<li>Internal dashboards or utilities that may one day be packaged as software or productized services.</li>
<li>Space for future projects that fit our core focus: systems, service, and sustainable growth.</li>
</ul>
<a href="/about" class="card-link">Learn more about our approach &rarr;</a>
</article>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="card">
<div class="card-tag">How it all fits together</div>
<h2 class="card-title">One foundation, multiple directions.</h2>
<p class="card-body">Stonebranch isn't trying to build as many brands as possible. Instead, we're building a small ecosystem where ventures can share systems, standards, and lessons learned. A scheduling flow refined in one business can later support another. An automation built for internal use can become part of an automation service offering.</p>
<p class="card-body">This approach keeps us disciplined: new ideas are filtered through what we already know works, and every venture should feel like part of a bigger picture — not a one-off experiment.</p>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="card">
<div class="section-kicker">Interested in a conversation?</div>
<h2 class="card-title">Exploring partnerships or support.</h2>
<p class="card-body">If you're a small or veteran-owned business interested in systems, automation, or long-term support — not just one-off projects — you're welcome to reach out and see if there's a fit.</p>
<p class="card-body">Use the <a href="/contact">contact form</a> or email <a href="mailto:contact@stonebranchcapital.com"><strong>contact@stonebranchcapital.com</strong></a> with a short overview of your business, what stage you're in, and what you're looking for.</p>
</div>
</div>
</section>`

	writePage(w,
		"Business Ventures — Stonebranch Capital LLC",
		"The ventures and operating divisions of Stonebranch Capital: residential services, automation and business systems, internal tools and future initiatives.",
		"/ventures", "", body)
}

// AutomationHandler serves GET /automation.
func AutomationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">Business assistance &amp; automation</div>
<h1 class="section-title">Practical automation for local service businesses.</h1>
<p class="section-subtitle">Done-for-you systems that answer leads fast, keep schedules full, and follow up without anyone having to remember. No platforms to learn, no dashboards to babysit — we build it around the tools you already use.</p>
<div class="hero-cta-row" style="margin-top:22px">
<a href="/contact" class="btn btn-primary">Start a conversation</a>
<a href="/automation-examples" class="btn btn-outline">See worked examples</a>
<a href="/automation/overview.pdf" class="btn btn-outline">Download overview (PDF)</a>
</div>
</div>
</section>

<section class="section section-band reveal">
<div class="container">
<div class="section-kicker">Who this is for</div>
<h2 class="section-title">Owners who want systems, not more chaos.</h2>
<div class="card-grid">
<article class="card">
<h3 class="card-title">Routes, visits, and repeat customers</h3>
<p class="card-body">Bin cleaning, pressure washing, lawn care, pest control — businesses built on recurring visits where a missed reminder is a lost customer.</p>
</article>
<article class="card">
<h3 class="card-title">Too many tasks, not enough hours</h3>
<p class="card-body">Owners answering the same questions, chasing the same follow-ups, and re-typing the same information between tools every single week.</p>
</article>
<article class="card">
<h3 class="card-title">Getting off the ground the right way</h3>
<p class="card-body">New businesses that want clean intake, scheduling, and follow-up from day one instead of untangling spreadsheets later.</p>
</article>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="section-kicker">What we automate</div>
<h2 class="section-title">The work between the work.</h2>
<div class="card-grid">
<article class="card">
<h3 class="card-title">24/7 lead capture &amp; response</h3>
<p class="card-body">Every inquiry gets a fast, professional reply — nights and weekends included — so leads stop going cold before you see them.</p>
</article>
<article class="card">
<h3 class="card-title">Bookings that don't fall through the cracks</h3>
<p class="card-body">Scheduling flows with confirmations and reminders that keep the calendar honest and cut no-shows.</p>
</article>
<article class="card">
<h3 class="card-title">Stay in touch after the job is done</h3>
<p class="card-body">Review requests, seasonal check-ins, and win-back messages that run themselves and keep customers coming back.</p>
</article>
<article class="card">
<h3 class="card-title">Less &quot;Did someone handle that?&quot;</h3>
<p class="card-body">Internal handoffs and task routing so nothing depends on one person remembering everything.</p>
</article>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="section-kicker">Next step</div>
<h2 class="section-title">See if this is a fit for your business.</h2>
<p class="section-subtitle">Tell us what's eating your time and what you're running today. If there's a clear fit, we'll map out one or two automations worth doing first — no pressure either way.</p>
<div class="hero-cta-row" style="margin-top:22px"><a href="/contact" class="btn btn-primary">Contact Stonebranch</a></div>
</div>
</section>`

	writePage(w,
		"Business Assistance — Stonebranch Capital LLC",
		"AI-powered automation services for local businesses: lead intake, scheduling, reminders, reviews, and internal workflows.",
		"/automation", "", body)
}

// AutomationExamplesHandler serves GET /automation-examples.
func AutomationExamplesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body := `
<section class="section reveal">
<div class="container">
<div class="section-kicker">Automation examples</div>
<h1 class="section-title">What these systems look like in practice.</h1>
<p class="section-subtitle">Three common scenarios for a local service business, walked through step by step. Each one is built from pieces we run ourselves.</p>
</div>
</section>

<section class="section section-band reveal">
<div class="container">
<div class="section-kicker">Choose a scenario</div>
<h2 class="section-title">Pick what matters most right now.</h2>
<div class="card-grid">
<article class="card">
<div class="card-tag">Scenario 1</div>
<h3 class="card-title">The midnight lead</h3>
<p class="card-body">A homeowner fills out your quote form at 11:40pm.</p>
<ul class="card-list">
<li>Instant reply confirms the request and asks the two questions you always ask</li>
<li>Lead is logged with source and service area</li>
<li>You wake up to a qualified lead and a proposed time slot — not a cold form entry</li>
</ul>
</article>
<article class="card">
<div class="card-tag">Scenario 2</div>
<h3 class="card-title">The forgotten follow-up</h3>
<p class="card-body">A quote went out five days ago and nobody has touched it since.</p>
<ul class="card-list">
<li>Polite nudge goes out automatically on day three and day seven</li>
<li>Replies route straight to your inbox with the full history attached</li>
<li>Quotes stop dying of silence</li>
</ul>
</article>
<article class="card">
<div class="card-tag">Scenario 3</div>
<h3 class="card-title">The five-star window</h3>
<p class="card-body">The job is done and the customer is happiest right now.</p>
<ul class="card-list">
<li>Review request lands a few hours after completion, while the work is fresh</li>
<li>Unhappy replies come to you privately first</li>
<li>Your public rating reflects your actual work</li>
</ul>
</article>
</div>
</div>
</section>

<section class="section reveal">
<div class="container">
<div class="section-kicker">Next step</div>
<h2 class="section-title">Want to see this in your business?</h2>
<p class="section-subtitle">Bring us one broken process — intake, follow-up, or reviews — and we'll show you what the automated version looks like before you commit to anything.</p>
<div class="hero-cta-row" style="margin-top:22px"><a href="/contact" class="btn btn-primary">Start a conversation</a></div>
</div>
</section>`

	writePage(w,
		"Automation Examples — Stonebranch Capital LLC",
		"Worked examples of lead intake, follow-up, and review automation for local service businesses.",
		"/automation-examples", "", body)
}
