package contact

import (
	"html"
	"strings"
)

// Template helpers are pure: same payload in, same bodies out. The plain-text
// acknowledgment must stay fully informative on its own; the HTML body adds
// markup, never content.

// InternalSubject builds the newline-safe subject of the notification sent to
// the destination inbox.
func InternalSubject(p SubmissionPayload) string {
	subject := "New Stonebranch inquiry — " + p.Name
	if p.Business != "" {
		subject += " (" + p.Business + ")"
	}
	return stripNewlines(subject)
}

// InternalText builds the plain-text body of the internal notification,
// listing the submitted fields in a stable order.
func InternalText(p SubmissionPayload) string {
	lines := []string{
		"Name: " + p.Name,
		"Email: " + p.Email,
	}
	if p.Business != "" {
		lines = append(lines, "Business: "+p.Business)
	}
	if p.Location != "" {
		lines = append(lines, "Location: "+p.Location)
	}
	lines = append(lines, "", "Needs help with:", p.Help)
	if p.Systems != "" {
		lines = append(lines, "", "Current tools: "+p.Systems)
	}
	return strings.Join(lines, "\n")
}

// AcknowledgmentSubject is the subject of the auto-reply to the submitter.
func AcknowledgmentSubject() string {
	return "We received your message — Stonebranch Capital"
}

// AcknowledgmentText builds the plain-text auto-reply body, restating the key
// fields back to the submitter.
func AcknowledgmentText(p SubmissionPayload) string {
	lines := []string{
		"Hi " + p.Name + ",",
		"",
		"Thanks for reaching out to Stonebranch Capital.",
		"We received your message and we'll review it shortly.",
		"",
		"What you sent:",
		"— Business: " + orNA(p.Business),
		"— Location: " + orNA(p.Location),
		"— Help needed: " + p.Help,
	}
	if p.Systems != "" {
		lines = append(lines, "— Current tools: "+p.Systems)
	}
	lines = append(lines,
		"",
		"If you need to add anything, just reply to this email.",
		"",
		"— Stonebranch Capital LLC",
		"contact@stonebranchcapital.com",
	)
	return strings.Join(lines, "\n")
}

// AcknowledgmentHTML builds the markup auto-reply body. All user-supplied text
// is escaped; the substantive content matches AcknowledgmentText exactly.
func AcknowledgmentHTML(p SubmissionPayload) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family:Arial,Helvetica,sans-serif;font-size:15px;line-height:1.6;color:#1c1c1f;max-width:560px">`)
	sb.WriteString(`<p>Hi ` + esc(p.Name) + `,</p>`)
	sb.WriteString(`<p>Thanks for reaching out to Stonebranch Capital.<br>We received your message and we'll review it shortly.</p>`)
	sb.WriteString(`<p><strong>What you sent:</strong></p>`)
	sb.WriteString(`<ul>`)
	sb.WriteString(`<li>Business: ` + esc(orNA(p.Business)) + `</li>`)
	sb.WriteString(`<li>Location: ` + esc(orNA(p.Location)) + `</li>`)
	sb.WriteString(`<li>Help needed: ` + esc(p.Help) + `</li>`)
	if p.Systems != "" {
		sb.WriteString(`<li>Current tools: ` + esc(p.Systems) + `</li>`)
	}
	sb.WriteString(`</ul>`)
	sb.WriteString(`<p>If you need to add anything, just reply to this email.</p>`)
	sb.WriteString(`<p>— Stonebranch Capital LLC<br>contact@stonebranchcapital.com</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

// esc escapes &, <, >, " and ' in user-supplied text before it is
// interpolated into markup.
func esc(s string) string {
	return html.EscapeString(s)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
