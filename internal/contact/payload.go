package contact

import (
	"regexp"
	"strings"
)

// SubmissionPayload is the JSON body of POST /api/contact. Name, email, and
// the help text are required; the rest is optional context from the form.
type SubmissionPayload struct {
	Name              string `json:"name" validate:"required"`
	Business          string `json:"business"`
	Location          string `json:"location"`
	Email             string `json:"email" validate:"required"`
	Help              string `json:"help" validate:"required"`
	Systems           string `json:"systems"`
	VerificationToken string `json:"verificationToken"`
}

// Normalize trims every field. Fields absent from the JSON body decode to ""
// and stay that way, so a missing field and an empty field are the same thing.
func (p *SubmissionPayload) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Business = strings.TrimSpace(p.Business)
	p.Location = strings.TrimSpace(p.Location)
	p.Email = strings.TrimSpace(p.Email)
	p.Help = strings.TrimSpace(p.Help)
	p.Systems = strings.TrimSpace(p.Systems)
	p.VerificationToken = strings.TrimSpace(p.VerificationToken)
}

var newlineRE = regexp.MustCompile(`[\r\n]+`)

// stripNewlines collapses CR/LF runs to a single space. Every value that ends
// up in an email subject goes through this, otherwise a crafted name like
// "Jane\r\nBcc: ..." would smuggle headers into the message.
func stripNewlines(s string) string {
	return strings.TrimSpace(newlineRE.ReplaceAllString(s, " "))
}
