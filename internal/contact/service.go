package contact

import (
	"context"
	"net/http"

	"stonebranch/internal/logger"
	"stonebranch/internal/mailer"
	sentryutil "stonebranch/internal/sentry"
	"stonebranch/internal/turnstile"
	"stonebranch/internal/validate"
)

// TokenVerifier checks a human-verification token with the external service.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (turnstile.Result, error)
}

// Outcome is the result of one submission, already mapped to the JSON shape
// and HTTP status returned to the client.
type Outcome struct {
	Status int
	OK     bool
	Error  string
	Codes  []string
}

func ok() Outcome {
	return Outcome{Status: http.StatusOK, OK: true}
}

func rejected(msg string, codes []string) Outcome {
	return Outcome{Status: http.StatusBadRequest, Error: msg, Codes: codes}
}

func misconfigured() Outcome {
	return Outcome{Status: http.StatusInternalServerError, Error: "Server is not configured to send messages."}
}

func failed() Outcome {
	return Outcome{Status: http.StatusInternalServerError, Error: "Unexpected error sending message."}
}

// Service runs the contact-submission pipeline: validate, verify the token,
// then send the internal notification followed by the customer acknowledgment.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	Verifier TokenVerifier // nil when no verification secret is configured
	Mail     mailer.Sender // nil when no email API key is configured

	To      string // destination inbox for internal notifications
	From    string // source address for all outbound mail
	ReplyTo string // optional reply-to override for the acknowledgment
}

// Process handles one submission. Checks run in strict order and fail fast:
// no network call happens before validation completes, and a rejected token
// never reaches the email service.
func (s *Service) Process(ctx context.Context, p SubmissionPayload) Outcome {
	p.Normalize()

	if err := validate.Struct(p); err != nil {
		return rejected("Missing required fields.", nil)
	}

	if p.VerificationToken == "" {
		return rejected("Please complete the spam check.", nil)
	}

	if s.Verifier == nil {
		logger.Error("contact: TURNSTILE_SECRET_KEY not configured", nil)
		return misconfigured()
	}

	result, err := s.Verifier.Verify(ctx, p.VerificationToken)
	if err != nil {
		logger.Error("contact: token verification failed", map[string]interface{}{"err": err.Error()})
		sentryutil.CaptureError(err, map[string]string{"stage": "verify"})
		return failed()
	}
	if !result.Success {
		codes := result.ErrorCodes
		if codes == nil {
			codes = []string{}
		}
		return rejected("Spam check failed. Please try again.", codes)
	}

	if s.Mail == nil || s.To == "" || s.From == "" {
		logger.Error("contact: email delivery not configured", nil)
		return misconfigured()
	}

	// Subjects interpolate user input, so they are newline-stripped above.
	// The internal notice goes out first: even if the acknowledgment fails,
	// the team has been told.
	internal := mailer.Email{
		From:    s.From,
		To:      []string{s.To},
		ReplyTo: p.Email,
		Subject: InternalSubject(p),
		Text:    InternalText(p),
	}
	if err := s.Mail.Send(ctx, internal); err != nil {
		logger.Error("contact: internal notification failed", map[string]interface{}{"err": err.Error()})
		sentryutil.CaptureError(err, map[string]string{"stage": "notify"})
		return failed()
	}

	ackReplyTo := s.To
	if s.ReplyTo != "" {
		ackReplyTo = s.ReplyTo
	}
	ack := mailer.Email{
		From:    s.From,
		To:      []string{p.Email},
		ReplyTo: ackReplyTo,
		Subject: AcknowledgmentSubject(),
		Text:    AcknowledgmentText(p),
		HTML:    AcknowledgmentHTML(p),
	}
	if err := s.Mail.Send(ctx, ack); err != nil {
		// The internal notice already went out; that partial send is accepted
		// and not rolled back.
		logger.Error("contact: acknowledgment failed", map[string]interface{}{"err": err.Error()})
		sentryutil.CaptureError(err, map[string]string{"stage": "acknowledge"})
		return failed()
	}

	logger.Info("contact: submission delivered", map[string]interface{}{"name": p.Name})
	return ok()
}
