package contact

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"stonebranch/internal/mailer"
	"stonebranch/internal/turnstile"
)

type fakeVerifier struct {
	result turnstile.Result
	err    error
	calls  int
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (turnstile.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeSender struct {
	sent    []mailer.Email
	failAt  int // 1-based index of the send that fails; 0 means never
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, e mailer.Email) error {
	f.sent = append(f.sent, e)
	if f.failAt > 0 && len(f.sent) == f.failAt {
		if f.sendErr != nil {
			return f.sendErr
		}
		return errors.New("send failed")
	}
	return nil
}

func validPayload() SubmissionPayload {
	return SubmissionPayload{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Help:              "need scheduling help",
		VerificationToken: "tok123",
	}
}

func newService(v *fakeVerifier, m *fakeSender) *Service {
	return &Service{
		Verifier: v,
		Mail:     m,
		To:       "contact@stonebranchcapital.com",
		From:     "Stonebranch Capital <no-reply@stonebranchcapital.com>",
	}
}

func TestProcess_MissingRequiredFields(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)

	p := validPayload()
	p.Help = ""

	out := svc.Process(context.Background(), p)

	if out.Status != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", out.Status)
	}
	if out.Error != "Missing required fields." {
		t.Errorf("Unexpected error message: %q", out.Error)
	}
	if v.calls != 0 {
		t.Errorf("Verifier should not be called, got %d calls", v.calls)
	}
	if len(m.sent) != 0 {
		t.Errorf("No email should be sent, got %d", len(m.sent))
	}
}

func TestProcess_WhitespaceOnlyFieldIsMissing(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)

	p := validPayload()
	p.Name = "   "

	out := svc.Process(context.Background(), p)

	if out.Status != http.StatusBadRequest || out.Error != "Missing required fields." {
		t.Fatalf("Expected missing-fields rejection, got %d %q", out.Status, out.Error)
	}
}

func TestProcess_MissingToken(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)

	p := validPayload()
	p.VerificationToken = ""

	out := svc.Process(context.Background(), p)

	if out.Status != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", out.Status)
	}
	if out.Error != "Please complete the spam check." {
		t.Errorf("Unexpected error message: %q", out.Error)
	}
	if v.calls != 0 {
		t.Errorf("Verifier should not be called for an empty token, got %d calls", v.calls)
	}
}

func TestProcess_VerifierNotConfigured(t *testing.T) {
	m := &fakeSender{}
	svc := newService(nil, m)
	svc.Verifier = nil

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", out.Status)
	}
	if strings.Contains(out.Error, "TURNSTILE") {
		t.Errorf("Config detail leaked to caller: %q", out.Error)
	}
	if len(m.sent) != 0 {
		t.Errorf("No email should be sent, got %d", len(m.sent))
	}
}

func TestProcess_VerificationRejected(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: false, ErrorCodes: []string{"invalid-input-response"}}}
	m := &fakeSender{}
	svc := newService(v, m)

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", out.Status)
	}
	if out.Error != "Spam check failed. Please try again." {
		t.Errorf("Unexpected error message: %q", out.Error)
	}
	if len(out.Codes) != 1 || out.Codes[0] != "invalid-input-response" {
		t.Errorf("Expected upstream codes, got %v", out.Codes)
	}
	if len(m.sent) != 0 {
		t.Errorf("Rejected token must not reach the email service, got %d sends", len(m.sent))
	}
}

func TestProcess_VerifierError(t *testing.T) {
	v := &fakeVerifier{err: errors.New("connection refused")}
	m := &fakeSender{}
	svc := newService(v, m)

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", out.Status)
	}
	if len(m.sent) != 0 {
		t.Errorf("No email should be sent, got %d", len(m.sent))
	}
}

func TestProcess_EmailNotConfigured(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	svc := newService(v, nil)
	svc.Mail = nil

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", out.Status)
	}
	if v.calls != 1 {
		t.Errorf("Expected exactly one verification call, got %d", v.calls)
	}
}

func TestProcess_Success(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)

	p := validPayload()
	p.Business = "Southern Elite Bin Cleaning"
	p.Location = "Summerville, SC"
	p.Systems = "Google Calendar + spreadsheets"

	out := svc.Process(context.Background(), p)

	if out.Status != http.StatusOK || !out.OK {
		t.Fatalf("Expected 200 ok, got %d %q", out.Status, out.Error)
	}
	if v.calls != 1 {
		t.Errorf("Expected exactly one verification call, got %d", v.calls)
	}
	if len(m.sent) != 2 {
		t.Fatalf("Expected exactly two sends, got %d", len(m.sent))
	}

	internal := m.sent[0]
	if len(internal.To) != 1 || internal.To[0] != svc.To {
		t.Errorf("First send must go to the destination inbox, got %v", internal.To)
	}
	if internal.ReplyTo != p.Email {
		t.Errorf("Internal reply-to should be the submitter, got %q", internal.ReplyTo)
	}
	if !strings.Contains(internal.Subject, "Jane Doe") || !strings.Contains(internal.Subject, "Southern Elite Bin Cleaning") {
		t.Errorf("Internal subject missing name/business: %q", internal.Subject)
	}
	if !strings.Contains(internal.Text, "Needs help with:") {
		t.Errorf("Internal body missing help section: %q", internal.Text)
	}

	ack := m.sent[1]
	if len(ack.To) != 1 || ack.To[0] != p.Email {
		t.Errorf("Second send must go to the submitter, got %v", ack.To)
	}
	if ack.ReplyTo != svc.To {
		t.Errorf("Acknowledgment reply-to should be the destination inbox, got %q", ack.ReplyTo)
	}
	if ack.HTML == "" || ack.Text == "" {
		t.Error("Acknowledgment must carry both text and HTML bodies")
	}
}

func TestProcess_ReplyToOverride(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)
	svc.ReplyTo = "inbox@stonebranchcapital.com"

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", out.Status)
	}
	if m.sent[1].ReplyTo != "inbox@stonebranchcapital.com" {
		t.Errorf("Acknowledgment should use the reply-to override, got %q", m.sent[1].ReplyTo)
	}
}

func TestProcess_SubjectHeaderInjection(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{}
	svc := newService(v, m)

	p := validPayload()
	p.Name = "Jane\r\nBcc: evil@x.com"

	out := svc.Process(context.Background(), p)

	if out.Status != http.StatusOK {
		t.Fatalf("Expected 200, got %d", out.Status)
	}
	subject := m.sent[0].Subject
	if strings.ContainsAny(subject, "\r\n") {
		t.Errorf("Subject must not contain CR/LF: %q", subject)
	}
}

func TestProcess_InternalSendFails(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{failAt: 1}
	svc := newService(v, m)

	out := svc.Process(context.Background(), validPayload())

	if out.Status != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", out.Status)
	}
	if len(m.sent) != 1 {
		t.Errorf("Acknowledgment must not be attempted after a failed internal send, got %d sends", len(m.sent))
	}
}

func TestProcess_AcknowledgmentFailsAfterInternalSent(t *testing.T) {
	v := &fakeVerifier{result: turnstile.Result{Success: true}}
	m := &fakeSender{failAt: 2}
	svc := newService(v, m)

	out := svc.Process(context.Background(), validPayload())

	// The internal notice already went out; the outcome is still a failure
	// and the first send is not rolled back.
	if out.Status != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", out.Status)
	}
	if len(m.sent) != 2 {
		t.Errorf("Expected both sends attempted, got %d", len(m.sent))
	}
	if m.sent[0].To[0] != svc.To {
		t.Errorf("Internal notification should have been attempted first, got %v", m.sent[0].To)
	}
}
