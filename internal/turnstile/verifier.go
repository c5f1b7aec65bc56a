package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Result is the siteverify response for a single token.
type Result struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verifier validates Cloudflare Turnstile tokens against the siteverify API.
type Verifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		Secret:   secret,
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify posts the token to siteverify and returns the decoded result.
// A token is checked exactly once; a failed verification is not retried.
func (v *Verifier) Verify(ctx context.Context, token string) (Result, error) {
	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("turnstile: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("turnstile: siteverify call: %w", err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("turnstile: decode response: %w", err)
	}
	return result, nil
}
