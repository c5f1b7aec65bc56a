package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(serverURL string) *Client {
	c := NewClient("re_test_key")
	c.BaseURL = serverURL
	return c
}

func TestSend(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("Decode body: %v", err)
		}
		w.Write([]byte(`{"id":"b1c719c0"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).Send(context.Background(), Email{
		From:    "Stonebranch Capital <no-reply@stonebranchcapital.com>",
		To:      []string{"contact@stonebranchcapital.com"},
		ReplyTo: "jane@x.com",
		Subject: "New Stonebranch inquiry — Jane Doe",
		Text:    "Name: Jane Doe",
		HTML:    "<p>Name: Jane Doe</p>",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if gotAuth != "Bearer re_test_key" {
		t.Errorf("Unexpected Authorization header %q", gotAuth)
	}
	if gotPath != "/emails" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if gotBody["reply_to"] != "jane@x.com" {
		t.Errorf("Unexpected reply_to %v", gotBody["reply_to"])
	}
	if gotBody["subject"] != "New Stonebranch inquiry — Jane Doe" {
		t.Errorf("Unexpected subject %v", gotBody["subject"])
	}
	to, ok := gotBody["to"].([]interface{})
	if !ok || len(to) != 1 || to[0] != "contact@stonebranchcapital.com" {
		t.Errorf("Unexpected to field %v", gotBody["to"])
	}
}

func TestSendOmitsEmptyReplyTo(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"id":"ok"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).Send(context.Background(), Email{
		From:    "a@b.c",
		To:      []string{"d@e.f"},
		Subject: "s",
		Text:    "t",
	})
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if _, present := gotBody["reply_to"]; present {
		t.Error("Empty reply_to should be omitted from the payload")
	}
	if _, present := gotBody["html"]; present {
		t.Error("Empty html should be omitted from the payload")
	}
}

func TestSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	err := testClient(server.URL).Send(context.Background(), Email{From: "bad", To: []string{"d@e.f"}, Subject: "s", Text: "t"})
	if err == nil {
		t.Fatal("Expected error on non-2xx status")
	}
}
