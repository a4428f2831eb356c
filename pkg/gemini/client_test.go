package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedule-board/pkg/gemini"
)

func TestNewScheduleExtractionRequest(t *testing.T) {
	req := gemini.NewScheduleExtractionRequest("base64payload", "")

	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected request shape: %+v", req)
	}

	inline := req.Contents[0].Parts[0].InlineData
	if inline == nil || inline.Data != "base64payload" {
		t.Errorf("missing inline image data")
	}
	if inline.MimeType != "image/png" {
		t.Errorf("expected default mime type image/png, got %q", inline.MimeType)
	}

	if !strings.Contains(req.Contents[0].Parts[1].Text, "Extract all appointments") {
		t.Errorf("prompt missing extraction instruction")
	}

	if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("extraction request must demand a JSON response")
	}
	if req.GenerationConfig.ResponseSchema == nil {
		t.Errorf("extraction request must carry a response schema")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected response text: %q", resp.Text())
		}
	})

	t.Run("Server Error Propagates", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error on 500 response")
		}
		if !strings.Contains(err.Error(), "gemini API error 500") {
			t.Errorf("error should carry upstream status: %v", err)
		}
	})

	t.Run("Bad API Key", func(t *testing.T) {
		c2 := gemini.NewClient("wrong-key")
		c2.SetAPIURL(ts.URL)

		_, err := c2.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatalf("expected error for unauthorized key")
		}
	})
}

func TestResponseText_Empty(t *testing.T) {
	var resp *gemini.GenerateResponse
	if resp.Text() != "" {
		t.Errorf("nil response should produce empty text")
	}

	empty := &gemini.GenerateResponse{}
	if empty.Text() != "" {
		t.Errorf("empty candidates should produce empty text")
	}
}
