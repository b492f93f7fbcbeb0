package testhelpers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MessagesRequest is the part of a Messages API request the tests inspect
type MessagesRequest struct {
	Path      string
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Stream    bool   `json:"stream"`
	Messages  []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

// Prompt returns the text of the first user message
func (r MessagesRequest) Prompt() string {
	if len(r.Messages) == 0 || len(r.Messages[0].Content) == 0 {
		return ""
	}
	return r.Messages[0].Content[0].Text
}

// FakeMessagesAPI is an httptest server speaking enough of the Anthropic
// Messages API for the completion client. It answers every request with
// Reply, or with an error body when Status is not 200.
type FakeMessagesAPI struct {
	*httptest.Server

	mu       sync.Mutex
	reply    string
	status   int
	blocks   []map[string]string
	requests []MessagesRequest
}

// NewFakeMessagesAPI starts a fake API replying with the given text
func NewFakeMessagesAPI(t *testing.T, reply string) *FakeMessagesAPI {
	t.Helper()
	f := &FakeMessagesAPI{reply: reply, status: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

// FailWith makes subsequent requests fail with the given HTTP status
func (f *FakeMessagesAPI) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// ReplyWithBlocks makes subsequent responses carry exactly these content blocks
func (f *FakeMessagesAPI) ReplyWithBlocks(blocks ...map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if blocks == nil {
		blocks = []map[string]string{}
	}
	f.blocks = blocks
}

// Requests returns every request received so far
func (f *FakeMessagesAPI) Requests() []MessagesRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]MessagesRequest(nil), f.requests...)
}

func (f *FakeMessagesAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req MessagesRequest
	_ = json.Unmarshal(body, &req)
	req.Path = r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, req)
	status, reply, blocks := f.status, f.reply, f.blocks
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
		fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"fake failure"}}`)
		return
	}

	if blocks == nil {
		blocks = []map[string]string{{"type": "text", "text": reply}}
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"id":            "msg_test",
		"type":          "message",
		"role":          "assistant",
		"model":         req.Model,
		"content":       blocks,
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"usage": map[string]int{
			"input_tokens":  len(req.Prompt()) / 4,
			"output_tokens": len(reply) / 4,
		},
	})
}
