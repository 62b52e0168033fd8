package reporter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobradar/internal/collector"
	"go-jobradar/internal/digest"
	"go-jobradar/internal/filter"
)

const (
	testHeader = "🚀 %d Roles Found (6 Sources)"
	testEmpty  = "✅ *Job Monitor Ran:* No new matches found (Last 7 Days)."
)

func sampleDigest() digest.Digest {
	return digest.Digest{
		Total: 30,
		Records: []collector.Record{
			{Source: "Himalayas", Title: "🏅 Sales Engineer - Sports", URL: "https://x/1", Tier: filter.Tier{Weight: 3}},
			{Source: "RemoteOK", Title: "💼 Sales Engineer", URL: "https://x/2", Tier: filter.Tier{Weight: 1}},
		},
	}
}

func TestBuildPayload(t *testing.T) {
	p := BuildPayload(sampleDigest(), testHeader, testEmpty)

	assert.Len(t, p.Blocks, 4)
	assert.Equal(t, "header", p.Blocks[0].Type)
	assert.Equal(t, "plain_text", p.Blocks[0].Text.Type)
	assert.Equal(t, "🚀 30 Roles Found (6 Sources)", p.Blocks[0].Text.Text, "header count is pre-cap")
	assert.Equal(t, "divider", p.Blocks[1].Type)
	assert.Nil(t, p.Blocks[1].Text)
	assert.Equal(t, "section", p.Blocks[2].Type)
	assert.Equal(t, "mrkdwn", p.Blocks[2].Text.Type)
	assert.Equal(t, "*Himalayas*: <https://x/1|🏅 Sales Engineer - Sports>", p.Blocks[2].Text.Text)
}

func TestBuildPayloadEmptyDigest(t *testing.T) {
	p := BuildPayload(digest.Digest{}, testHeader, testEmpty)

	assert.Len(t, p.Blocks, 1)
	assert.Equal(t, "section", p.Blocks[0].Type)
	assert.Equal(t, testEmpty, p.Blocks[0].Text.Text)
}

func TestWebhookSinkSend(t *testing.T) {
	var received Payload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, testHeader, testEmpty)
	err := sink.Send(sampleDigest())

	assert.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Len(t, received.Blocks, 4)
}

func TestWebhookSinkSendEmptyDigest(t *testing.T) {
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, testHeader, testEmpty)

	//an empty run must still notify, with a valid single-section payload
	assert.NoError(t, sink.Send(digest.Digest{}))
	assert.Len(t, received.Blocks, 1)
	assert.Equal(t, testEmpty, received.Blocks[0].Text.Text)
}

func TestWebhookSinkSendFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_blocks", http.StatusBadRequest)
	}))
	defer srv.Close()

	sink := NewWebhookSink(srv.URL, testHeader, testEmpty)
	err := sink.Send(sampleDigest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNotifyWithoutSinksDoesNotPanic(t *testing.T) {
	r := New(testHeader, testEmpty, nil)
	r.Notify(sampleDigest())
	r.Notify(digest.Digest{})
}

//sink that always fails, to prove Notify swallows delivery errors
type failingSink struct{}

func (failingSink) Name() string               { return "failing" }
func (failingSink) Send(_ digest.Digest) error { return fmt.Errorf("boom") }

func TestNotifyLogsSinkFailure(t *testing.T) {
	r := New(testHeader, testEmpty, []Sink{failingSink{}})
	r.Notify(sampleDigest()) //must not panic or propagate
}
