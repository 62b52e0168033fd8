package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go-jobradar/internal/digest"
)

// Block is one element of a Slack Block Kit payload.
type Block struct {
	Type string     `json:"type"`
	Text *BlockText `json:"text,omitempty"`
}

type BlockText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Payload is the document posted to the incoming webhook.
type Payload struct {
	Blocks []Block `json:"blocks"`
}

// BuildPayload renders the digest as a Block Kit document: a header with
// the pre-cap match count, a divider, then one section per record. An
// empty digest becomes a single status section instead.
func BuildPayload(d digest.Digest, header, empty string) Payload {
	if len(d.Records) == 0 {
		return Payload{Blocks: []Block{section(empty)}}
	}

	blocks := make([]Block, 0, len(d.Records)+2)
	blocks = append(blocks,
		Block{Type: "header", Text: &BlockText{Type: "plain_text", Text: fmt.Sprintf(header, d.Total)}},
		Block{Type: "divider"},
	)
	for _, r := range d.Records {
		blocks = append(blocks, section(fmt.Sprintf("*%s*: <%s|%s>", r.Source, r.URL, r.Title)))
	}
	return Payload{Blocks: blocks}
}

func section(text string) Block {
	return Block{Type: "section", Text: &BlockText{Type: "mrkdwn", Text: text}}
}

// WebhookSink posts the payload to a Slack incoming webhook in a single
// request. Fire-and-forget: no retries, no acknowledgment handling.
type WebhookSink struct {
	url    string
	header string
	empty  string
	client *http.Client
}

func NewWebhookSink(url, header, empty string) *WebhookSink {
	return &WebhookSink{
		url:    url,
		header: header,
		empty:  empty,
		client: http.DefaultClient,
	}
}

func (s *WebhookSink) Name() string {
	return "slack"
}

func (s *WebhookSink) Send(d digest.Digest) error {
	payload := BuildPayload(d, s.header, s.empty)
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := s.client.Post(s.url, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
