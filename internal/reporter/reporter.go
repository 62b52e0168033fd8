// Package reporter delivers the run digest to configured chat sinks.
package reporter

import (
	"encoding/json"
	"fmt"
	"log"

	"go-jobradar/internal/digest"
)

// Sink delivers one rendered digest to a chat endpoint.
type Sink interface {
	Name() string
	Send(d digest.Digest) error
}

// Reporter fans the digest out to every configured sink. Delivery failures
// are logged and never affect the run's outcome.
type Reporter struct {
	header string // fmt format with one %d verb for the match count
	empty  string // status text for runs with zero matches
	sinks  []Sink
}

func New(header, empty string, sinks []Sink) *Reporter {
	return &Reporter{header: header, empty: empty, sinks: sinks}
}

// Notify sends the digest through every sink. With no sinks configured the
// rendered payload is printed instead so local runs stay inspectable.
func (r *Reporter) Notify(d digest.Digest) {
	if len(r.sinks) == 0 {
		log.Println("📭 No sink configured. Payload:")
		payload := BuildPayload(d, r.header, r.empty)
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Printf("⚠️ Failed to marshal payload: %v", err)
			return
		}
		fmt.Println(string(data))
		return
	}

	for _, s := range r.sinks {
		if err := s.Send(d); err != nil {
			log.Printf("⚠️ Failed to send digest via %s: %v", s.Name(), err)
		}
	}
}
