// Define the boundary to external job boards
// Ensure consistency across board adapters

package source

import (
	"context"
	"time"
)

// Posting is one raw job entry as an external board reported it.
type Posting struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time // zero when the board gave no usable date
}

// Source yields postings from one external job board.
type Source interface {
	//Fetch returns every posting the board currently lists. Endpoint
	//failures are joined into the returned error; postings collected from
	//the endpoints that did answer are returned alongside it.
	Fetch(ctx context.Context) ([]Posting, error)

	//Name is the board name shown in digests (Himalayas, RemoteOK, ...)
	Name() string
}
