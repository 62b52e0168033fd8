// Package collector turns raw postings from one board into classified,
// display-ready records.
package collector

import (
	"context"
	"time"

	"go-jobradar/internal/filter"
	"go-jobradar/internal/source"
)

// Record is one classified posting ready for the digest.
type Record struct {
	Source string
	Title  string // glyph-decorated display title
	URL    string
	Date   string // parsed publish date, or "Recent" when the board gave none
	Tier   filter.Tier
}

// Result carries one source's outcome. Err is non-nil when at least one
// endpoint failed, but Records may still hold entries from the endpoints
// that answered.
type Result struct {
	Source  string
	Records []Record
	Err     error
}

type Collector struct {
	src        source.Source
	classifier filter.Classifier
	window     time.Duration // 0 disables the recency check
	now        func() time.Time
}

func New(src source.Source, classifier filter.Classifier, window time.Duration) *Collector {
	return &Collector{
		src:        src,
		classifier: classifier,
		window:     window,
		now:        time.Now,
	}
}

// Run fetches the source and classifies every recent posting. It never
// returns an error: failures ride inside the Result for the caller to log.
func (c *Collector) Run(ctx context.Context) Result {
	res := Result{Source: c.src.Name()}

	postings, err := c.src.Fetch(ctx)
	res.Err = err

	now := c.now()
	for _, p := range postings {
		if !filter.IsRecent(p.PublishedAt, c.window, now) {
			continue
		}
		tier, ok := c.classifier.Classify(p.Title, p.Description)
		if !ok {
			continue
		}
		res.Records = append(res.Records, Record{
			Source: res.Source,
			Title:  tier.Glyph + " " + p.Title,
			URL:    p.URL,
			Date:   displayDate(p.PublishedAt),
			Tier:   tier,
		})
	}

	return res
}

func displayDate(ts time.Time) string {
	if ts.IsZero() {
		return "Recent"
	}
	return ts.Format("2006-01-02")
}
