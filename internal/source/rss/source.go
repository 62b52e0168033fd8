// Package rss reads job boards that publish syndication feeds.
package rss

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/gofeed"

	"go-jobradar/internal/source"
)

type Source struct {
	name      string
	endpoints []string
	parser    *gofeed.Parser
}

func New(name string, endpoints []string) *Source {
	return &Source{
		name:      name,
		endpoints: endpoints,
		parser:    gofeed.NewParser(),
	}
}

func (s *Source) Name() string {
	return s.name
}

// Fetch parses every endpoint in order. A bad feed never hides the good
// ones: its error is collected and the remaining endpoints still run.
func (s *Source) Fetch(ctx context.Context) ([]source.Posting, error) {
	var all []source.Posting
	var errs []error

	for _, endpoint := range s.endpoints {
		feed, err := s.parser.ParseURLWithContext(endpoint, ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, err))
			continue
		}
		for _, item := range feed.Items {
			p := source.Posting{
				Title:       item.Title,
				Description: item.Description,
				URL:         item.Link,
			}
			if item.PublishedParsed != nil {
				p.PublishedAt = *item.PublishedParsed
			}
			all = append(all, p)
		}
	}

	return all, errors.Join(errs...)
}
