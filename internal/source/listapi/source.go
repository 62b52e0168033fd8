// Package listapi reads job boards that expose a JSON list API.
package listapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-jobradar/internal/source"
)

// Shape maps a board's JSON response onto postings.
type Shape struct {
	ItemsKey   string // envelope key holding the array; empty means top-level array
	SkipFirst  bool   // boards that prepend a legal-notice record to the array
	TitleKey   string
	DescKey    string
	URLKey     string
	DateKey    string
	DateLayout string // Go reference layout; empty disables date parsing
}

type Source struct {
	name      string
	endpoints []string
	shape     Shape
	userAgent string
	client    *http.Client
}

func New(name string, endpoints []string, shape Shape, userAgent string) *Source {
	return &Source{
		name:      name,
		endpoints: endpoints,
		shape:     shape,
		userAgent: userAgent,
		client:    http.DefaultClient,
	}
}

func (s *Source) Name() string {
	return s.name
}

// Fetch reads every endpoint in order, collecting per-endpoint errors so
// one bad endpoint never hides the others.
func (s *Source) Fetch(ctx context.Context) ([]source.Posting, error) {
	var all []source.Posting
	var errs []error

	for _, endpoint := range s.endpoints {
		postings, err := s.fetchOne(ctx, endpoint)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", endpoint, err))
			continue
		}
		all = append(all, postings...)
	}

	return all, errors.Join(errs...)
}

func (s *Source) fetchOne(ctx context.Context, endpoint string) ([]source.Posting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d", s.name, resp.StatusCode)
	}

	items, err := s.decodeItems(body)
	if err != nil {
		return nil, err
	}
	if s.shape.SkipFirst && len(items) > 0 {
		items = items[1:]
	}

	postings := make([]source.Posting, 0, len(items))
	for _, item := range items {
		p := source.Posting{
			Title:       stringField(item, s.shape.TitleKey),
			Description: stringField(item, s.shape.DescKey),
			URL:         stringField(item, s.shape.URLKey),
		}
		if s.shape.DateKey != "" && s.shape.DateLayout != "" {
			//unparseable dates stay zero and count as recent downstream
			if raw := stringField(item, s.shape.DateKey); raw != "" {
				if ts, err := time.Parse(s.shape.DateLayout, raw); err == nil {
					p.PublishedAt = ts
				}
			}
		}
		postings = append(postings, p)
	}

	return postings, nil
}

func (s *Source) decodeItems(body []byte) ([]map[string]any, error) {
	var items []map[string]any

	if s.shape.ItemsKey == "" {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	raw, ok := envelope[s.shape.ItemsKey]
	if !ok {
		return nil, fmt.Errorf("response has no %q key", s.shape.ItemsKey)
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal %q: %w", s.shape.ItemsKey, err)
	}
	return items, nil
}

func stringField(item map[string]any, key string) string {
	if key == "" {
		return ""
	}
	v, _ := item[key].(string)
	return v
}
