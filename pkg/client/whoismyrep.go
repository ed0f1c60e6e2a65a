package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// SourceWhoIsMyRep identifies the whoismyrepresentative.com API, the primary
// ZIP-lookup source for the United States.
const SourceWhoIsMyRep = "whoismyrepresentative"

type WhoIsMyRepClient struct {
	httpClient *HttpClient
}

func NewWhoIsMyRepClient(baseURL string, timeout time.Duration) *WhoIsMyRepClient {
	return &WhoIsMyRepClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

// GetAllMembers looks up every member (House and Senate) for a ZIP code.
func (c *WhoIsMyRepClient) GetAllMembers(ctx context.Context, zip string) (*Response, error) {
	q := url.Values{}
	q.Set("zip", zip)
	q.Set("output", "json")
	return c.httpClient.GET(ctx, "/getall_mems.php", q)
}

// DecodeMembers extracts the record list from a response that is either a
// bare JSON array or an object keyed by "results", "representatives" or
// "data" (tried in that order until one yields a non-empty list). Field
// names inside records vary per deployment, so records stay loosely typed
// until the normalizer.
func (c *WhoIsMyRepClient) DecodeMembers(resp *Response) ([]map[string]any, error) {
	var payload any
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON from %s: %w (body: %s)", SourceWhoIsMyRep, err, resp.Excerpt(200))
	}

	var raw []any
	switch data := payload.(type) {
	case []any:
		raw = data
	case map[string]any:
		for _, key := range []string{"results", "representatives", "data"} {
			if list, ok := data[key].([]any); ok && len(list) > 0 {
				raw = list
				break
			}
		}
	}

	records := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
