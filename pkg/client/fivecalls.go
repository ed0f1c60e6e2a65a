package client

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// SourceFiveCalls identifies the 5 Calls API, the US fallback source. Unlike
// the primary it labels the chamber explicitly, so no role heuristics are
// needed on its records.
const SourceFiveCalls = "fivecalls"

type FiveCallsClient struct {
	httpClient *HttpClient
}

func NewFiveCallsClient(baseURL string, timeout time.Duration) *FiveCallsClient {
	return &FiveCallsClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

type FiveCallsRep struct {
	Name        string `json:"name"`
	Chamber     string `json:"chamber"`
	Party       string `json:"party"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ContactForm string `json:"contact_form"`
	URL         string `json:"url"`
	District    string `json:"district"`
	State       string `json:"state"`
}

func (c *FiveCallsClient) GetReps(ctx context.Context, zip string) (*Response, error) {
	q := url.Values{}
	q.Set("zip", zip)
	return c.httpClient.GET(ctx, "/v1/reps", q)
}

func (c *FiveCallsClient) DecodeReps(resp *Response) ([]FiveCallsRep, error) {
	var wrapper struct {
		Reps []FiveCallsRep `json:"reps"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode reps response: %w", err)
	}
	return wrapper.Reps, nil
}
