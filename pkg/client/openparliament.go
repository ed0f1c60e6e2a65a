package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// SourceOpenParliament identifies the OpenParliament API, used to enrich
// Represent records and as the Canadian last-resort fallback.
const SourceOpenParliament = "openparliament"

// AllMembersLimit covers every seat in the House of Commons.
const AllMembersLimit = 338

type OpenParliamentClient struct {
	httpClient *HttpClient
}

func NewOpenParliamentClient(baseURL string, timeout time.Duration) *OpenParliamentClient {
	return &OpenParliamentClient{
		httpClient: NewHttpClient(baseURL, timeout),
	}
}

type OpenParliamentMember struct {
	Name    string `json:"name"`
	Riding  string `json:"riding"`
	Party   string `json:"party"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
}

// GetMembersByRiding queries members filtered by riding name.
func (c *OpenParliamentClient) GetMembersByRiding(ctx context.Context, riding string, limit int) (*Response, error) {
	q := url.Values{}
	q.Set("riding", riding)
	q.Set("limit", strconv.Itoa(limit))
	return c.httpClient.GET(ctx, "/members/", q)
}

// GetAllMembers queries members with no riding filter.
func (c *OpenParliamentClient) GetAllMembers(ctx context.Context, limit int) (*Response, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.httpClient.GET(ctx, "/members/", q)
}

func (c *OpenParliamentClient) DecodeMembers(resp *Response) ([]OpenParliamentMember, error) {
	var wrapper struct {
		Objects []OpenParliamentMember `json:"objects"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, fmt.Errorf("could not decode members response: %w", err)
	}
	return wrapper.Objects, nil
}
