package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"fbcal_workspace/configs"
)

// Client is the HTTP implementation of Caller. A Client is bound to one
// access token; WithToken derives per-user clients off a shared base.
type Client struct {
	base  string
	token string
	http  *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: configs.GraphTimeout},
	}
}

// WithToken returns a copy of the client that signs calls with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

type errEnvelope struct {
	Error *Error `json:"error"`
}

func (c *Client) Call(ctx context.Context, method, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.token != "" && params.Get("access_token") == "" {
		params.Set("access_token", c.token)
	}

	endpoint := c.base + "/" + strings.TrimLeft(path, "/")
	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		endpoint += "?" + params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env errEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("graph: bad response: %w", err)
	}
	if env.Error != nil {
		return env.Error
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
