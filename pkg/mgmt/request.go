package mgmt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// NoContent is the response type of requests whose success carries no body.
type NoContent struct{}

// Request is a prepared call bound to a verb, path and body. Nothing is sent
// until Execute is called, and each Execute performs one round trip.
type Request[T any] struct {
	client *Client
	method string
	path   string
	query  url.Values
	body   []byte
}

func newRequest[T any](c *Client, method, path string, body interface{}) (*Request[T], error) {
	r := &Request[T]{
		client: c,
		method: method,
		path:   path,
		query:  url.Values{},
	}

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		r.body = b
	}

	return r, nil
}

// Method returns the HTTP verb.
func (r *Request[T]) Method() string {
	return r.method
}

// URL returns the absolute URL including query parameters.
func (r *Request[T]) URL() string {
	endpoint := r.client.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}
	return endpoint
}

// Body returns the encoded JSON body, or nil when the request has none.
func (r *Request[T]) Body() []byte {
	return r.body
}

// Execute sends the request and decodes the response into a T.
func (r *Request[T]) Execute(ctx context.Context) (*T, error) {
	var result T
	if err := r.client.do(ctx, r.method, r.URL(), r.body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Request[T]) withQuery(values url.Values) *Request[T] {
	for k, vs := range values {
		for _, v := range vs {
			r.query.Add(k, v)
		}
	}
	return r
}
