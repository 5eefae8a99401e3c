// Package mgmttest provides an in-process Management API server for tests.
package mgmttest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Token is the access token tests configure their clients with.
const Token = "apiToken"

// RecordedRequest is a request received by the Server.
type RecordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// BodyMap decodes the recorded JSON body into a generic map.
func (r RecordedRequest) BodyMap(t testing.TB) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(r.Body, &body); err != nil {
		t.Fatalf("failed to decode request body %q: %v", r.Body, err)
	}
	return body
}

// Server answers every request with the next queued response and records
// what it received.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses []response
	requests  []RecordedRequest
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// JSONResponse queues a JSON body with the given status.
func (s *Server) JSONResponse(body string, status int) {
	s.enqueue(response{status: status, body: []byte(body)})
}

// EmptyResponse queues a response without a body.
func (s *Server) EmptyResponse(status int) {
	s.enqueue(response{status: status})
}

// RateLimitResponse queues a 429 carrying x-ratelimit-* headers.
func (s *Server) RateLimitResponse(limit, remaining, reset string) {
	h := http.Header{}
	h.Set("x-ratelimit-limit", limit)
	h.Set("x-ratelimit-remaining", remaining)
	h.Set("x-ratelimit-reset", reset)
	s.enqueue(response{
		status: http.StatusTooManyRequests,
		header: h,
		body:   []byte(`{"statusCode":429,"error":"Too Many Requests","message":"Global limit has been reached","errorCode":"too_many_requests"}`),
	})
}

// TakeRequest returns the oldest request not yet taken, or fails the test.
func (s *Server) TakeRequest(t testing.TB) RecordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		t.Fatal("no request was recorded")
	}
	req := s.requests[0]
	s.requests = s.requests[1:]
	return req
}

// RequestCount returns how many requests are waiting to be taken.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *Server) enqueue(r response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, r)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	var resp response
	if len(s.responses) > 0 {
		resp = s.responses[0]
		s.responses = s.responses[1:]
	} else {
		resp = response{status: http.StatusNotFound, body: []byte(`{"statusCode":404,"error":"Not Found","message":"no response queued"}`)}
	}
	s.mu.Unlock()

	for k, vs := range resp.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if len(resp.body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.status)
	_, _ = io.Copy(w, bytes.NewReader(resp.body))
}
