// README: Scripted stand-in for the remote ride service, shared by package tests.
package rideapitest

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixture returns the named JSON file from fixtures/ and panics when it is missing.
func Fixture(name string) string {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		panic("rideapitest: fixture not found: " + name)
	}
	return string(data)
}

type MockResponse struct {
	Status int
	Body   string
	// Hold, when set, delays the reply until the channel is closed.
	Hold <-chan struct{}
}

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server replies to requests in FIFO order from its queue. An empty queue answers 500.
type Server struct {
	*httptest.Server

	done chan struct{}

	mu       sync.Mutex
	queue    []MockResponse
	requests []RecordedRequest
}

func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{done: make(chan struct{})}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	// runs before Close so held replies cannot block shutdown
	t.Cleanup(func() { close(s.done) })
	return s
}

func (s *Server) Enqueue(status int, body string) {
	s.EnqueueResponse(MockResponse{Status: status, Body: body})
}

func (s *Server) EnqueueResponse(r MockResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, r)
}

// EnqueueHeld queues a reply that is only sent once release is called.
func (s *Server) EnqueueHeld(status int, body string) (release func()) {
	hold := make(chan struct{})
	var once sync.Once
	s.EnqueueResponse(MockResponse{Status: status, Body: body, Hold: hold})
	return func() { once.Do(func() { close(hold) }) }
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	var next MockResponse
	if len(s.queue) > 0 {
		next = s.queue[0]
		s.queue = s.queue[1:]
	} else {
		next = MockResponse{Status: http.StatusInternalServerError}
	}
	s.mu.Unlock()

	if next.Hold != nil {
		select {
		case <-next.Hold:
		case <-r.Context().Done():
			return
		case <-s.done:
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(next.Status)
	_, _ = io.WriteString(w, next.Body)
}
