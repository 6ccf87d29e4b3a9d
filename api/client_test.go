package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

const postEnvelope = `{
	"@attributes": {"limit": 100, "offset": 0, "count": 1},
	"post": [{
		"id": 9001,
		"created_at": "Mon Jan 02 15:04:05 +0000 2006",
		"score": 12,
		"width": 1920,
		"height": 1080,
		"owner": "someone",
		"rating": "safe",
		"tags": "hatsune_miku solo",
		"file_url": "https://img.example/full.png",
		"post_locked": 0
	}]
}`

// testClient points a regular client at the given test server.
func testClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	base, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	client := NewClient()
	client.httpClient = srv.Client()
	client.base = url.URL{Scheme: base.Scheme, Host: base.Host, Path: "/index.php"}
	return client
}

func TestCallSendsFixedSelectors(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(postEnvelope))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	query, err := Posts().Limit(1).Tags("hatsune_miku", "solo").Send(client)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	for key, want := range map[string]string{
		"page":  "dapi",
		"q":     "index",
		"json":  "1",
		"s":     "post",
		"limit": "1",
		"tags":  "hatsune_miku solo",
	} {
		if got.Get(key) != want {
			t.Errorf("query[%s] = %q, want %q", key, got.Get(key), want)
		}
	}
	if got.Has("user_id") || got.Has("api_key") {
		t.Error("unauthenticated request carries credentials")
	}

	if len(query.Posts) != 1 || query.Posts[0].ID != 9001 {
		t.Errorf("decoded %d posts, want post 9001", len(query.Posts))
	}
	if query.Attributes.Count != 1 {
		t.Errorf("count = %d, want 1", query.Attributes.Count)
	}
}

func TestCallInjectsCredentials(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(postEnvelope))
	}))
	defer srv.Close()

	client := testClient(t, srv)
	client.auth = &AuthDetails{UserID: 42, Key: "ABCDEF"}

	if _, err := Posts().Send(client); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got.Get("user_id") != "42" {
		t.Errorf("user_id = %q, want %q", got.Get("user_id"), "42")
	}
	if got.Get("api_key") != "ABCDEF" {
		t.Errorf("api_key = %q, want %q", got.Get("api_key"), "ABCDEF")
	}
}

func TestCallStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := Posts().Send(testClient(t, srv))
	if !errors.Is(err, ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
}

func TestCallDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	_, err := Posts().Send(testClient(t, srv))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestCallEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// zero results: the service omits the item array entirely
		w.Write([]byte(`{"@attributes": {"limit": 100, "offset": 0, "count": 0}}`))
	}))
	defer srv.Close()

	query, err := Posts().Tags("no_such_tag_ever").Send(testClient(t, srv))
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if len(query.Posts) != 0 {
		t.Errorf("got %d posts, want none", len(query.Posts))
	}

	tag, err := Tags().Name(testClient(t, srv), "no_such_tag_ever")
	if err != nil {
		t.Fatalf("Name failed: %v", err)
	}
	if tag != nil {
		t.Errorf("tag = %+v, want nil", tag)
	}
}
