package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrichio/internal/ports"
)

func serve(t *testing.T, status int, body string) (*Client, *url.Values) {
	t.Helper()
	var seen url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.Header().Set("Content-Type", "application/x-javascript")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithRateInterval(0)), &seen
}

func TestSearchWeb(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *ports.WebResult
	}{
		{
			name: "abstract",
			body: `{"Heading":"Zorblax","AbstractText":"Zorblax is a French bank.","AbstractURL":"https://en.wikipedia.org/wiki/Zorblax"}`,
			want: &ports.WebResult{Title: "Zorblax", URL: "https://en.wikipedia.org/wiki/Zorblax", Snippet: "Zorblax is a French bank."},
		},
		{
			name: "first related topic inside a group",
			body: `{"RelatedTopics":[{"Name":"Companies","Topics":[{"Text":"Zorblax - logistics and transport group","FirstURL":"https://duckduckgo.com/Zorblax"}]}]}`,
			want: &ports.WebResult{Title: "Zorblax", URL: "https://duckduckgo.com/Zorblax", Snippet: "Zorblax - logistics and transport group"},
		},
		{
			name: "no hit",
			body: `{"Heading":"","AbstractText":"","RelatedTopics":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, query := serve(t, http.StatusOK, tt.body)

			got, err := c.SearchWeb(context.Background(), "Zorblax")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			q := *query
			assert.Equal(t, "Zorblax", q.Get("q"))
			assert.Equal(t, "json", q.Get("format"))
			assert.Equal(t, "fr-fr", q.Get("kl"))
		})
	}
}

func TestSearchWeb_Failures(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c, _ := serve(t, http.StatusServiceUnavailable, "busy")
		_, err := c.SearchWeb(context.Background(), "Zorblax")
		assert.ErrorContains(t, err, "status 503")
	})

	t.Run("bad body", func(t *testing.T) {
		c, _ := serve(t, http.StatusOK, "<html>")
		_, err := c.SearchWeb(context.Background(), "Zorblax")
		assert.Error(t, err)
	})
}
