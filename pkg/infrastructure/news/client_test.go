package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in      string
		want    Region
		wantErr bool
	}{
		{"", RegionGlobal, false},
		{"Global", RegionGlobal, false},
		{"turkey", RegionTurkey, false},
		{"Mars", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestClient_BuildURL(t *testing.T) {
	c := NewClient("https://news.test/rss/search", 0, nil)

	assert.Equal(t,
		"https://news.test/rss/search?q=Palm%20Oil+commodity+market&hl=en-US&gl=US&ceid=US:en",
		c.BuildURL("Palm Oil", RegionGlobal))

	turkish := c.BuildURL("Wheat", RegionTurkey)
	assert.Contains(t, turkish, "&hl=tr&gl=TR&ceid=TR:tr")
	assert.Contains(t, turkish, "TMO")
	assert.NotContains(t, turkish, " ")

	assert.Equal(t,
		"https://news.test/rss/search?q=Rice&hl=tr&gl=TR&ceid=TR:tr",
		c.BuildURL("Rice", RegionTurkey))
}

func TestClient_Fetch(t *testing.T) {
	var gotQuery, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLang = r.URL.Query().Get("hl")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	c := NewClient(server.URL, 12, logger)

	items, err := c.Fetch(context.Background(), "Hazelnuts", RegionTurkey)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Fındık fiyatları Giresun Ordu", gotQuery)
	assert.Equal(t, "tr", gotLang)

	_, err = c.Fetch(context.Background(), "Hazelnuts", RegionGlobal)
	require.NoError(t, err)
	assert.Equal(t, "Hazelnuts commodity market", gotQuery)
}

func TestClient_FetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(server.URL, 12, nil)
	_, err := c.Fetch(context.Background(), "Cocoa", RegionGlobal)
	assert.ErrorIs(t, err, ErrFetchFailed)
}
