package metrics

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CommandHandled(t *testing.T) {
	m := New()

	m.CommandHandled("quote", "quote")
	m.CommandHandled("quote", "quote")
	m.CommandHandled("season", "season_miss")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("quote", "quote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("season", "season_miss")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CommandHandled("quote", "quote")
		m.SetQuotesLoaded(10)
	})
	assert.Nil(t, m.Commands())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SetQuotesLoaded(42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bojackquotes_quotes_loaded 42")
}

func TestMetrics_ServeStopsOnCancel(t *testing.T) {
	// Grab a free port.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	m := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Serve(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestMetrics_ServeBadAddr(t *testing.T) {
	m := New()
	err := m.Serve(context.Background(), "not-an-address")
	assert.Error(t, err)
}
