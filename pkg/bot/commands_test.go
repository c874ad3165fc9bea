package bot

import (
	"testing"

	"bojackquotes/pkg/quotes"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource always fails, to check that handlers degrade to a message.
type failingSource struct{}

func (failingSource) RandomQuote() (quotes.Quote, error) {
	return quotes.Quote{}, quotes.ErrEmptyStore
}

func (failingSource) RandomQuoteForSeason(uint8) (quotes.Quote, bool) {
	return quotes.Quote{}, false
}

func TestQuoteReply_RandomQuote(t *testing.T) {
	store := quotes.New(testQuotes, quotes.WithRand(func(int) int { return 0 }))
	h, m := newTestHandler(t, store)

	assert.Equal(t, testQuotes[0].Formatted(), h.QuoteReply("/quote"))
	assert.Equal(t, testQuotes[0].Formatted(), h.QuoteReply("/quote please"))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands().WithLabelValues(CommandQuote, OutcomeQuote)))
}

func TestQuoteReply_EasterEgg(t *testing.T) {
	tests := []string{
		"/quote plz",
		"/quote give me one plz!",
		"/quote plzzz",
		"!quote   plz",
		"/quote\u00a0plz",
		"/quote\fplz",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			// Even an empty store answers the easter egg.
			h, _ := newTestHandler(t, quotes.New(nil))
			assert.Equal(t, "easter egg!", h.QuoteReply(text))
		})
	}
}

func TestQuoteReply_EasterEggIsCaseSensitive(t *testing.T) {
	store := quotes.New(testQuotes, quotes.WithRand(func(int) int { return 2 }))
	h, _ := newTestHandler(t, store)

	assert.Equal(t, testQuotes[2].Formatted(), h.QuoteReply("/quote PLZ"))
}

func TestQuoteReply_EmptyTriggerNeverMatches(t *testing.T) {
	store := quotes.New(testQuotes, quotes.WithRand(func(int) int { return 0 }))
	h := NewHandler(store, Options{EasterEggReply: "never"})

	assert.Equal(t, testQuotes[0].Formatted(), h.QuoteReply("/quote anything"))
}

func TestQuoteReply_EmptyStore(t *testing.T) {
	h, _ := newTestHandler(t, failingSource{})

	assert.Equal(t, UnavailableReply, h.QuoteReply("/quote"))
}

func TestSeasonReply(t *testing.T) {
	h, _ := newTestHandler(t, quotes.New(testQuotes))

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain number", "/season 1", testQuotes[0].Formatted()},
		{"digits inside text", "/season two? no, 2 please", testQuotes[1].Formatted()},
		{"leading zeros", "/season 002", testQuotes[1].Formatted()},
		{"glued to words", "/season s2e5", testQuotes[1].Formatted()},
		{"unknown season", "/season 0", testQuotes[2].Formatted()},
		{"no quotes for season", "/season 99", quotes.SeasonMissReply},
		{"vertical tab separator", "/season\v2", testQuotes[1].Formatted()},
		{"no-break space separator", "/season\u00a02", testQuotes[1].Formatted()},
		{"form feed separator", "/season\f1", testQuotes[0].Formatted()},
		{"no digits", "/season abc", NotUnderstoodReply},
		{"no argument", "/season", NotUnderstoodReply},
		{"out of range", "/season 256", NotUnderstoodReply},
		{"huge number", "/season 99999999999999999999999", NotUnderstoodReply},
		{"negative is just digits", "/season -1", testQuotes[0].Formatted()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.SeasonReply(tt.text))
		})
	}
}

func TestSeasonReply_Metrics(t *testing.T) {
	h, m := newTestHandler(t, quotes.New(testQuotes))

	h.SeasonReply("/season 1")
	h.SeasonReply("/season 99")
	h.SeasonReply("/season nope")
	h.SeasonReply("/season nope")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands().WithLabelValues(CommandSeason, OutcomeQuote)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands().WithLabelValues(CommandSeason, OutcomeSeasonMiss)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands().WithLabelValues(CommandSeason, OutcomeNotUnderstood)))
}

func TestReply_Routing(t *testing.T) {
	store := quotes.New(testQuotes, quotes.WithRand(func(int) int { return 0 }))
	h, _ := newTestHandler(t, store)

	reply, ok := h.Reply("/quote")
	require.True(t, ok)
	assert.Equal(t, testQuotes[0].Formatted(), reply)

	reply, ok = h.Reply("  !season   abc ")
	require.True(t, ok)
	assert.Equal(t, NotUnderstoodReply, reply)

	reply, ok = h.Reply("/quote\u00a0plz")
	require.True(t, ok)
	assert.Equal(t, "easter egg!", reply)

	reply, ok = h.Reply("/season\v2")
	require.True(t, ok)
	assert.Equal(t, testQuotes[1].Formatted(), reply)

	_, ok = h.Reply("/unknown 3")
	assert.False(t, ok)

	_, ok = h.Reply("   ")
	assert.False(t, ok)
}

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, "", commandArgs("/quote"))
	assert.Equal(t, "plz", commandArgs("/quote plz"))
	assert.Equal(t, "a  b", commandArgs("  /season\ta  b  "))
	assert.Equal(t, "", commandArgs(""))
	assert.Equal(t, "2", commandArgs("/season\v2"))
	assert.Equal(t, "plz", commandArgs("/quote\u00a0plz"))
	assert.Equal(t, "3", commandArgs("/season\f3"))
	assert.Equal(t, "x", commandArgs("/season\u2003x"))
}
