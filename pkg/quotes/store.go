package quotes

import (
	"math/rand/v2"
	"slices"
)

// SeasonMissReply is sent when a season has no quotes.
const SeasonMissReply = "I don't have any quotes from that season. Maybe it hasn't aired yet?"

// Store is an immutable, ordered set of quotes. It is safe for concurrent use
// as long as the random source is.
type Store struct {
	quotes []Quote
	intn   func(n int) int
}

// Option configures a Store.
type Option func(*Store)

// WithRand replaces the random source. intn must return a value in [0, n) and
// be safe to call from several goroutines.
func WithRand(intn func(n int) int) Option {
	return func(s *Store) {
		s.intn = intn
	}
}

// New builds a Store from quotes, keeping their order. The slice is copied.
func New(quotes []Quote, opts ...Option) *Store {
	s := &Store{
		quotes: slices.Clone(quotes),
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of quotes.
func (s *Store) Len() int {
	return len(s.quotes)
}

// All returns a copy of the quotes in file order.
func (s *Store) All() []Quote {
	return slices.Clone(s.quotes)
}

// Seasons returns the distinct known seasons in ascending order.
func (s *Store) Seasons() []uint8 {
	var seasons []uint8
	for _, q := range s.quotes {
		if q.Season != 0 && !slices.Contains(seasons, q.Season) {
			seasons = append(seasons, q.Season)
		}
	}
	slices.Sort(seasons)
	return seasons
}

// CountBySeason returns how many quotes each season has, unknown season included as 0.
func (s *Store) CountBySeason() map[uint8]int {
	counts := make(map[uint8]int)
	for _, q := range s.quotes {
		counts[q.Season]++
	}
	return counts
}

// RandomQuote picks a quote uniformly from the whole store.
func (s *Store) RandomQuote() (Quote, error) {
	if len(s.quotes) == 0 {
		return Quote{}, ErrEmptyStore
	}
	return s.quotes[s.intn(len(s.quotes))], nil
}

// RandomQuoteForSeason picks a quote uniformly among those from season.
// ok is false when the season has none.
func (s *Store) RandomQuoteForSeason(season uint8) (q Quote, ok bool) {
	var matching []int
	for i := range s.quotes {
		if s.quotes[i].Season == season {
			matching = append(matching, i)
		}
	}
	if len(matching) == 0 {
		return Quote{}, false
	}
	return s.quotes[matching[s.intn(len(matching))]], true
}

// PickRandom returns a formatted random quote.
func (s *Store) PickRandom() (string, error) {
	q, err := s.RandomQuote()
	if err != nil {
		return "", err
	}
	return q.Formatted(), nil
}

// PickRandomForSeason returns a formatted random quote from season, or
// SeasonMissReply when there is none.
func (s *Store) PickRandomForSeason(season uint8) string {
	q, ok := s.RandomQuoteForSeason(season)
	if !ok {
		return SeasonMissReply
	}
	return q.Formatted()
}
