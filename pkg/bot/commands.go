package bot

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"bojackquotes/pkg/quotes"

	"github.com/charmbracelet/log"
)

const (
	CommandQuote  = "quote"
	CommandSeason = "season"

	// NotUnderstoodReply is sent when /season carries no usable season number.
	NotUnderstoodReply = "Sorry, I couldn't understand which season you meant. Try something like /season 3."

	// UnavailableReply is sent when there is nothing to pick from.
	UnavailableReply = "I'm all out of quotes right now. Try again later?"
)

// Outcome labels for the commands_total metric.
const (
	OutcomeQuote         = "quote"
	OutcomeEasterEgg     = "easter_egg"
	OutcomeSeasonMiss    = "season_miss"
	OutcomeNotUnderstood = "not_understood"
	OutcomeUnavailable   = "unavailable"
)

var seasonDigits = regexp.MustCompile(`\d+`)

// commandArgs returns everything after the command token.
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[idx:])
}

// QuoteReply answers /quote. text is the raw command message, e.g. "/quote plz".
func (h *Handler) QuoteReply(text string) string {
	args := commandArgs(text)
	if h.easterEggTrigger != "" && strings.Contains(args, h.easterEggTrigger) {
		h.metrics.CommandHandled(CommandQuote, OutcomeEasterEgg)
		return h.easterEggReply
	}

	q, err := h.quotes.RandomQuote()
	if err != nil {
		if !errors.Is(err, quotes.ErrEmptyStore) {
			log.Error("Error picking quote", "err", err)
		}
		h.metrics.CommandHandled(CommandQuote, OutcomeUnavailable)
		return UnavailableReply
	}

	h.metrics.CommandHandled(CommandQuote, OutcomeQuote)
	return q.Formatted()
}

// SeasonReply answers /season. The first run of digits in the arguments is the
// season; anything that does not fit a season number is not understood.
func (h *Handler) SeasonReply(text string) string {
	season, ok := parseSeason(commandArgs(text))
	if !ok {
		h.metrics.CommandHandled(CommandSeason, OutcomeNotUnderstood)
		return NotUnderstoodReply
	}

	// Same result as Store.PickRandomForSeason, unrolled so the miss is counted.
	q, found := h.quotes.RandomQuoteForSeason(season)
	if !found {
		h.metrics.CommandHandled(CommandSeason, OutcomeSeasonMiss)
		return quotes.SeasonMissReply
	}

	h.metrics.CommandHandled(CommandSeason, OutcomeQuote)
	return q.Formatted()
}

func parseSeason(args string) (uint8, bool) {
	digits := seasonDigits.FindString(args)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// Reply routes a plain-text message to a command. ok is false when the
// message is not a command this bot knows.
func (h *Handler) Reply(content string) (reply string, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", false
	}

	switch h.commandName(fields[0]) {
	case CommandQuote:
		return h.QuoteReply(content), true
	case CommandSeason:
		return h.SeasonReply(content), true
	default:
		return "", false
	}
}

func (h *Handler) commandName(token string) string {
	for _, prefix := range h.prefixes {
		if prefix != "" && strings.HasPrefix(token, prefix) {
			return strings.TrimPrefix(token, prefix)
		}
	}
	return ""
}
