package quotes

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// tagPattern matches the season/episode field, e.g. S3E07 or s1e12.
var tagPattern = regexp.MustCompile(`[sS](\d+)[eE](\d+)`)

// MaxLineSize is the longest line Parse accepts.
const MaxLineSize = 1 << 20

// quoteMarks are stripped from the quote field.
var quoteMarks = strings.NewReplacer(`"`, "", "“", "", "”", "")

// ParseOption tweaks how a quotes file is parsed.
type ParseOption func(*parseOptions)

type parseOptions struct {
	skipMalformed bool
	storeOpts     []Option
}

// SkipMalformed makes the parser log and drop malformed lines instead of
// failing the whole load.
func SkipMalformed() ParseOption {
	return func(o *parseOptions) {
		o.skipMalformed = true
	}
}

// WithStoreOptions forwards options to the Store built by the parser.
func WithStoreOptions(opts ...Option) ParseOption {
	return func(o *parseOptions) {
		o.storeOpts = append(o.storeOpts, opts...)
	}
}

// Load reads a pipe-separated quotes file. Any malformed line aborts the load
// unless SkipMalformed is given.
func Load(path string, opts ...ParseOption) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	store, err := Parse(f, opts...)
	if err != nil {
		var srcErr *SourceUnavailableError
		if errors.As(err, &srcErr) {
			srcErr.Path = path
		}
		return nil, err
	}
	return store, nil
}

// Parse reads quotes from r, one per non-empty line. Lines longer than
// MaxLineSize fail with LineTooLongError, even with SkipMalformed.
func Parse(r io.Reader, opts ...ParseOption) (*Store, error) {
	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var parsed []Quote
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		q, err := ParseLine(line, lineNo)
		if err != nil {
			if o.skipMalformed {
				log.Warn("Skipping malformed quote line", "line", lineNo, "err", err)
				continue
			}
			return nil, err
		}
		parsed = append(parsed, q)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineTooLongError{Line: lineNo + 1}
		}
		return nil, &SourceUnavailableError{Path: "<reader>", Err: err}
	}

	return New(parsed, o.storeOpts...), nil
}

// ParseLine parses one `quote|speaker|SxEy` line. lineNo is 1-based and only
// used in errors.
func ParseLine(line string, lineNo int) (Quote, error) {
	// No escaping: a literal | inside the quote shifts every following field.
	fields := strings.Split(line, "|")

	text := strings.TrimSpace(quoteMarks.Replace(fields[0]))
	if text == "" {
		return Quote{}, &MissingFieldError{Line: lineNo, Field: "quote"}
	}
	if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
		return Quote{}, &MissingFieldError{Line: lineNo, Field: "speaker"}
	}
	speaker := strings.TrimSpace(fields[1])
	if len(fields) < 3 {
		return Quote{}, &MissingFieldError{Line: lineNo, Field: "season and episode"}
	}
	tag := strings.TrimSpace(fields[2])

	caps := tagPattern.FindStringSubmatch(tag)
	if caps == nil {
		return Quote{}, &MalformedTagError{Line: lineNo, Tag: tag}
	}

	season, err := strconv.ParseUint(caps[1], 10, 8)
	if err != nil {
		return Quote{}, &NumericRangeError{Line: lineNo, Field: "season", Value: caps[1]}
	}
	episode, err := strconv.ParseUint(caps[2], 10, 8)
	if err != nil {
		return Quote{}, &NumericRangeError{Line: lineNo, Field: "episode", Value: caps[2]}
	}

	return Quote{
		Text:    text,
		Speaker: speaker,
		Season:  uint8(season),
		Episode: uint8(episode),
	}, nil
}
