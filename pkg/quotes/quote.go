package quotes

import "fmt"

// Quote is one attributed line of dialogue. Season and Episode are 0 when unknown.
type Quote struct {
	Text    string
	Speaker string
	Season  uint8
	Episode uint8
}

// Formatted renders the quote the way the bot sends it to chat.
func (q Quote) Formatted() string {
	var tag string
	switch {
	case q.Season != 0 && q.Episode != 0:
		tag = fmt.Sprintf("Season %d, Episode %d", q.Season, q.Episode)
	case q.Season != 0 && q.Episode == 0:
		tag = fmt.Sprintf("Season %d, Episode ?", q.Season)
	case q.Season == 0 && q.Episode != 0:
		tag = fmt.Sprintf("Season ?, Episode %d", q.Episode)
	default:
		tag = "Season ?, Episode ?"
	}
	return fmt.Sprintf("\"%s\"\n\n - %s\n %s", q.Text, q.Speaker, tag)
}

