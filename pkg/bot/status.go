package bot

import (
	"github.com/bwmarrin/discordgo"
)

// SetStatus shows "Watching <text>" as the bot's presence.
func SetStatus(s Session, text string) error {
	if text == "" {
		return nil
	}
	return s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{
				Name: text,
				Type: discordgo.ActivityTypeWatching,
			},
		},
		Status: "online",
		AFK:    false,
	})
}
