package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// interactionUser returns who ran a slash command, in a guild (Member) or a DM (User).
func interactionUser(i *discordgo.InteractionCreate) (*discordgo.User, error) {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User, nil
	case i.User != nil:
		return i.User, nil
	default:
		return nil, fmt.Errorf("could not determine user from interaction")
	}
}

// displayName prefers the global display name over the username.
func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
