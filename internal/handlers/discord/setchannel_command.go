package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/alphie/internal/repositories/channelcfg"
	"github.com/bwmarrin/discordgo"
)

// SetChannelCommand implements the admin-only /setchannel command that
// picks the channel the counting game runs in
type SetChannelCommand struct {
	BaseCommand
	channelRepo channelcfg.Repository
}

// NewSetChannelCommand creates the setchannel command handler
func NewSetChannelCommand(channelRepo channelcfg.Repository) *SetChannelCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	return &SetChannelCommand{
		BaseCommand: BaseCommand{
			Name:                     "setchannel",
			Description:              "Set the channel the alphabet counting game runs in",
			DefaultMemberPermissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "The counting channel",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		channelRepo: channelRepo,
	}
}

// Handle processes the /setchannel command
func (c *SetChannelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	var channelID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(s).ID
		}
	}

	if channelID == "" {
		return RespondWithEphemeralMessage(s, i, "No channel selected.")
	}

	err := c.channelRepo.Set(context.Background(), &channelcfg.SetInput{
		ChannelID: channelID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to save channel: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Alphabet counting channel set to <#%s>.", channelID))
}
