package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/alphie/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// StatsCommand implements the /mystats command
type StatsCommand struct {
	BaseCommand
	gameService game.Service
}

// NewStatsCommand creates the stats command handler
func NewStatsCommand(gameService game.Service) *StatsCommand {
	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "mystats",
			Description: "Show alphabet counting stats for you or another user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to look up (defaults to you)",
					Required:    false,
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes the /mystats command
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" || i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "Stats are only available in a server.")
	}

	target := i.Member.User
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			target = opt.UserValue(s)
		}
	}

	out, err := c.gameService.GetStats(context.Background(), &game.GetStatsInput{
		UserID:  target.ID,
		GuildID: i.GuildID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to load stats: %v", err))
	}

	stats := out.Stats
	if stats.Correct == 0 && stats.Wrong == 0 {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No stats found for %s.", target.Username))
	}

	requester := i.Member.User
	embed := renderStatsEmbed(target.Username, target.AvatarURL(""), stats,
		requester.Username, requester.AvatarURL(""))

	return RespondWithEmbed(s, i, embed, nil)
}
