package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/alphie/internal/models"
	"github.com/KirkDiggler/alphie/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Leaderboard component actions, encoded into button custom IDs as
// "leaderboard:{sessionID}:{action}"
const (
	leaderboardComponentPrefix = "leaderboard"
	leaderboardActionToggle    = "toggle"
	leaderboardActionPrev      = "prev"
	leaderboardActionNext      = "next"
	leaderboardActionPage      = "page"
)

// leaderboardCustomID builds a component custom ID for a session action
func leaderboardCustomID(sessionID, action string) string {
	return fmt.Sprintf("%s:%s:%s", leaderboardComponentPrefix, sessionID, action)
}

// parseLeaderboardCustomID splits a component custom ID into its
// session ID and action
func parseLeaderboardCustomID(customID string) (sessionID, action string, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != leaderboardComponentPrefix {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// LeaderboardCommand implements the /leaderboard command with a
// paginated, global/server-toggleable embed
type LeaderboardCommand struct {
	BaseCommand
	gameService game.Service
	sessions    *sessionStore
	pageSize    int
}

// NewLeaderboardCommand creates the leaderboard command handler
func NewLeaderboardCommand(gameService game.Service, sessions *sessionStore, pageSize int) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the alphabet counting leaderboard",
		},
		gameService: gameService,
		sessions:    sessions,
		pageSize:    pageSize,
	}
}

// Handle processes the /leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.GuildID == "" {
		return RespondWithEphemeralMessage(s, i, "The leaderboard is only available in a server.")
	}

	sessionID, session := c.sessions.Create(i.GuildID)

	entries, err := c.fetchEntries(session)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to load leaderboard: %v", err))
	}

	if len(entries) == 0 && !session.IsGlobal {
		return RespondWithEphemeralMessage(s, i, "No one has scored yet!")
	}

	embed := renderLeaderboardEmbed(c.view(s, session, entries))
	components := renderLeaderboardComponents(sessionID, session.Page,
		maxPages(len(entries), c.pageSize), session.IsGlobal)

	return RespondWithEmbed(s, i, embed, components)
}

// HandleComponent processes leaderboard button clicks. All view-state
// mutation happens inside sessionStore.Update so simultaneous clicks
// from different gateway goroutines cannot race.
func (c *LeaderboardCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID, action string) error {
	switch action {
	case leaderboardActionToggle, leaderboardActionPrev, leaderboardActionNext:
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown action: %s", action))
	}

	session, ok := c.sessions.Update(sessionID, func(state *leaderboardSession) {
		switch action {
		case leaderboardActionToggle:
			state.IsGlobal = !state.IsGlobal
			state.Page = 0
		case leaderboardActionPrev:
			if state.Page > 0 {
				state.Page--
			}
		case leaderboardActionNext:
			state.Page++
		}
	})
	if !ok {
		return RespondWithEphemeralMessage(s, i, "This leaderboard has expired. Run /leaderboard again.")
	}

	entries, err := c.fetchEntries(session)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Failed to load leaderboard: %v", err))
	}

	pages := maxPages(len(entries), c.pageSize)
	if session.Page >= pages {
		clamped, ok := c.sessions.Update(sessionID, func(state *leaderboardSession) {
			if state.Page >= pages {
				state.Page = pages - 1
			}
		})
		if ok {
			session = clamped
		} else {
			session.Page = pages - 1
		}
	}

	embed := renderLeaderboardEmbed(c.view(s, session, entries))
	components := renderLeaderboardComponents(sessionID, session.Page, pages, session.IsGlobal)

	return UpdateWithEmbed(s, i, embed, components)
}

// fetchEntries loads the leaderboard for the session's current scope
func (c *LeaderboardCommand) fetchEntries(session leaderboardSession) ([]models.LeaderboardEntry, error) {
	input := &game.GetLeaderboardInput{
		Scope: models.LeaderboardScopeGlobal,
	}
	if !session.IsGlobal {
		input.Scope = models.LeaderboardScopeGuild
		input.GuildID = session.GuildID
	}

	out, err := c.gameService.GetLeaderboard(context.Background(), input)
	if err != nil {
		return nil, err
	}

	return out.Entries, nil
}

// view assembles the render input for one leaderboard page
func (c *LeaderboardCommand) view(s *discordgo.Session, session leaderboardSession, entries []models.LeaderboardEntry) *leaderboardView {
	guildName := "Server"
	guildIconURL := ""
	if guild, err := s.State.Guild(session.GuildID); err == nil {
		if guild.Name != "" {
			guildName = guild.Name
		}
		guildIconURL = guild.IconURL("")
	}

	botIconURL := ""
	if s.State.User != nil {
		botIconURL = s.State.User.AvatarURL("")
	}

	return &leaderboardView{
		Entries:      entries,
		Page:         session.Page,
		PageSize:     c.pageSize,
		IsGlobal:     session.IsGlobal,
		GuildName:    guildName,
		GuildIconURL: guildIconURL,
		BotIconURL:   botIconURL,
		NameFor:      nameResolver(s),
	}
}

// nameResolver returns a user ID to username resolver backed by the
// Discord API
func nameResolver(s *discordgo.Session) func(userID string) string {
	return func(userID string) string {
		if user, err := s.User(userID); err == nil && user.Username != "" {
			return user.Username
		}
		return fmt.Sprintf("User %s", userID)
	}
}
