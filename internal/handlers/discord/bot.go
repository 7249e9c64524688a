package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/alphie/internal/common/clock"
	"github.com/KirkDiggler/alphie/internal/common/uuid"
	"github.com/KirkDiggler/alphie/internal/picker"
	"github.com/KirkDiggler/alphie/internal/repositories/channelcfg"
	"github.com/KirkDiggler/alphie/internal/services/game"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Reply strings for rejected turns
const (
	repeatTurnReply = "Fuck off loner"
	ruinedReply     = "You ruined it asshole 😡 next alphabet is A"
	editRuinedReply = "You ruined it asshole 😡 next alphabet is A (editing won't save you)"

	rejectEmoji   = "❌"
	fallbackEmoji = "✅"

	// leaderboardTTL matches the original view timeout
	leaderboardTTL = 60 * time.Second
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	config      *Config
	gameService game.Service
	channelRepo channelcfg.Repository
	picker      *picker.Picker
	leaderboard *LeaderboardCommand
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Allowed-channel repository
	ChannelRepo channelcfg.Repository

	// Picker selects the reaction emoji for accepted counts
	Picker *picker.Picker

	// Clock for leaderboard session expiry; defaults to the system clock
	Clock clock.Clock

	// UUID generator for leaderboard session IDs; defaults to random UUIDs
	UUID uuid.UUID

	// Leaderboard entries per page
	PageSize int
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.ChannelRepo == nil {
		return nil, errors.New("channel repository cannot be nil")
	}

	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	sessions := newSessionStore(cfg.Clock, cfg.UUID, leaderboardTTL)

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		config:      cfg,
		gameService: cfg.GameService,
		channelRepo: cfg.ChannelRepo,
		picker:      cfg.Picker,
		leaderboard: NewLeaderboardCommand(cfg.GameService, sessions, cfg.PageSize),
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleMessageUpdate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		b.leaderboard,
		NewStatsCommand(b.gameService),
		NewSetChannelCommand(b.channelRepo),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Info("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).WithField("command", cmdName).Warn("Failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.WithField("command", cmd.GetName()).Info("Registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.WithError(err).WithField("command", i.ApplicationCommandData().Name).
					Error("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		sessionID, action, ok := parseLeaderboardCustomID(customID)
		if !ok {
			return
		}
		if err := b.leaderboard.HandleComponent(s, i, sessionID, action); err != nil {
			log.WithError(err).WithField("custom_id", customID).
				Error("Error handling component interaction")
		}
	}
}

// handleMessageCreate feeds channel messages through the counting game
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if containsCustomEmoji(m.Content) {
		return
	}

	if hasMention(m.Message) {
		return
	}

	if hasCommandPrefix(m.Content) {
		return
	}

	ctx := context.Background()

	if !b.isGameChannel(ctx, m.ChannelID) {
		return
	}

	out, err := b.gameService.Validate(ctx, &game.ValidateInput{
		Text:     m.Content,
		AuthorID: m.Author.ID,
		GuildID:  m.GuildID,
	})
	if err != nil {
		// The outcome may still be valid; only the score write failed
		log.WithError(err).WithField("user_id", m.Author.ID).Error("Failed to validate message")
		if out == nil {
			return
		}
	}

	b.reactToOutcome(s, m.Message, out.Outcome, ruinedReply)
}

// handleMessageUpdate ruins the run when a game-channel message is edited
func (b *Bot) handleMessageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx := context.Background()

	if !b.isGameChannel(ctx, m.ChannelID) {
		return
	}

	out, err := b.gameService.RuinByEdit(ctx, &game.RuinByEditInput{
		AuthorID: m.Author.ID,
		GuildID:  m.GuildID,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", m.Author.ID).Error("Failed to handle message edit")
		if out == nil {
			return
		}
	}

	if err := s.MessageReactionsRemoveAll(m.ChannelID, m.ID); err != nil {
		log.WithError(err).Warn("Failed to clear reactions")
	}

	b.reactToOutcome(s, m.Message, out.Outcome, editRuinedReply)
}

// isGameChannel reports whether a channel is the configured game channel.
// With no channel configured every message is ignored.
func (b *Bot) isGameChannel(ctx context.Context, channelID string) bool {
	allowed, err := b.channelRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, channelcfg.ErrNotConfigured) {
			log.WithError(err).Error("Failed to load allowed channel")
		}
		return false
	}

	return channelID == allowed
}

// reactToOutcome maps a game outcome to the user-visible reaction and reply
func (b *Bot) reactToOutcome(s *discordgo.Session, m *discordgo.Message, outcome game.Outcome, ruinReply string) {
	switch outcome {
	case game.OutcomeAccepted:
		emoji := b.randomGuildEmoji(s, m.GuildID)
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
			log.WithError(err).Warn("Failed to add reaction")
		}
	case game.OutcomeRejectedRepeat:
		b.reject(s, m, repeatTurnReply)
	case game.OutcomeRejectedWrong:
		b.reject(s, m, ruinReply)
	case game.OutcomeIgnored:
		// Nothing to do until someone restarts the sequence
	}
}

// reject marks a message with the reject emoji and posts a reply
func (b *Bot) reject(s *discordgo.Session, m *discordgo.Message, reply string) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, rejectEmoji); err != nil {
		log.WithError(err).Warn("Failed to add reaction")
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.WithError(err).Warn("Failed to send reply")
	}
}

// randomGuildEmoji picks a random emoji from the guild, falling back to
// a plain checkmark when the guild has none
func (b *Bot) randomGuildEmoji(s *discordgo.Session, guildID string) string {
	guild, err := s.State.Guild(guildID)
	if err != nil || len(guild.Emojis) == 0 {
		return fallbackEmoji
	}

	emoji := guild.Emojis[b.picker.Pick(len(guild.Emojis))]
	return emoji.APIName()
}
