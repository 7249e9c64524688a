package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/alphie/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorGold  = 0xF1C40F
	colorGreen = 0x2ECC71
	colorBlue  = 0x3498DB
	colorRed   = 0xE74C3C
)

// maxPages returns the page count for a leaderboard of a given length
func maxPages(entries, pageSize int) int {
	if entries <= 0 {
		return 1
	}
	return (entries-1)/pageSize + 1
}

// medal returns the rank marker for a 1-indexed leaderboard position
func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}

// leaderboardView carries everything needed to render one page of the
// leaderboard
type leaderboardView struct {
	Entries      []models.LeaderboardEntry
	Page         int
	PageSize     int
	IsGlobal     bool
	GuildName    string
	GuildIconURL string
	BotIconURL   string

	// NameFor resolves a user ID to a display name
	NameFor func(userID string) string
}

// renderLeaderboardEmbed builds the leaderboard embed for one page
func renderLeaderboardEmbed(view *leaderboardView) *discordgo.MessageEmbed {
	start := view.Page * view.PageSize
	end := start + view.PageSize
	if end > len(view.Entries) {
		end = len(view.Entries)
	}

	var description strings.Builder
	for idx := start; idx < end; idx++ {
		entry := view.Entries[idx]
		description.WriteString(fmt.Sprintf("%s **%s** → **%d** points\n",
			medal(idx+1), view.NameFor(entry.UserID), entry.Score))
	}

	if description.Len() == 0 {
		description.WriteString("No scores yet!")
	}

	title := fmt.Sprintf("🏆 %s Leaderboard", view.GuildName)
	color := colorGold
	thumbnailURL := view.GuildIconURL
	if view.IsGlobal {
		title = "🌎 Global Alphabet Masters"
		color = colorBlue
		thumbnailURL = ""
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description.String(),
		Color:       color,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    "Top Alphabet Counters",
			IconURL: view.BotIconURL,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d • Use buttons to navigate", view.Page+1, maxPages(len(view.Entries), view.PageSize)),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if thumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: thumbnailURL}
	}

	return embed
}

// renderLeaderboardComponents builds the toggle and pagination buttons
// for a leaderboard session
func renderLeaderboardComponents(sessionID string, page, pages int, isGlobal bool) []discordgo.MessageComponent {
	toggleLabel := "Global Leaderboard"
	if isGlobal {
		toggleLabel = "Server Leaderboard"
	}

	toggleButton := discordgo.Button{
		Label:    toggleLabel,
		Style:    discordgo.PrimaryButton,
		CustomID: leaderboardCustomID(sessionID, leaderboardActionToggle),
	}

	prevButton := discordgo.Button{
		Label:    "Previous",
		Style:    discordgo.SecondaryButton,
		CustomID: leaderboardCustomID(sessionID, leaderboardActionPrev),
		Disabled: page == 0,
	}

	pageIndicator := discordgo.Button{
		Label:    fmt.Sprintf("Page %d/%d", page+1, pages),
		Style:    discordgo.SecondaryButton,
		CustomID: leaderboardCustomID(sessionID, leaderboardActionPage),
		Disabled: true,
	}

	nextButton := discordgo.Button{
		Label:    "Next",
		Style:    discordgo.SecondaryButton,
		CustomID: leaderboardCustomID(sessionID, leaderboardActionNext),
		Disabled: page >= pages-1,
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{toggleButton, prevButton, pageIndicator, nextButton},
		},
	}
}

// accuracyBar renders a ten-segment bar for an accuracy percentage
func accuracyBar(accuracy float64) string {
	filled := int(accuracy / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("■", filled) + strings.Repeat("□", 10-filled)
}

// statsColor maps a global score to an embed color
func statsColor(score int) int {
	switch {
	case score > 20:
		return colorGold
	case score > 10:
		return colorGreen
	case score > 0:
		return colorBlue
	default:
		return colorRed
	}
}

// performanceLine maps a global score to an encouragement line
func performanceLine(score int) string {
	switch {
	case score > 20:
		return "🌟 You're a counting master!"
	case score > 10:
		return "✨ Great job keeping the alphabet going!"
	case score > 0:
		return "👍 You're contributing positively!"
	default:
		return "💪 Keep practicing, you'll improve!"
	}
}

// renderStatsEmbed builds the personal stats embed for a user. The
// requester is credited in the footer; it may differ from the user
// being looked up.
func renderStatsEmbed(username, avatarURL string, stats *models.ScoreSummary, requesterName, requesterIconURL string) *discordgo.MessageEmbed {
	globalScore := stats.Correct - stats.Wrong
	serverScore := stats.GuildCorrect - stats.GuildWrong

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s's Alphabet Counting Stats", username),
		Color: statsColor(globalScore),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "🌍 Global Stats",
				Value: fmt.Sprintf(
					"✅ **Correct**: %d\n❌ **Wrong**: %d\n📊 **Accuracy**: %.1f%%\n🏆 **Score**: %d",
					stats.Correct, stats.Wrong, stats.Accuracy, globalScore),
				Inline: true,
			},
			{
				Name: "🏠 Server Stats",
				Value: fmt.Sprintf(
					"✅ **Correct**: %d\n❌ **Wrong**: %d\n📊 **Accuracy**: %.1f%%\n🏆 **Score**: %d",
					stats.GuildCorrect, stats.GuildWrong, stats.GuildAccuracy, serverScore),
				Inline: true,
			},
			{
				Name:   "💬 Performance",
				Value:  performanceLine(globalScore),
				Inline: false,
			},
			{
				Name: "📈 Accuracy Visualization",
				Value: fmt.Sprintf("Global: %s %.1f%%\nServer: %s %.1f%%",
					accuracyBar(stats.Accuracy), stats.Accuracy,
					accuracyBar(stats.GuildAccuracy), stats.GuildAccuracy),
				Inline: false,
			},
		},
	}

	if avatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatarURL}
	}

	if requesterName != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    fmt.Sprintf("Requested by %s", requesterName),
			IconURL: requesterIconURL,
		}
	}

	embed.Timestamp = time.Now().Format(time.RFC3339)

	return embed
}
