package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestContainsCustomEmoji(t *testing.T) {
	tests := []struct {
		content  string
		expected bool
	}{
		{"<:pepe:123456789>", true},
		{"<a:dance:987654321>", true},
		{"A <:pepe:123>", true},
		{"A", false},
		{"😀", false},
		{"<notanemoji>", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, containsCustomEmoji(tt.content), "content %q", tt.content)
	}
}

func TestHasCommandPrefix(t *testing.T) {
	tests := []struct {
		content  string
		expected bool
	}{
		{"+leaderboard", true},
		{"-something", true},
		{"  +spaced", true},
		{"A", false},
		{"a+b", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, hasCommandPrefix(tt.content), "content %q", tt.content)
	}
}

func TestHasMention(t *testing.T) {
	assert.True(t, hasMention(&discordgo.Message{
		Mentions: []*discordgo.User{{ID: "1"}},
	}))
	assert.True(t, hasMention(&discordgo.Message{
		MentionRoles: []string{"1"},
	}))
	assert.True(t, hasMention(&discordgo.Message{
		MentionEveryone: true,
	}))
	assert.True(t, hasMention(&discordgo.Message{
		Content: "go to <#123456>",
	}))
	assert.False(t, hasMention(&discordgo.Message{
		Content: "B",
	}))
}
