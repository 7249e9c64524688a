package discord

import (
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// customEmojiPattern matches Discord custom emoji markup like <:name:123>
// or animated <a:name:123>
var customEmojiPattern = regexp.MustCompile(`<a?:\w+:\d+>`)

// channelMentionPattern matches channel references like <#123>
var channelMentionPattern = regexp.MustCompile(`<#\d+>`)

// containsCustomEmoji reports whether the content includes custom emoji
// markup anywhere; such messages are never counting attempts
func containsCustomEmoji(content string) bool {
	return customEmojiPattern.MatchString(content)
}

// hasCommandPrefix reports whether the trimmed content starts with a
// bot command prefix
func hasCommandPrefix(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "-")
}

// hasMention reports whether the message mentions users, roles,
// everyone, or channels
func hasMention(m *discordgo.Message) bool {
	if len(m.Mentions) > 0 || len(m.MentionRoles) > 0 || m.MentionEveryone {
		return true
	}
	return channelMentionPattern.MatchString(m.Content)
}
