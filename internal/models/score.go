package models

// ScoreSummary is the stats view for a user scoped to one guild
type ScoreSummary struct {
	// Correct is the global accepted-turn count
	Correct int

	// Wrong is the global rejected-turn count
	Wrong int

	// Accuracy is correct/(correct+wrong) as a percentage, 0 with no attempts
	Accuracy float64

	// GuildCorrect is the accepted-turn count within the requested guild
	GuildCorrect int

	// GuildWrong is the rejected-turn count within the requested guild
	GuildWrong int

	// GuildAccuracy is the accuracy percentage within the requested guild
	GuildAccuracy float64
}

// Accuracy computes a percentage from correct and wrong counts
func Accuracy(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
