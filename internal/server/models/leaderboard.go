package models

// LeaderboardRow is one user's saved-analysis tally as read from the store.
type LeaderboardRow struct {
	UserID        string
	DisplayName   string
	SavedAnalyses int
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role string
	Text string
}
