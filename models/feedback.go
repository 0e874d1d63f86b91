package models

// FeedbackEntry is one anonymous rating submitted after using the service
type FeedbackEntry struct {
	ID        string `json:"id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}
