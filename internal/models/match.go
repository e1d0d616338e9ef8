package models

import "time"

// TenderMatch represents a scored (user, tender) pair. At most one row exists
// per pair; re-running matching refreshes the score and reasons in place.
type TenderMatch struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	TenderID     string    `json:"tenderId"`
	MatchScore   int       `json:"matchScore"`
	MatchReasons []string  `json:"matchReasons"`
	IsViewed     bool      `json:"isViewed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MatchWithTender is a match joined with its tender for listing.
type MatchWithTender struct {
	TenderMatch
	Tender Tender `json:"tender"`
}
