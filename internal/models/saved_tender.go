package models

import "time"

// SavedTender represents a user bookmark on a tender, independent of matching.
type SavedTender struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TenderID  string    `json:"tenderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// SavedTenderWithTender is a bookmark joined with its tender for listing.
type SavedTenderWithTender struct {
	SavedTender
	Tender Tender `json:"tender"`
}
