package models

import "time"

type TenderStatus string // Tender lifecycle status

const (
	ActiveTender    TenderStatus = "active"
	ClosedTender    TenderStatus = "closed"
	AwardedTender   TenderStatus = "awarded"
	CancelledTender TenderStatus = "cancelled"
)

// Tender represents one procurement opportunity ingested from the eTenders
// Portal. Status is authoritative for matchability; the closing date is
// informational. Tenders are deactivated, never deleted, so match history
// keeps its references.
type Tender struct {
	ID             string       `json:"id"`
	OCID           *string      `json:"ocid,omitempty"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Department     string       `json:"department"`
	Category       string       `json:"category"`
	Province       string       `json:"province"`
	ValueMin       *float64     `json:"valueMin,omitempty"`
	ValueMax       *float64     `json:"valueMax,omitempty"`
	ClosingDate    *time.Time   `json:"closingDate,omitempty"`
	AdvertisedDate *time.Time   `json:"advertisedDate,omitempty"`
	Status         TenderStatus `json:"status"`
	Requirements   []string     `json:"requirements"`
	DocumentURL    *string      `json:"documentUrl,omitempty"`
	CIDBRequired   *string      `json:"cidbRequired,omitempty"`
	BBBEERequired  *string      `json:"bbbeeRequired,omitempty"`
	IsActive       bool         `json:"isActive"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// TenderFilter holds the optional filters for listing tenders.
type TenderFilter struct {
	Categories []string
	Province   string
	ValueMin   *float64
	ValueMax   *float64
	Status     string
	Search     string
	Limit      int
	Offset     int
}

// Stats summarises catalog and per-user engagement counts.
type Stats struct {
	ActiveTenders   int `json:"activeTenders"`
	MatchingTenders int `json:"matchingTenders"`
	SavedTenders    int `json:"savedTenders"`
}
