package domain

import "time"

// RevenueEntry records income for a period. Type tags the period the amount
// covers ("daily" unless stated otherwise).
type RevenueEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
