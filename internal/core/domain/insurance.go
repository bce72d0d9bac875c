package domain

import (
	"errors"
	"time"
)

// ClaimStatus represents the review state of an insurance claim.
type ClaimStatus string

const (
	ClaimSubmitted ClaimStatus = "SUBMITTED"
	ClaimApproved  ClaimStatus = "APPROVED"
	ClaimPending   ClaimStatus = "PENDING"
)

var (
	ErrClaimNotFound      = errors.New("insurance claim not found")
	ErrInvalidClaimStatus = errors.New("invalid claim status")
)

// ValidClaimStatus reports whether s is a known claim status.
func ValidClaimStatus(s ClaimStatus) bool {
	switch s {
	case ClaimSubmitted, ClaimApproved, ClaimPending:
		return true
	}
	return false
}

// InsuranceClaim is a flat insurance claim document.
type InsuranceClaim struct {
	ID           string      `json:"id"`
	ClaimNumber  string      `json:"claimNumber"`
	PolicyHolder string      `json:"policyHolder"`
	Status       ClaimStatus `json:"status"`
	ClaimAmount  float64     `json:"claimAmount"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ClaimUpdate carries the mutable fields of a claim. Nil fields are left
// untouched.
type ClaimUpdate struct {
	ClaimNumber  *string
	PolicyHolder *string
	Status       *ClaimStatus
	ClaimAmount  *float64
}
