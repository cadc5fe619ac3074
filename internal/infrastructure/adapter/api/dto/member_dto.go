package dto

import "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"

// CreateMemberRequest represents the API request for registering a member
type CreateMemberRequest struct {
	MemberID string `json:"memberId" binding:"required"`
	Money    *int64 `json:"money" binding:"required"`
}

// MemberResponse represents a member and its balance
type MemberResponse struct {
	MemberID string `json:"memberId"`
	Money    int64  `json:"money"`
}

// NewMemberResponse converts a domain member
func NewMemberResponse(m *entity.Member) MemberResponse {
	return MemberResponse{MemberID: m.ID, Money: m.Money()}
}
