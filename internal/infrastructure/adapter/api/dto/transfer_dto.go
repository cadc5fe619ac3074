package dto

import "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"

// TransferRequest represents the API request for moving money between members
type TransferRequest struct {
	FromID string `json:"fromId" binding:"required"`
	ToID   string `json:"toId" binding:"required"`
	Amount int64  `json:"amount"`
}

// TransferResponse represents a committed transfer
type TransferResponse struct {
	TransactionID string `json:"transactionId"`
	FromID        string `json:"fromId"`
	ToID          string `json:"toId"`
	Amount        int64  `json:"amount"`
	FromBalance   int64  `json:"fromBalance"`
	ToBalance     int64  `json:"toBalance"`
}

// NewTransferResponse converts a transfer result
func NewTransferResponse(r *entity.TransferResult) TransferResponse {
	return TransferResponse{
		TransactionID: r.TransactionID,
		FromID:        r.FromID,
		ToID:          r.ToID,
		Amount:        r.Amount,
		FromBalance:   r.FromBalance,
		ToBalance:     r.ToBalance,
	}
}
