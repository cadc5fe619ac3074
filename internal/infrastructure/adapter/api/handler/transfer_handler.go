package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles transfer HTTP requests
type TransferHandler struct {
	transferUseCase usecase.TransferUseCase
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transferUseCase usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transferUseCase: transferUseCase,
		logger:          logger,
	}
}

// Transfer handles the POST /transfers endpoint
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid transfer request format", map[string]any{
			"error": err.Error(),
		})
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	result, err := h.transferUseCase.AccountTransfer(c.Request.Context(), req.FromID, req.ToID, req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferResponse(result))
}
