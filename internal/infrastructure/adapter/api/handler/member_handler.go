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

// MemberHandler handles member-related HTTP requests
type MemberHandler struct {
	memberUseCase usecase.MemberUseCase
	logger        coreport.Logger
}

// NewMemberHandler creates a new member handler instance
func NewMemberHandler(memberUseCase usecase.MemberUseCase, logger coreport.Logger) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
		logger:        logger,
	}
}

// CreateMember handles the POST /members endpoint. The response carries the
// ID actually stored, which differs from the requested one when it was taken.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}

	member, err := h.memberUseCase.Create(c.Request.Context(), req.MemberID, *req.Money)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if member.ID != req.MemberID {
		h.logger.Info("Member registered under a derived ID", map[string]any{
			"requested_id": req.MemberID,
			"member_id":    member.ID,
		})
	}

	c.JSON(http.StatusCreated, dto.NewMemberResponse(member))
}

// GetMember handles the GET /members/:memberId endpoint
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.memberUseCase.Get(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMemberResponse(member))
}

// DeleteMember handles the DELETE /members/:memberId endpoint
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.memberUseCase.Delete(c.Request.Context(), c.Param("memberId")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
