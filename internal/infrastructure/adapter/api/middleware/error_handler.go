package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and renders errors that handlers attached
// with c.Error as an ErrorResponse
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader(RequestIDHeader),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := domainerr.ErrorCode(err)
		status := StatusFromCode(code)

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetHeader(RequestIDHeader),
			"error_code": code,
			"error":      err.Error(),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Debug("Request rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    code,
			Message: publicMessage(code, err),
		})
	}
}

// StatusFromCode maps an error code to its HTTP status
func StatusFromCode(code int) int {
	switch code {
	case domainerr.CodeInvalidRequest,
		domainerr.CodeInvalidAmount,
		domainerr.CodeInsufficientBalance,
		domainerr.CodeInvalidMemberID,
		domainerr.CodeSameMember,
		domainerr.CodeTransferRejected:
		return http.StatusBadRequest
	case domainerr.CodeMemberNotFound, domainerr.CodeNotFound:
		return http.StatusNotFound
	case domainerr.CodeConstraintViolation:
		return http.StatusConflict
	case domainerr.CodeResourceExhausted, domainerr.CodeConnectFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage hides store details from clients
func publicMessage(code int, err error) string {
	switch code {
	case domainerr.CodeResourceExhausted, domainerr.CodeConnectFailed:
		return "Service temporarily unavailable"
	case domainerr.CodeTransactionFailed:
		return "Transaction outcome unknown"
	case domainerr.CodeStore, domainerr.CodeInternalServer:
		return "Internal server error"
	case domainerr.CodeConstraintViolation:
		return "Conflicting data"
	default:
		return err.Error()
	}
}
