package transfer

import (
	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
)

// Service moves money between members. Every transfer runs as one unit of
// work: both balances change or neither does.
type Service struct {
	transactor persistence.Transactor
	validator  *RecipientValidator
	isolation  persistence.IsolationLevel
	logger     coreport.Logger
}

// NewService creates a new transfer service
func NewService(
	transactor persistence.Transactor,
	validator *RecipientValidator,
	isolation persistence.IsolationLevel,
	logger coreport.Logger,
) *Service {
	if validator == nil {
		validator = NewRecipientValidator(nil)
	}

	return &Service{
		transactor: transactor,
		validator:  validator,
		isolation:  isolation,
		logger:     logger,
	}
}
