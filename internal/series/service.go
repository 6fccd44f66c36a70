package series

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Converter populates the converted-amount maps of budgets, one entry
// per workspace currency. Implementations may fail for individual
// budgets, such failures must be swallowed: a budget row without an
// amount map is valid and reporting treats missing currencies as zero.
type Converter interface {
	ConvertBudgets(db *gorm.DB, budgetIDs []uuid.UUID, workspaceID uuid.UUID) error
}

// Service is the budget series engine. All entry points take explicit
// horizon dates, the service never reads the clock.
type Service struct {
	db        *gorm.DB
	converter Converter
}

// NewService creates a Service.
func NewService(db *gorm.DB, converter Converter) *Service {
	return &Service{
		db:        db,
		converter: converter,
	}
}
