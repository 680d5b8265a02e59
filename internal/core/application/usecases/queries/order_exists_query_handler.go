package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderExistsQueryHandler answers order existence checks.
//
// The answer is deliberately a plain boolean: a malformed query or a database
// failure is reported as "does not exist" rather than as an error. The
// consumer uses this to gate invoice creation, and a missing confirmation
// must block the invoice the same way a confirmed absence does.
type OrderExistsQueryHandler struct {
	db *gorm.DB
}

// NewOrderExistsQueryHandler creates a handler for existence checks.
func NewOrderExistsQueryHandler(db *gorm.DB) OrderExistsQueryHandler {
	return OrderExistsQueryHandler{db: db}
}

// Handle reports whether the order exists. Never returns an error.
func (h OrderExistsQueryHandler) Handle(ctx context.Context, query OrderExistsQuery) bool {
	if err := query.Validate(); err != nil {
		return false
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1)
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&count).Error
	if err != nil {
		return false
	}

	return count > 0
}
