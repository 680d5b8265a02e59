package ports

import (
	"context"

	"lastmile/internal/core/domain/model/kernel"
)

// OrderExistenceChecker verifies against the order service that an order
// exists before billing it. Implementations must distinguish a confirmed
// "order does not exist" answer (false, nil) from a failed check (false, err):
// the caller treats the former as a bad request and the latter as an upstream
// outage.
type OrderExistenceChecker interface {
	OrderExists(ctx context.Context, orderID kernel.UUID) (bool, error)
}
