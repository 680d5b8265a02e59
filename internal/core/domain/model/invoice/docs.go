// Package invoice contains the Invoice aggregate: the billing document for a
// delivery order. An invoice starts as a draft mirroring the order's total
// and becomes immutable once issued.
package invoice
