package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of orders, optionally filtered by status.
// Page numbers start at 1.
type ListOrdersQuery struct {
	page   int
	limit  int
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated list query. A zero page or limit
// falls back to the defaults; statusFilter is the wire form of a status, or
// empty for no filter.
func NewListOrdersQuery(page, limit int, statusFilter string) (ListOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}

	q := ListOrdersQuery{
		page:  page,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// ListOrdersQueryResponse is one page of the order list projection.
type ListOrdersQueryResponse struct {
	Orders     []OrderSummary
	Page       int
	Limit      int
	TotalCount int64
}

// OrderSummary is one row of the list projection: enough for the back-office
// overview table, without items or payments.
type OrderSummary struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	Status     string
	TotalMinor int64
	ItemCount  int
}
