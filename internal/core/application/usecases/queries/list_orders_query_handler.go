package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves the back-office order list straight from
// the database. The projection reads the stored totals; recomputation is
// reserved for the single-order read.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first; ties break on id for
// a stable page order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	countSQL := `SELECT COUNT(*) FROM orders`
	listSQL := `
		SELECT
			o.id,
			o.number,
			o.customer_id,
			o.status,
			o.total_minor,
			(SELECT COUNT(*) FROM line_items li WHERE li.order_id = o.id) AS item_count
		FROM orders o
	`
	var args []any
	if query.Status() != nil {
		countSQL += ` WHERE status = ?`
		listSQL += ` WHERE o.status = ?`
		args = append(args, query.Status().String())
	}
	listSQL += `
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`

	var totalCount int64
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&totalCount).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(listSQL, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0, query.Limit())
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			summary    OrderSummary
		)
		if err = rows.Scan(
			&id,
			&summary.Number,
			&customerID,
			&summary.Status,
			&summary.TotalMinor,
			&summary.ItemCount,
		); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:     summaries,
		Page:       query.Page(),
		Limit:      query.Limit(),
		TotalCount: totalCount,
	}, nil
}
