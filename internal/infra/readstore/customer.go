package readstore

import (
	"context"
	"time"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/infra/db"
	"admin-dashboard/internal/pkg/pgconv"
	"admin-dashboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	listCustomersSQL = `
		SELECT chat_id, name, phone, language, registered_at, last_activity
		FROM customers
		ORDER BY last_activity DESC NULLS LAST`

	searchCustomersSQL = `
		SELECT chat_id, name, phone, language, registered_at, last_activity
		FROM customers
		WHERE chat_id ILIKE $1 OR name ILIKE $1 OR phone ILIKE $1
		ORDER BY last_activity DESC NULLS LAST`

	recentCustomersSQL = `
		SELECT chat_id, name, phone, language, registered_at, last_activity
		FROM customers
		ORDER BY last_activity DESC NULLS LAST
		LIMIT $1`
)

type CustomerReadStore struct {
	db      db.DBTX
	timeout time.Duration
}

func NewCustomerReadStore(dbtx db.DBTX, timeout time.Duration) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx, timeout: timeout}
}

func (r *CustomerReadStore) Search(ctx context.Context, search string) ([]*queries.CustomerView, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows pgx.Rows
	var err error
	if search == "" {
		rows, err = r.db.Query(ctx, listCustomersSQL)
	} else {
		rows, err = r.db.Query(ctx, searchCustomersSQL, "%"+search+"%")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search customers", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

func (r *CustomerReadStore) Recent(ctx context.Context, limit int32) ([]*queries.CustomerView, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, recentCustomersSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent customers", err)
	}
	defer rows.Close()

	return scanCustomerRows(rows)
}

func scanCustomerRows(rows pgx.Rows) ([]*queries.CustomerView, error) {
	var result []*queries.CustomerView
	for rows.Next() {
		var (
			chatID       string
			name         pgtype.Text
			phone        pgtype.Text
			language     pgtype.Text
			registeredAt pgtype.Timestamptz
			lastActivity pgtype.Timestamptz
		)
		if err := rows.Scan(&chatID, &name, &phone, &language, &registeredAt, &lastActivity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, &queries.CustomerView{
			ChatID:       chatID,
			Name:         pgconv.StringFromPgtype(name),
			Phone:        pgconv.StringFromPgtype(phone),
			Language:     pgconv.StringFromPgtype(language),
			RegisteredAt: pgconv.TimeFromPgtype(registeredAt),
			LastActivity: pgconv.TimePtrFromPgtype(lastActivity),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer rows", err)
	}
	return result, nil
}
