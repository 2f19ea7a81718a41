package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jobhub/internal/common"
)

func uuidArray(ids []common.UUID) pq.StringArray {
	out := make(pq.StringArray, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func toUUIDs(values pq.StringArray) []common.UUID {
	if len(values) == 0 {
		return nil
	}
	out := make([]common.UUID, len(values))
	for i, value := range values {
		out[i] = common.UUID(value)
	}
	return out
}

// ensureMember appends member to a uuid[] column as a single idempotent
// write: appending an id that is already present matches zero rows and is a
// no-op, so concurrent or retried paired updates never duplicate entries.
// table and column are package constants, never caller input.
func ensureMember(ctx context.Context, db *sql.DB, table, column string, id, member common.UUID, notFoundMsg string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_append(%s, $2::uuid), updated_at = $3 WHERE id = $1 AND NOT ($2::uuid = ANY (coalesce(%s, '{}')))`, table, column, column, column)
	result, err := db.ExecContext(ctx, query, id, member, time.Now().UTC())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update "+table+" "+column, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return notFoundUnlessExists(ctx, db, table, id, notFoundMsg)
	}
	return nil
}

func removeMember(ctx context.Context, db *sql.DB, table, column string, id, member common.UUID, notFoundMsg string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = array_remove(%s, $2::uuid), updated_at = $3 WHERE id = $1`, table, column, column)
	result, err := db.ExecContext(ctx, query, id, member, time.Now().UTC())
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update "+table+" "+column, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, notFoundMsg, sql.ErrNoRows)
	}
	return nil
}

func notFoundUnlessExists(ctx context.Context, db *sql.DB, table string, id common.UUID, notFoundMsg string) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return common.NewError(common.CodeInternal, "failed to probe "+table, err)
	}
	if !exists {
		return common.NewError(common.CodeNotFound, notFoundMsg, sql.ErrNoRows)
	}
	return nil
}
