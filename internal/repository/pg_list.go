package repository

import (
	"strconv"

	"github.com/devservices/backend/internal/model"
)

// pgListClause builds "WHERE ... ORDER BY ... LIMIT ... OFFSET ..." for the
// status-bearing tables. args holds the parameters in placeholder order.
func pgListClause(opts model.ListOptions) (clause string, args []any) {
	if opts.Status != "" {
		args = append(args, string(opts.Status))
		clause = "WHERE status = $1 "
	}

	dir := "DESC"
	if opts.Ascending {
		dir = "ASC"
	}
	clause += "ORDER BY created_at " + dir + ", id " + dir

	args = append(args, opts.Limit, opts.Offset)
	clause += " LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))
	return clause, args
}

// pgCountClause builds the optional status filter for COUNT queries.
func pgCountClause(status model.Status) (string, []any) {
	if status == "" {
		return "", nil
	}
	return " WHERE status = $1", []any{string(status)}
}
