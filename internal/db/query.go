package db

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PSQL is a squirrel builder using postgres $n placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NormalizePage clamps page (1-based) and limit to sane values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func Paginate(b sq.SelectBuilder, page, limit int) sq.SelectBuilder {
	page, limit = NormalizePage(page, limit)
	return b.Limit(uint64(limit)).Offset(uint64((page - 1) * limit))
}

// OrderBy applies a whitelisted sort column. sortBy values not present in
// allowed fall back to fallback; order is "asc" or "desc" (default desc).
func OrderBy(b sq.SelectBuilder, sortBy, order string, allowed map[string]string, fallback string) sq.SelectBuilder {
	column, ok := allowed[sortBy]
	if !ok {
		column = allowed[fallback]
	}
	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}
	return b.OrderBy(column + " " + direction)
}
