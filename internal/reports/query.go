package reports

import (
	"fmt"
	"strings"
)

// Label fallbacks for fact rows whose dimension row is missing.
const (
	itemLabelExpr     = `COALESCE(i.item_name, 'Item #' || CAST(%s.item_id AS TEXT))`
	storeLabelExpr    = `COALESCE(s.store_name, 'Store ' || CAST(%s.store_id AS TEXT))`
	categoryLabelExpr = `COALESCE(c.category_name, 'Category #' || CAST(%s.category_id AS TEXT), 'Uncategorized')`
)

func itemLabel(alias string) string     { return fmt.Sprintf(itemLabelExpr, alias) }
func storeLabel(alias string) string    { return fmt.Sprintf(storeLabelExpr, alias) }
func categoryLabel(alias string) string { return fmt.Sprintf(categoryLabelExpr, alias) }

// selectQuery assembles a read query from constant SQL fragments. Values only
// ever travel through args, bound to ? placeholders.
type selectQuery struct {
	columns []string
	from    string
	joins   []string
	// joinArgs bind placeholders inside joins, which render before conds.
	joinArgs []any
	conds    []string
	groupBy  []string
	orderBy  []string
	args     []any
	limit    int
	offset   int
}

func newSelect(from string, columns ...string) *selectQuery {
	return &selectQuery{from: from, columns: columns}
}

func (q *selectQuery) leftJoin(clause string) *selectQuery {
	q.joins = append(q.joins, "LEFT JOIN "+clause)
	return q
}

// join adds an inner join whose clause may carry its own placeholders.
func (q *selectQuery) join(clause string, args ...any) *selectQuery {
	q.joins = append(q.joins, "JOIN "+clause)
	q.joinArgs = append(q.joinArgs, args...)
	return q
}

func (q *selectQuery) where(clause string, args ...any) *selectQuery {
	q.conds = append(q.conds, clause)
	q.args = append(q.args, args...)
	return q
}

// between restricts column to the inclusive business date window.
func (q *selectQuery) between(column string, start, end Date) *selectQuery {
	return q.where(column+" BETWEEN ? AND ?", start.String(), end.String())
}

// equalIf adds column = ? only when value is present.
func (q *selectQuery) equalIf(column string, value *int64) *selectQuery {
	if value == nil {
		return q
	}
	return q.where(column+" = ?", *value)
}

func (q *selectQuery) group(columns ...string) *selectQuery {
	q.groupBy = append(q.groupBy, columns...)
	return q
}

func (q *selectQuery) order(columns ...string) *selectQuery {
	q.orderBy = append(q.orderBy, columns...)
	return q
}

func (q *selectQuery) page(limit, offset int) *selectQuery {
	q.limit = limit
	q.offset = offset
	return q
}

func (q *selectQuery) build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	for _, join := range q.joins {
		sb.WriteString(" ")
		sb.WriteString(join)
	}
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	if len(q.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(q.groupBy, ", "))
	}
	if len(q.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.orderBy, ", "))
	}

	args := append(append([]any(nil), q.joinArgs...), q.args...)
	if q.limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, q.limit)
		if q.offset > 0 {
			sb.WriteString(" OFFSET ?")
			args = append(args, q.offset)
		}
	}
	return sb.String(), args
}
