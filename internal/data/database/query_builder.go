// Package database builds parameterized list queries with sanitized
// identifiers.
package database

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	ILike              ConditionType = "ILIKE"
	In                 ConditionType = "IN"
	Custom             ConditionType = "CUSTOM"

	defaultLimit  = -1
	defaultOffset = -1
)

type Condition struct {
	Field    string
	Type     ConditionType
	Value    any
	rawQuery *string
}

// WhereCond builds a field/operator/value condition.
func WhereCond(field string, condType ConditionType, value any) Condition {
	if condType == Custom {
		//nolint:forbidigo // panic prevents misuse; custom conditions must provide raw SQL via WhereRawCond.
		panic("Use WhereRawCond for Custom type")
	}
	return Condition{
		rawQuery: nil,
		Field:    field,
		Type:     condType,
		Value:    value,
	}
}

// WhereRawCond builds a raw SQL fragment condition. Placeholders in rawQuery
// are numbered from $1 relative to the fragment and renumbered when the full
// query is assembled.
func WhereRawCond(rawQuery string, params ...any) Condition {
	queryStr := rawQuery
	var value any = params
	if len(params) == 0 {
		value = nil
	} else if len(params) == 1 {
		value = params[0]
	}
	return Condition{
		Field:    "",
		Type:     Custom,
		rawQuery: &queryStr,
		Value:    value,
	}
}

type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Joins      []string
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{
		Table:      table,
		Columns:    []string{},
		CountOnly:  false,
		Joins:      []string{},
		Conditions: []Condition{},
		OrderBy:    "",
		OrderDir:   "",
		Limit:      defaultLimit,
		Offset:     defaultOffset,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithJoin appends a raw JOIN clause. The clause is trusted and must be a
// compile-time constant, never user input.
func WithJoin(join string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Joins = append(o.Joins, join)
	}
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithConditions sets the entire list of conditions.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Conditions = conds
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

// sanitizeIdentifier quotes a single identifier.
func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// sanitizeQualifiedIdentifier quotes qualified identifiers like "table.column".
func sanitizeQualifiedIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	return pgx.Identifier(parts).Sanitize()
}

func sanitizeColumn(col string) string {
	if strings.Contains(col, ".") {
		return sanitizeQualifiedIdentifier(col)
	}
	return sanitizeIdentifier(col)
}

// buildSelectClause generates the SELECT part of the query.
func buildSelectClause(options *ListQueryOptions) string {
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}
	cols := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		cols[i] = sanitizeColumn(col)
	}
	return fmt.Sprintf("SELECT %s ", strings.Join(cols, ", "))
}

// buildPaginationAndOrderClause generates ORDER BY, LIMIT and OFFSET parts.
func buildPaginationAndOrderClause(
	options *ListQueryOptions,
	startParamIndex int,
	initialArgs []any,
) (string, []any) {
	var clause strings.Builder
	args := initialArgs
	paramCount := startParamIndex

	if options.OrderBy != "" {
		clause.WriteString(" ORDER BY ")
		clause.WriteString(sanitizeColumn(options.OrderBy))
		upperOrderDir := strings.ToUpper(options.OrderDir)
		if upperOrderDir == "ASC" || upperOrderDir == "DESC" {
			clause.WriteString(" ")
			clause.WriteString(upperOrderDir)
		}
	}

	if options.Limit != defaultLimit {
		clause.WriteString(fmt.Sprintf(" LIMIT $%d", paramCount))
		args = append(args, options.Limit)
		paramCount++
	}
	if options.Offset != defaultOffset {
		clause.WriteString(fmt.Sprintf(" OFFSET $%d", paramCount))
		args = append(args, options.Offset)
	}
	return clause.String(), args
}

// BuildListQuery constructs a SQL query string and arguments from options,
// sanitizing identifiers. It handles SELECT, WHERE, ORDER BY, LIMIT and
// OFFSET clauses.
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder
	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	for _, join := range options.Joins {
		query.WriteString(" ")
		query.WriteString(join)
	}

	whereClause, whereArgs, nextParamCount := buildWhereClause(options.Conditions, 1)
	if whereClause != "" {
		query.WriteString(" ")
		query.WriteString(whereClause)
	}

	if options.CountOnly {
		return query.String(), whereArgs
	}

	paginationOrderClause, finalArgs := buildPaginationAndOrderClause(
		options,
		nextParamCount,
		whereArgs,
	)
	if paginationOrderClause != "" {
		query.WriteString(paginationOrderClause)
	}
	return query.String(), finalArgs
}

func handleStandardCondition(
	cond Condition,
	sanitizedField string,
	paramCount int,
) (string, []any, int) {
	conditionStr := fmt.Sprintf("%s %s $%d", sanitizedField, cond.Type, paramCount)
	return conditionStr, []any{cond.Value}, paramCount + 1
}

func handleInCondition(cond Condition, sanitizedField string, paramCount int) (string, []any, int) {
	// Accept any slice type via reflection
	rv := reflect.ValueOf(cond.Value)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return "", []any{}, paramCount
	}

	placeholders := make([]string, rv.Len())
	args := make([]any, rv.Len())
	currentParam := paramCount
	for i := range rv.Len() {
		placeholders[i] = fmt.Sprintf("$%d", currentParam)
		args[i] = rv.Index(i).Interface()
		currentParam++
	}
	conditionStr := fmt.Sprintf("%s IN (%s)", sanitizedField, strings.Join(placeholders, ", "))
	return conditionStr, args, currentParam
}

var rePlaceholder = regexp.MustCompile(`\$(\d+)`)

func handleCustomCondition(cond Condition, paramCount int) (string, []any, int) {
	args := []any{}
	if cond.rawQuery == nil || *cond.rawQuery == "" {
		return "", []any{}, paramCount
	}
	conditionStr := *cond.rawQuery

	if cond.Value == nil {
		return conditionStr, args, paramCount
	}

	var params []any
	if paramSlice, ok := cond.Value.([]any); ok {
		params = paramSlice
	} else {
		params = []any{cond.Value}
	}

	// Renumber fragment-relative placeholders into the assembled query,
	// handling $10 vs $1 correctly.
	currentParam := paramCount
	idxMap := make(map[int]int)
	conditionStr = rePlaceholder.ReplaceAllStringFunc(conditionStr, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil {
			return m
		}
		if _, ok := idxMap[n]; !ok {
			if n < 1 || n > len(params) {
				return m
			}
			idxMap[n] = currentParam
			args = append(args, params[n-1])
			currentParam++
		}
		return fmt.Sprintf("$%d", idxMap[n])
	})

	return conditionStr, args, currentParam
}

// processCondition returns the SQL fragment, args and next param index for a
// single condition.
func processCondition(cond Condition, paramCount int) (string, []any, int) {
	if cond.Type == Custom {
		return handleCustomCondition(cond, paramCount)
	}
	if cond.Field == "" {
		return "", []any{}, paramCount
	}
	sanitizedField := sanitizeColumn(cond.Field)

	switch cond.Type {
	case In:
		return handleInCondition(cond, sanitizedField, paramCount)
	case Equal, NotEqual, GreaterThan, LessThan, LessThanOrEqual, GreaterThanOrEqual, ILike:
		return handleStandardCondition(cond, sanitizedField, paramCount)
	}
	return "", []any{}, paramCount
}

// buildWhereClause generates the WHERE part of the query.
func buildWhereClause(inputConditions []Condition, startParamIndex int) (string, []any, int) {
	conditions := make([]string, 0, len(inputConditions))
	args := []any{}
	paramCount := startParamIndex

	for _, cond := range inputConditions {
		conditionStr, newArgs, nextParamCount := processCondition(cond, paramCount)
		if conditionStr != "" {
			conditions = append(conditions, conditionStr)
			args = append(args, newArgs...)
			paramCount = nextParamCount
		}
	}

	if len(conditions) == 0 {
		return "", args, paramCount
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, paramCount
}
