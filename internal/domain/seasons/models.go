package seasons

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Provider column names consumed directly.
const (
	ColumnSeasonID     = "SEASON_ID"
	ColumnPlayerAge    = "PLAYER_AGE"
	ColumnPoints       = "PTS"
	ColumnRebounds     = "REB"
	ColumnAssists      = "AST"
	ColumnFieldGoalPct = "FG_PCT"
)

// Row is one season of a player's statistics.
// The typed fields mirror the columns the comparison reads; every provider column,
// including those, stays available in provider order through Fields and Value.
type Row struct {
	SeasonID     string
	PlayerAge    *float64
	Points       *float64
	Rebounds     *float64
	Assists      *float64
	FieldGoalPct *float64

	columns []string
	values  map[string]any
}

// Field is a single named value of a Row.
type Field struct {
	Name  string
	Value any
}

// NewRow builds a Row from parallel column/value slices.
// Extra values without a column are ignored; columns without a value are nil.
func NewRow(columns []string, values []any) Row {
	row := Row{
		columns: make([]string, 0, len(columns)),
		values:  make(map[string]any, len(columns)),
	}
	for i, col := range columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		if _, dup := row.values[col]; !dup {
			row.columns = append(row.columns, col)
		}
		row.values[col] = v
	}

	if s, ok := row.values[ColumnSeasonID].(string); ok {
		row.SeasonID = s
	}
	row.PlayerAge = row.number(ColumnPlayerAge)
	row.Points = row.number(ColumnPoints)
	row.Rebounds = row.number(ColumnRebounds)
	row.Assists = row.number(ColumnAssists)
	row.FieldGoalPct = row.number(ColumnFieldGoalPct)
	return row
}

// Columns returns the provider columns in order.
func (r Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Value returns the raw provider value for a column.
func (r Row) Value(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Fields returns every column/value pair in provider order.
func (r Row) Fields() []Field {
	fields := make([]Field, 0, len(r.columns))
	for _, col := range r.columns {
		fields = append(fields, Field{Name: col, Value: r.values[col]})
	}
	return fields
}

// Stat returns the numeric value of a column, or 0 when it is missing, null or NaN.
func (r Row) Stat(column string) float64 {
	if v := r.number(column); v != nil {
		return *v
	}
	return 0
}

func (r Row) number(column string) *float64 {
	f, ok := toFloat(r.values[column])
	if !ok || math.IsNaN(f) {
		return nil
	}
	return &f
}

// MarshalJSON encodes the row as an object in provider column order. NaN becomes null.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(jsonSafe(r.values[col]))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FormatValue renders a provider value for plain-text listings. Numbers decoded as
// json.Number keep the provider's literal text, so 35.0 stays 35.0.
func FormatValue(v any) string {
	switch val := jsonSafe(v).(type) {
	case nil:
		return "null"
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Career is a player's season rows in provider order.
type Career []Row

// Season returns the first row whose season identifier equals label.
func (c Career) Season(label string) (Row, bool) {
	for _, row := range c {
		if row.SeasonID == label {
			return row, true
		}
	}
	return Row{}, false
}

func jsonSafe(v any) any {
	if n, ok := v.(json.Number); ok {
		if _, err := n.Float64(); err != nil {
			return nil
		}
		return n
	}
	if f, ok := toFloat(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
