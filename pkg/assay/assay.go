// Package assay provides in-memory representation of assay metadata
// collected from the project tree.
//
// A Table holds one Record per assay directory. Records from several
// metadata files of the same directory are merged with shallow update
// semantics: fields of a later file replace fields of an earlier one.
package assay

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Record maps a metadata field name to its scalar value.
type Record map[string]any

// Table is a collection of assay records keyed by the name of the
// assay directory.
type Table struct {
	records map[string]Record
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{records: make(map[string]Record)}
}

// Merge adds fields of r to the record identified by id. Existing
// fields with the same name are overwritten.
func (t *Table) Merge(id string, r Record) {
	rec, ok := t.records[id]
	if !ok {
		rec = make(Record, len(r))
		t.records[id] = rec
	}
	for k, v := range r {
		rec[k] = Normalize(v)
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// IDs returns sorted record identifiers.
func (t *Table) IDs() []string {
	return slices.Sorted(maps.Keys(t.records))
}

// Record returns a copy of the record identified by id.
func (t *Table) Record(id string) (Record, bool) {
	rec, ok := t.records[id]
	if !ok {
		return nil, false
	}
	return maps.Clone(rec), true
}

// Columns returns the sorted union of field names of all records.
func (t *Table) Columns() []string {
	set := make(map[string]struct{})
	for _, rec := range t.records {
		for k := range rec {
			set[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Value returns the value of a field. The second value is false when
// the record does not have the field.
func (t *Table) Value(id, column string) (any, bool) {
	rec, ok := t.records[id]
	if !ok {
		return nil, false
	}
	v, ok := rec[column]
	return v, ok
}

// HasColumn checks if at least one record has the field.
func (t *Table) HasColumn(column string) bool {
	for _, rec := range t.records {
		if _, ok := rec[column]; ok {
			return true
		}
	}
	return false
}

// Unique returns distinct non-nil values of the given fields. Values
// keep the order in which they are first seen, records are visited in
// the order of IDs and fields in the order of arguments.
func (t *Table) Unique(columns ...string) []any {
	var res []any
	seen := make(map[any]struct{})
	for _, id := range t.IDs() {
		rec := t.records[id]
		for _, col := range columns {
			v, ok := rec[col]
			if !ok || v == nil {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			res = append(res, v)
		}
	}
	return res
}

// Rows returns one row per record with values of the given fields.
// Missing fields are nil.
func (t *Table) Rows(columns []string) [][]any {
	ids := t.IDs()
	res := make([][]any, 0, len(ids))
	for _, id := range ids {
		rec := t.records[id]
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = rec[col]
		}
		res = append(res, row)
	}
	return res
}

// Normalize converts a decoded YAML value into a comparable scalar that
// can be stored in the database. Dates without time become
// "YYYY-MM-DD", other timestamps RFC 3339. Lists are joined with
// commas, nested mappings are formatted as text.
func Normalize(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int, int64, float64:
		return val
	case float32:
		return float64(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 &&
			val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339)
	case []any:
		parts := make([]string, len(val))
		for i := range val {
			parts[i] = fmt.Sprint(Normalize(val[i]))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
