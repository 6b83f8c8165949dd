// Package forms decodes the dynamically-named form fields produced by the
// bulk intake and billing pages. Repeated item rows arrive flattened as
// itemid1, itemname1, itemid2, itemname2, ... and are grouped back into one
// row per numeric suffix.
package forms

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
)

// Row holds one submission row's raw values keyed by field label.
type Row map[string]string

// UI helper fields carrying these markers are never row data.
var excludedMarkers = []string{"number", "total"}

// DecodeRows groups indexed form fields into rows ordered by their 1-based
// suffix. The schema declares which labels a complete row carries; a row
// missing any of them is rejected instead of silently shifting positional
// meaning. Fields without a numeric suffix and labels outside the schema are
// ignored, they belong to the surrounding page, not the row data.
func DecodeRows(form url.Values, schema []string) ([]Row, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: empty field schema", apperror.ErrValidation)
	}

	wanted := make(map[string]bool, len(schema))
	for _, field := range schema {
		wanted[field] = true
	}

	indexed := make(map[int]Row)
	for key, values := range form {
		if isExcluded(key) || len(values) == 0 {
			continue
		}

		label, index, ok := splitIndexedField(key)
		if !ok || !wanted[label] {
			continue
		}

		row := indexed[index]
		if row == nil {
			row = make(Row, len(schema))
			indexed[index] = row
		}
		row[label] = values[0]
	}

	indexes := make([]int, 0, len(indexed))
	for index := range indexed {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	rows := make([]Row, 0, len(indexes))
	for _, index := range indexes {
		row := indexed[index]
		for _, field := range schema {
			if _, ok := row[field]; !ok {
				return nil, fmt.Errorf("%w: row %d is missing field %q", apperror.ErrValidation, index, field)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Values returns the row's values in schema order.
func (r Row) Values(schema []string) []string {
	values := make([]string, 0, len(schema))
	for _, field := range schema {
		values = append(values, r[field])
	}
	return values
}

func isExcluded(key string) bool {
	lowered := strings.ToLower(key)
	for _, marker := range excludedMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// splitIndexedField splits "itemname12" into ("itemname", 12). Keys without a
// trailing 1-based numeric suffix are not indexed row fields.
func splitIndexedField(key string) (string, int, bool) {
	i := len(key)
	for i > 0 && key[i-1] >= '0' && key[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(key) {
		return "", 0, false
	}

	index, err := strconv.Atoi(key[i:])
	if err != nil || index < 1 {
		return "", 0, false
	}
	return strings.ToLower(key[:i]), index, true
}
