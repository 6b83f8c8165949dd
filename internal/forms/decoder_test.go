package forms

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
)

func TestDecodeRowsGroupsByIndex(t *testing.T) {
	form := url.Values{
		"brand2": {"Y"},
		"name1":  {"A"},
		"brand1": {"X"},
		"name2":  {"B"},
	}

	rows, err := DecodeRows(form, []string{"name", "brand"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"A", "X"}, rows[0].Values([]string{"name", "brand"}))
	assert.Equal(t, []string{"B", "Y"}, rows[1].Values([]string{"name", "brand"}))
}

func TestDecodeRowsExcludesHelperFields(t *testing.T) {
	form := url.Values{
		"name1":      {"A"},
		"number1":    {"5"},
		"rowtotal1":  {"99"},
		"itemtotal":  {"99"},
		"grandTotal": {"200"},
	}

	rows, err := DecodeRows(form, []string{"name"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"A"}, rows[0].Values([]string{"name"}))
}

func TestDecodeRowsIgnoresNonIndexedFields(t *testing.T) {
	form := url.Values{
		"name1":        {"A"},
		"brand1":       {"X"},
		"phone":        {"9876543210"},
		"customername": {"Keyur"},
	}

	rows, err := DecodeRows(form, []string{"name", "brand"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestDecodeRowsMissingFieldFails(t *testing.T) {
	form := url.Values{
		"name1":  {"A"},
		"brand1": {"X"},
		"name2":  {"B"},
	}

	rows, err := DecodeRows(form, []string{"name", "brand"})
	require.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "row 2")
	assert.Nil(t, rows)
}

func TestDecodeRowsSortsIndexesNumerically(t *testing.T) {
	form := url.Values{}
	for i := 1; i <= 12; i++ {
		form.Set(fmt.Sprintf("name%d", i), fmt.Sprintf("item-%d", i))
	}

	rows, err := DecodeRows(form, []string{"name"})
	require.NoError(t, err)
	require.Len(t, rows, 12)

	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("item-%d", i+1), row["name"])
	}
}

func TestDecodeRowsEmptySchemaFails(t *testing.T) {
	_, err := DecodeRows(url.Values{"name1": {"A"}}, nil)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
