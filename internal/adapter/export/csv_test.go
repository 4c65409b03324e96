package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pocketbook/internal/adapter/export"
	"github.com/iho/pocketbook/internal/domain"
)

func TestCSVExporter_Export(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	history := []domain.Transaction{
		{
			Timestamp: ts,
			Amount:    decimal.NewFromInt(100),
			Kind:      domain.KindCredit,
			Category:  domain.CategorySalary,
		},
		{
			Timestamp: ts.Add(time.Minute),
			Amount:    decimal.RequireFromString("40.50"),
			Kind:      domain.KindDebit,
			Category:  domain.CategoryFood,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.NewCSVExporter().Export(&buf, history))

	want := "Timestamp,Type,Amount,Category\n" +
		"2024-06-01 10:30:00,credit,100,salary\n" +
		"2024-06-01 10:31:00,debit,40.5,food\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVExporter_EmptyHistory(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.NewCSVExporter().Export(&buf, nil))

	assert.Equal(t, "Timestamp,Type,Amount,Category\n", buf.String())
}
