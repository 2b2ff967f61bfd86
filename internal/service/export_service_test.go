package service

import (
	"bytes"
	"context"
	"testing"

	"awqaf/internal/distribution"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPreview(t *testing.T) {
	env := newTestEnv()
	seedMixedRules(env)
	svc := NewExportService(env.allocationService())

	var buf bytes.Buffer
	name, err := svc.ExportPreview(context.Background(), testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000")}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "allocation-7-2026-03-15.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{previewSheet}, f.GetSheetList())
	waqf, err := f.GetCellValue(previewSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Al-Noor Endowment", waqf)

	rows, err := f.GetRows(previewSheet)
	require.NoError(t, err)
	require.Len(t, rows, 11)
	assert.Equal(t, "Beneficiary", rows[7][0])
	assert.Equal(t, "% of Profit", rows[7][6])
	assert.Equal(t, "Aisha", rows[8][0])
	assert.Equal(t, "500", rows[8][5])
	assert.Equal(t, "fixed", rows[9][3])
}

func TestExportPreview_PropagatesPreviewErrors(t *testing.T) {
	env := newTestEnv()
	svc := NewExportService(env.allocationService())

	var buf bytes.Buffer
	_, err := svc.ExportPreview(context.Background(), testGovID, PreviewRequest{ProfitAmount: AmountPtr("1000")}, &buf)
	assert.ErrorIs(t, err, distribution.ErrNoRules)
	assert.Zero(t, buf.Len())
}
