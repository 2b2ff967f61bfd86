package service

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const previewSheet = "Allocation"

// ExportService renders an allocation preview as an .xlsx workbook.
type ExportService interface {
	ExportPreview(ctx context.Context, govID int64, req PreviewRequest, w io.Writer) (string, error)
}

type exportService struct {
	allocations AllocationService
}

func NewExportService(allocations AllocationService) ExportService {
	return &exportService{allocations: allocations}
}

// ExportPreview writes the workbook to w and returns the suggested file name.
func (s *exportService) ExportPreview(ctx context.Context, govID int64, req PreviewRequest, w io.Writer) (string, error) {
	preview, err := s.allocations.Preview(ctx, govID, req)
	if err != nil {
		return "", err
	}

	f, err := buildPreviewWorkbook(preview)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return fmt.Sprintf("allocation-%d-%s.xlsx", preview.WaqfGovID, preview.EvaluatedOn), nil
}

func buildPreviewWorkbook(p PreviewResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", previewSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	cell := func(col string, row int, v interface{}) {
		f.SetCellValue(previewSheet, col+fmt.Sprint(row), v)
	}

	// Header block
	cell("A", 1, "Waqf")
	cell("B", 1, p.WaqfName)
	cell("A", 2, "Evaluated On")
	cell("B", 2, p.EvaluatedOn)
	cell("A", 3, "Currency")
	cell("B", 3, p.Currency)
	cell("A", 4, "Profit Amount")
	cell("B", 4, p.Summary.ProfitAmount.InexactFloat64())
	cell("A", 5, "Total Allocated")
	cell("B", 5, p.Summary.TotalAllocated.InexactFloat64())
	cell("A", 6, "Remaining")
	cell("B", 6, p.Summary.RemainingAmount.InexactFloat64())

	const first = 8
	headers := []string{"Beneficiary", "Relation", "National ID", "Share Type", "Share Value", "Allocated Amount", "% of Profit"}
	if err := f.SetSheetRow(previewSheet, fmt.Sprintf("A%d", first), &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}

	for i, a := range p.Allocations {
		row := first + 1 + i
		cell("A", row, a.BeneficiaryName)
		cell("B", row, deref(a.Relation))
		cell("C", row, deref(a.NationalID))
		cell("D", row, string(a.ShareType))
		cell("E", row, a.ShareValue.InexactFloat64())
		cell("F", row, a.AllocatedAmount.InexactFloat64())
		cell("G", row, a.PercentageOfProfit.InexactFloat64())
	}

	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
