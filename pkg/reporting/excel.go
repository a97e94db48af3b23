package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/planning"
)

// ExcelReporter writes run results to an xlsx workbook.
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

type excelStyles struct {
	header  int
	number  int
	generic int
}

// WriteWorkbook writes a workbook with a "Pareto Front" sheet covering the
// whole archive and a "Best Plan" sheet with the production matrix and
// workforce of the lowest-cost solution.
func (r *ExcelReporter) WriteWorkbook(inst *planning.ProblemInstance, res *optimizer.Result, path string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const frontSheet = "Pareto Front"
	const planSheet = "Best Plan"
	fx.SetSheetName(fx.GetSheetName(0), frontSheet)
	if _, err := fx.NewSheet(planSheet); err != nil {
		return err
	}

	styles, err := r.createStyles(fx)
	if err != nil {
		return err
	}
	if err := r.writeFrontSheet(fx, frontSheet, res, styles); err != nil {
		return err
	}
	if err := r.writePlanSheet(fx, planSheet, inst, res, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) createStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.number, err = fx.NewStyle(&excelize.Style{
		NumFmt: 2, // two decimals
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.generic, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	return styles, err
}

func (r *ExcelReporter) writeFrontSheet(fx *excelize.File, sheet string, res *optimizer.Result, styles excelStyles) error {
	headers := []interface{}{"Index", "Cost (Z1)", "Instability (Z2)"}
	if err := fx.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", "C1", styles.header); err != nil {
		return err
	}

	for i, p := range res.Points {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{i + 1, p.Cost, p.Instability}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		if err := fx.SetCellStyle(sheet, fmt.Sprintf("B%d", i+2), fmt.Sprintf("C%d", i+2), styles.number); err != nil {
			return err
		}
	}
	return fx.SetColWidth(sheet, "A", "C", 18)
}

func (r *ExcelReporter) writePlanSheet(fx *excelize.File, sheet string, inst *planning.ProblemInstance, res *optimizer.Result, styles excelStyles) error {
	if len(res.Archive) == 0 {
		return fx.SetCellValue(sheet, "A1", "archive is empty")
	}
	best := res.Archive[0]

	header := make([]interface{}, 0, inst.NumPeriods+1)
	header = append(header, "Product \\ Period")
	for t := 0; t < inst.NumPeriods; t++ {
		header = append(header, t+1)
	}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(inst.NumPeriods + 1)
	if err != nil {
		return err
	}
	if err := fx.SetCellStyle(sheet, "A1", lastCol+"1", styles.header); err != nil {
		return err
	}

	for i := 0; i < inst.NumProducts; i++ {
		row := make([]interface{}, 0, inst.NumPeriods+1)
		row = append(row, fmt.Sprintf("Product %d", i+1))
		for t := 0; t < inst.NumPeriods; t++ {
			row = append(row, best.Chromosome.Production[i][t])
		}
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	workforceRow := make([]interface{}, 0, inst.NumPeriods+1)
	workforceRow = append(workforceRow, "Workforce")
	for t := 0; t < inst.NumPeriods; t++ {
		workforceRow = append(workforceRow, best.Chromosome.Workforce[t])
	}
	if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", inst.NumProducts+3), &workforceRow); err != nil {
		return err
	}

	summary := []interface{}{"Objectives", best.Cost, best.Instability}
	return fx.SetSheetRow(sheet, fmt.Sprintf("A%d", inst.NumProducts+5), &summary)
}
