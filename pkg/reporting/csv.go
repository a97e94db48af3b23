package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shiraori39/multi-objective-production-planning-lsga/internal/optimizer"
)

// WriteFrontCSV writes the archive's objective coordinates to a CSV file:
// one row per solution, ascending by cost.
func WriteFrontCSV(res *optimizer.Result, path string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "cost", "instability"}); err != nil {
		return err
	}
	for i, p := range res.Points {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(p.Cost, 'f', -1, 64),
			strconv.FormatFloat(p.Instability, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
