package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/mwhitney/finsight/internal/domain"
)

// CSVFormatter emits the year-by-year projection series, one row per year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "FutureValuePrincipal", "FutureValueContributions", "TotalValue", "TotalContributed", "TotalInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, point := range report.Series {
		row := []string{
			strconv.Itoa(point.Year),
			point.Result.FutureValueOfPrincipal.StringFixed(2),
			point.Result.FutureValueOfContributions.StringFixed(2),
			point.Result.TotalValue.StringFixed(2),
			point.Result.TotalContributed.StringFixed(2),
			point.Result.TotalInterest.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
