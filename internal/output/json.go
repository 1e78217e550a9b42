package output

import (
	"encoding/json"

	"github.com/mwhitney/finsight/internal/domain"
)

// JSONFormatter renders the full plan report as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
