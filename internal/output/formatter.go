package output

import (
	"github.com/mwhitney/finsight/internal/domain"
)

// Formatter renders a plan report in one output format.
type Formatter interface {
	Name() string
	Format(report *domain.PlanReport) ([]byte, error)
}

var formatters = []Formatter{
	TableFormatter{},
	CSVFormatter{},
	JSONFormatter{Pretty: true},
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil if there is none.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
