package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fintoolbox/debtpro/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no formatter handles the requested name.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport resolves the named formatter and writes its output to a
// timestamped file. The special format "all" writes the verbose console
// report plus the detailed CSV export.
func GenerateReport(results *domain.PlanComparison, format string) error {
	if f := GetFormatterByName(format); f != nil {
		ext := NormalizeFormatName(format)
		if ext == "console-lite" || ext == "console" {
			ext = "txt"
		}
		if strings.Contains(ext, "csv") {
			ext = "csv"
		}
		_, err := WriteFormatted(f, results, ext)
		return err
	}
	switch format {
	case "all":
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, results, "txt"); err != nil {
			return err
		}
		if _, err := WriteFormatted(CSVDetailedExporter{}, results, "csv"); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
}

// SavePlan writes a plan back out as YAML, e.g. for the generated example.
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
