package usecases

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/spreadsheet"
	"github.com/tosinajy/carrier-code-verify/internal/shared/services/markdown"
)

var (
	payerCodeAliases   = []string{"payer id", "payer_id", "payerid"}
	payerNameAliases   = []string{"payer name", "payer_name", "payername"}
	naicCodeAliases    = []string{"cocode", "naic code"}
	naicCompanyAliases = []string{"company name", "company_name"}
)

// NormalizeHeader folds a header cell for alias matching: NFKC, case fold,
// trim and single spaces between words.
func NormalizeHeader(h string) string {
	h = norm.NFKC.String(h)
	h = cases.Fold().String(h)
	return strings.Join(strings.Fields(h), " ")
}

// column lists the header positions of one logical field in alias priority order.
type column []int

func resolveColumn(header []string, aliases []string) column {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = NormalizeHeader(h)
	}

	var col column
	for _, alias := range aliases {
		for i, h := range normalized {
			if h == alias {
				col = append(col, i)
			}
		}
	}
	return col
}

// value returns the first non-empty cell of the column, stripped of markup.
func (c column) value(row []string) string {
	for _, idx := range c {
		if v := markdown.PlainText(spreadsheet.Cell(row, idx)); v != "" {
			return v
		}
	}
	return ""
}

func isBlankRow(row []string) bool {
	for i := range row {
		if spreadsheet.Cell(row, i) != "" {
			return false
		}
	}
	return true
}
