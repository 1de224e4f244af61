package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/dto"
	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/repository"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/spreadsheet"
	"github.com/tosinajy/carrier-code-verify/internal/shared/db"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

const (
	KindPayers = "payers"
	KindNaic   = "naic"

	FormatText = "text"
	FormatYAML = "yaml"
)

// Report is what one import run prints.
type Report struct {
	Kind          string            `yaml:"kind"`
	File          string            `yaml:"file"`
	ClearingHouse string            `yaml:"clearing_house,omitempty"`
	Result        *dto.ImportResult `yaml:"result"`
}

// Runner feeds a spreadsheet on disk through the same import use cases the
// steward console uses.
type Runner struct {
	importPayers *usecases.ImportPayersUseCase
	importNaic   *usecases.ImportNaicUseCase
	logger       logger.Interface
}

// NewRunner builds the import use cases over gdb. suggestions may be nil.
func NewRunner(gdb *gorm.DB, suggestions usecases.SuggestionInvalidator, log logger.Interface) *Runner {
	txMgr := db.NewTransactionManager(gdb)
	return &Runner{
		importPayers: usecases.NewImportPayersUseCase(repository.NewPayerRepository(gdb, log), txMgr, suggestions, log),
		importNaic:   usecases.NewImportNaicUseCase(repository.NewNaicRepository(gdb, log), txMgr, suggestions, log),
		logger:       log,
	}
}

// Run imports path as kind. clearingHouse is ignored for NAIC files.
func (r *Runner) Run(ctx context.Context, kind, path, clearingHouse string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := spreadsheet.Read(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	report := &Report{Kind: kind, File: path}

	switch kind {
	case KindPayers:
		report.ClearingHouse = clearingHouse
		report.Result, err = r.importPayers.Execute(ctx, usecases.ImportPayersCommand{
			ClearingHouse: clearingHouse,
			Header:        table.Header,
			Rows:          table.Rows,
		})
	case KindNaic:
		report.Result, err = r.importNaic.Execute(ctx, usecases.ImportNaicCommand{
			Header: table.Header,
			Rows:   table.Rows,
		})
	default:
		return nil, fmt.Errorf("unknown import kind %q", kind)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Infow("import finished", "kind", kind, "file", path, "summary", report.Result.Summary())
	return report, nil
}

// WriteReport renders report as yaml or plain text.
func WriteReport(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		if _, err := fmt.Fprintf(w, "%s import of %s\n%s\n", report.Kind, report.File, report.Result.Summary()); err != nil {
			return err
		}
		for _, reason := range report.Result.SkipReasons {
			if _, err := fmt.Fprintf(w, "  %s\n", reason); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
