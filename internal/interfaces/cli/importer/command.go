// Package importer is the command-line path for payer and NAIC spreadsheet
// reconciliation.
package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tosinajy/carrier-code-verify/internal/application/reconciliation/usecases"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/cache"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/config"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/database"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/clienv"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

var (
	flags         clienv.Flags
	file          string
	clearingHouse string
	output        string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Reconcile a spreadsheet into the directory",
		Long:  `Upsert payer or NAIC rows from an .xlsx or .csv file and print the batch report.`,
	}

	flags.Bind(cmd)
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Spreadsheet to import (.xlsx or .csv)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", FormatText, "Report format (text, yaml)")
	_ = cmd.MarkPersistentFlagRequired("file")

	payers := &cobra.Command{
		Use:   KindPayers,
		Short: "Import a payer list for one clearing house",
		RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd, KindPayers) },
	}
	payers.Flags().StringVar(&clearingHouse, "clearing-house", "", "Clearing house the payer list belongs to (default: import.default_clearing_house)")

	naic := &cobra.Command{
		Use:   KindNaic,
		Short: "Import the NAIC company list",
		RunE:  func(cmd *cobra.Command, args []string) error { return run(cmd, KindNaic) },
	}

	cmd.AddCommand(payers, naic)
	return cmd
}

func run(cmd *cobra.Command, kind string) error {
	cfg, log, err := flags.Init(true)
	if err != nil {
		return err
	}
	defer clienv.Close()

	ch := strings.TrimSpace(clearingHouse)
	if kind == KindPayers && ch == "" {
		ch = cfg.Import.DefaultClearingHouse
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	suggestions, closeCache := suggestionInvalidator(ctx, cfg, log)
	defer closeCache()

	report, err := NewRunner(database.Get(), suggestions, log).Run(ctx, kind, file, ch)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	return WriteReport(cmd.OutOrStdout(), output, report)
}

// suggestionInvalidator connects to Redis when it is enabled so a CLI import
// clears stale autocomplete answers. It returns a nil interface otherwise.
func suggestionInvalidator(ctx context.Context, cfg *config.Config, log logger.Interface) (usecases.SuggestionInvalidator, func()) {
	noop := func() {}
	if !cfg.Redis.Enabled {
		return nil, noop
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(connectCtx, cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, suggestion cache not invalidated", "error", err)
		return nil, noop
	}

	ttl := time.Duration(cfg.Redis.SuggestionTTLSeconds) * time.Second
	return cache.NewRedisSuggestionCache(client, ttl), func() { _ = client.Close() }
}
