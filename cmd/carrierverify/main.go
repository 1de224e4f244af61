package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/importer"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/migrate"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/server"
	"github.com/tosinajy/carrier-code-verify/internal/interfaces/cli/user"
	"github.com/tosinajy/carrier-code-verify/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "carrierverify",
		Short:   "Carrier Code Verify - payer to NAIC directory",
		Long:    `carrierverify serves the public payer directory and the steward console, and ships the migration, import and account tools that maintain it.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		importer.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
