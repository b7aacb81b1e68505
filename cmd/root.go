package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/smelly/cmd/report"
	"github.com/scan-io-git/smelly/cmd/version"
	"github.com/scan-io-git/smelly/internal/config"
	"github.com/scan-io-git/smelly/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "smelly [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "Smelly turns pylint JSON output into prioritised code smell reports.",
		Long: `Smelly reads the JSON report produced by pylint, orders every code smell by
	severity and renders the result for terminals, pull request comments, JSON consumers
	or SARIF-aware tooling.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml, or $SMELLY_CONFIG)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(report.ReportCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)

		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		return errors.ExitCodeFailure
	}
	return 0
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing config file function is crashed - %v\n", err)
		os.Exit(errors.ExitCodeFailure)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errors.ExitCodeFailure)
	}

	report.Init(AppConfig)
}
