package report

import (
	"fmt"

	"github.com/scan-io-git/smelly/internal/config"
	"github.com/scan-io-git/smelly/pkg/shared/files"
)

// validateReportArgs validates the arguments provided to the report command.
func validateReportArgs(opts *RunOptionsReport) error {
	if opts.InputFile == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}

	expanded, err := files.ExpandPath(opts.InputFile)
	if err != nil {
		return fmt.Errorf("failed to expand input path %q: %w", opts.InputFile, err)
	}
	if err := files.ValidatePath(expanded); err != nil {
		return fmt.Errorf("the input file is not valid: %w", err)
	}

	if err := config.ValidateFormat(opts.Format); err != nil {
		return err
	}

	if err := config.ValidateFailOn(opts.FailOn); err != nil {
		return fmt.Errorf("the 'fail-on' flag is invalid: %w", err)
	}
	return nil
}
