package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/smelly/internal/codesmell"
	"github.com/scan-io-git/smelly/internal/config"
	"github.com/scan-io-git/smelly/internal/git"
	"github.com/scan-io-git/smelly/internal/logger"
	"github.com/scan-io-git/smelly/internal/render"
	"github.com/scan-io-git/smelly/internal/sarif"
	"github.com/scan-io-git/smelly/pkg/shared/errors"
	"github.com/scan-io-git/smelly/pkg/shared/files"
)

// RunOptionsReport holds the arguments for the report command.
type RunOptionsReport struct {
	InputFile    string
	OutputPath   string
	Format       string
	Grade        string
	GroupByFile  bool
	NoColor      bool
	SourceFolder string
	FailOn       string
	Title        string
	ToolVersion  string
}

// Global variables for configuration and command arguments
var (
	AppConfig          *config.Config
	reportOptions      RunOptionsReport
	exampleReportUsage = `  # Print a pylint JSON report to the terminal
  pylint --output-format=json src/ > pylint.json
  smelly report --input pylint.json

  # Group the smells by file and include the grade
  smelly report -i pylint.json --grade 7.85 --group-by-file

  # Render a pull request comment with repository details
  smelly report -i pylint.json -f markdown --source . -o /tmp/reports

  # Convert to SARIF and fail when errors are present
  smelly report -i pylint.json -f sarif -o pylint.sarif --fail-on error`
)

// ReportCmd represents the report command.
var ReportCmd = &cobra.Command{
	Use:                   "report --input/-i PATH [--format/-f FORMAT] [--output/-o PATH] [--grade GRADE] [--group-by-file] [--fail-on PRIORITY]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleReportUsage,
	Short:                 "Convert a pylint JSON report into a sorted code smell report",
	Long: fmt.Sprintf(`Reads the JSON report produced by pylint, orders the code smells by severity
and writes them in one of the supported formats: %s.`, strings.Join(config.Formats, ", ")),
	RunE: runReportCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runReportCommand executes the report command.
func runReportCommand(cmd *cobra.Command, args []string) (err error) {
	if AppConfig == nil {
		AppConfig = config.DefaultConfig()
	}
	log := logger.NewLogger(AppConfig, "core-report")

	opts := reportOptions
	applyConfigDefaults(cmd, &opts, AppConfig)

	if err := validateReportArgs(&opts); err != nil {
		log.Error("invalid report arguments", "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	out := cmd.OutOrStdout()
	if opts.OutputPath != "" {
		outputFile, err := openOutput(opts.OutputPath, opts.Format)
		if err != nil {
			log.Error("failed to open output", "error", err)
			return errors.NewCommandError(err, errors.ExitCodeFailure)
		}
		defer closeOutput(log, outputFile, &err)
		log.Debug("writing report", "path", outputFile.Name())
		out = outputFile
	}

	return Run(log, opts, out)
}

// Run reads the input report, builds the code smell report and writes it to out.
func Run(log hclog.Logger, opts RunOptionsReport, out io.Writer) error {
	var threshold codesmell.Priority
	if opts.FailOn != "" {
		p, err := codesmell.GetPriority(opts.FailOn)
		if err != nil {
			log.Error("invalid fail-on priority", "fail-on", opts.FailOn, "error", err)
			return errors.NewCommandError(fmt.Errorf("invalid fail-on value: %w", err), errors.ExitCodeFailure)
		}
		threshold = p
	}

	records, err := readRecords(opts.InputFile)
	if err != nil {
		log.Error("failed to read linter report", "path", opts.InputFile, "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}
	log.Debug("records decoded", "path", opts.InputFile, "count", len(records))

	report, err := codesmell.NewReport(records, parseGrade(opts.Grade))
	if err != nil {
		log.Error("failed to build report", "error", err)
		return errors.NewCommandError(fmt.Errorf("failed to build report: %w", err), errors.ExitCodeFailure)
	}
	log.Info("report built", "smells", report.Len(), "grade", report.Grade())

	if err := write(log, out, report, opts, useColor(opts, out)); err != nil {
		log.Error("failed to write report", "format", opts.Format, "error", err)
		return errors.NewCommandError(err, errors.ExitCodeFailure)
	}

	if opts.FailOn != "" {
		if report.HasAtLeast(threshold) {
			count := countAtLeast(report, threshold)
			log.Warn("code smells above threshold", "fail-on", opts.FailOn, "count", count)
			return errors.NewThresholdError(opts.FailOn, count)
		}
	}

	log.Info("report command completed successfully")
	return nil
}

// useColor reports whether text output should carry ANSI colours.
// Only an interactive stdout is coloured, and NO_COLOR is honoured via color.NoColor.
func useColor(opts RunOptionsReport, out io.Writer) bool {
	if opts.NoColor || opts.OutputPath != "" || color.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func write(log hclog.Logger, out io.Writer, report *codesmell.Report, opts RunOptionsReport, colored bool) error {
	switch opts.Format {
	case "text":
		return render.Text(out, report, render.TextOptions{
			Color:       colored,
			GroupByFile: opts.GroupByFile,
		})
	case "markdown":
		return render.Markdown(out, report, render.MarkdownOptions{
			Title:      opts.Title,
			Repository: describeRepository(log, opts.SourceFolder),
		})
	case "json":
		return render.JSON(out, report, render.JSONOptions{RunID: uuid.NewString()})
	case "sarif":
		tool := sarif.DefaultTool
		tool.Version = opts.ToolVersion
		return sarif.Write(out, report, tool)
	default:
		return fmt.Errorf("unsupported format %q", opts.Format)
	}
}

func readRecords(path string) ([]codesmell.Record, error) {
	expanded, err := files.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return codesmell.DecodeRecords(file)
}

func openOutput(path, format string) (*os.File, error) {
	filePath, folder, err := files.DetermineFileFullPath(path, "smelly-report."+fileExtension(format))
	if err != nil {
		return nil, err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return nil, err
	}
	return os.Create(filePath)
}

// closeOutput closes the report file and records a close failure in err unless err is already set.
func closeOutput(log hclog.Logger, file *os.File, err *error) {
	closeErr := file.Close()
	if closeErr == nil || *err != nil {
		return
	}
	log.Error("failed to close output", "path", file.Name(), "error", closeErr)
	*err = errors.NewCommandError(fmt.Errorf("failed to close output: %w", closeErr), errors.ExitCodeFailure)
}

func describeRepository(log hclog.Logger, sourceFolder string) string {
	if sourceFolder == "" {
		return ""
	}
	md, err := git.CollectRepositoryMetadata(sourceFolder)
	if err != nil {
		log.Debug("can't collect repository metadata", "err", err)
		return ""
	}
	return md.Describe()
}

// parseGrade passes the grade through untouched except that numeric values become float64.
func parseGrade(grade string) any {
	if grade == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(grade, 64); err == nil {
		return f
	}
	return grade
}

func countAtLeast(report *codesmell.Report, threshold codesmell.Priority) int {
	count := 0
	for p, n := range report.CountByPriority() {
		if p.Rank() >= threshold.Rank() {
			count += n
		}
	}
	return count
}

func fileExtension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "text":
		return "txt"
	default:
		return format
	}
}

// applyConfigDefaults fills options the user did not pass on the command line from the config file.
func applyConfigDefaults(cmd *cobra.Command, opts *RunOptionsReport, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		opts.Format = cfg.Report.Format
	}
	if !flags.Changed("group-by-file") {
		opts.GroupByFile = cfg.Report.GroupByFile
	}
	if !flags.Changed("fail-on") {
		opts.FailOn = cfg.Report.FailOn
	}
	if !flags.Changed("title") {
		opts.Title = cfg.Report.Title
	}
	if !flags.Changed("no-color") {
		opts.NoColor = !config.BoolValue(cfg.Report.Color, true)
	}
}

// Initialize flags for the report command.
func init() {
	ReportCmd.Flags().StringVarP(&reportOptions.InputFile, "input", "i", "", "Path to the JSON report produced by pylint (--output-format=json).")
	ReportCmd.Flags().StringVarP(&reportOptions.OutputPath, "output", "o", "", "Path to the output file or directory. Defaults to stdout.")
	ReportCmd.Flags().StringVarP(&reportOptions.Format, "format", "f", "text", fmt.Sprintf("Output format: %s.", strings.Join(config.Formats, ", ")))
	ReportCmd.Flags().StringVar(&reportOptions.Grade, "grade", "", "Grade of the analysed code, passed through to the report.")
	ReportCmd.Flags().BoolVar(&reportOptions.GroupByFile, "group-by-file", false, "Group consecutive code smells of the same file (text format).")
	ReportCmd.Flags().BoolVar(&reportOptions.NoColor, "no-color", false, "Disable coloured output (text format).")
	ReportCmd.Flags().StringVarP(&reportOptions.SourceFolder, "source", "s", "", "Source folder used to collect git metadata (markdown format).")
	ReportCmd.Flags().StringVar(&reportOptions.FailOn, "fail-on", "", "Exit with code 2 when a code smell of this priority or higher is found.")
	ReportCmd.Flags().StringVar(&reportOptions.Title, "title", "Smelly report", "Title of the markdown report.")
	ReportCmd.Flags().StringVar(&reportOptions.ToolVersion, "tool-version", "", "Version of pylint recorded in the SARIF output.")
	ReportCmd.Flags().BoolP("help", "h", false, "Show help for the report command.")
}
