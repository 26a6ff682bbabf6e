package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"dtc-go/internal/app"
	"dtc-go/internal/config"
	"dtc-go/internal/dtc"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// jobExitCode carries the external tool's exit code out of the run
// command so the process exit status mirrors the job outcome.
var jobExitCode int

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(jobExitCode)
}

// loadConfig reads the config file, falling back to built-in defaults
// when no file has been initialized yet.
func loadConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.NewConfig(defaults["base_dir"]), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newApp reads the config and creates a DTCApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "Run", "Check").
func newApp(operation string) (*app.DTCApp, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewDTCApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "dtc",
	Short: "Batch file timestamp rewriter",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Log Dir: %s\n", cfg.LogDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Source Dir:    %s\n", cfg.SourceDir)
		fmt.Printf("Log Dir:       %s\n", cfg.LogDir)
		fmt.Printf("Extensions:    %s\n", strings.Join(cfg.Extensions, ","))
		fmt.Printf("Tool Binary:   %s\n", cfg.Tool.Binary)
		fmt.Printf("Installer:     %s\n", cfg.Tool.Installer)
		fmt.Printf("Poll Interval: %dms\n", cfg.PollIntervalMS)
		return nil
	},
}

// buildRequest assembles a JobRequest from config defaults, the
// optional preset, and finally explicit flag overrides, in that order.
func buildRequest(cmd *cobra.Command, cfg *config.Config) (dtc.JobRequest, error) {
	req := dtc.JobRequest{
		SourceRoot: cfg.SourceDir,
		MatchMode:  dtc.MatchModified,
		Extensions: cfg.Extensions,
	}

	if preset, _ := cmd.Flags().GetString("preset"); preset != "" {
		if err := app.ApplyPreset(cfg, preset, &req); err != nil {
			return dtc.JobRequest{}, err
		}
	}

	if cmd.Flags().Changed("dir") {
		req.SourceRoot, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("match-by") {
		raw, _ := cmd.Flags().GetString("match-by")
		mode, err := dtc.ParseMatchMode(raw)
		if err != nil {
			return dtc.JobRequest{}, err
		}
		req.MatchMode = mode
	}
	if cmd.Flags().Changed("ext") {
		raw, _ := cmd.Flags().GetString("ext")
		req.Extensions = parseExtensions(raw)
	}
	if cmd.Flags().Changed("set-modified") {
		req.SetModified, _ = cmd.Flags().GetBool("set-modified")
	}
	if cmd.Flags().Changed("set-created") {
		req.SetCreatedFromModified, _ = cmd.Flags().GetBool("set-created")
	}
	if cmd.Flags().Changed("dry-run") {
		req.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	rawMatch, _ := cmd.Flags().GetString("match-date")
	matchDate, err := dtc.NormalizeDate(rawMatch)
	if err != nil {
		return dtc.JobRequest{}, fmt.Errorf("match date: %w", err)
	}
	req.MatchDate = matchDate

	if rawTarget, _ := cmd.Flags().GetString("target-date"); rawTarget != "" {
		targetDate, err := dtc.NormalizeDate(rawTarget)
		if err != nil {
			return dtc.JobRequest{}, fmt.Errorf("target date: %w", err)
		}
		req.TargetDate = targetDate
	}

	if req.SourceRoot == "" {
		return dtc.JobRequest{}, fmt.Errorf("source folder is required; pass --dir or set source_dir in the config")
	}

	return req, nil
}

// parseExtensions converts a comma-separated extension list into the
// request's lowercase dot-free tokens. "*" and "all" disable the filter.
func parseExtensions(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" || raw == dtc.AllExtensions {
		return []string{dtc.AllExtensions}
	}

	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(part), "."))
		if part != "" {
			exts = append(exts, part)
		}
	}
	if len(exts) == 0 {
		return []string{dtc.AllExtensions}
	}
	return exts
}

// confirmWrites prompts before a mutating run when stdin is an
// interactive terminal. Non-interactive callers pass --yes.
func confirmWrites(sourceRoot string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to write without confirmation; pass --yes in non-interactive use")
	}

	fmt.Printf("Proceed with writes under %s? [y/N]: ", sourceRoot)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func executeJob(cmd *cobra.Command, operation string, forceDryRun bool) error {
	a, err := newApp(operation)
	if err != nil {
		return err
	}
	defer a.Close()

	req, err := buildRequest(cmd, a.Config())
	if err != nil {
		return err
	}
	if forceDryRun {
		req.DryRun = true
	}

	if !req.DryRun {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := confirmWrites(req.SourceRoot)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	result, err := a.RunJob(req, os.Stdout)
	if err != nil {
		return err
	}

	jobExitCode = result.ExitCode
	return nil
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "Source folder to scan recursively")
	cmd.Flags().String("match-date", "", "Date to match, YYYY:MM:DD or YYYY-MM-DD (required)")
	cmd.Flags().String("target-date", "", "Date to write into the modified timestamp")
	cmd.Flags().String("match-by", "modified", "Match by \"embedded\" metadata date or \"modified\" file date")
	cmd.Flags().String("ext", "", "Comma-separated extensions without dots; \"all\" for every file")
	cmd.Flags().Bool("set-modified", false, "Set the modified date to the target date, keeping time-of-day")
	cmd.Flags().Bool("set-created", false, "Set the created date from the (resulting) modified date")
	cmd.Flags().String("preset", "", "Apply a named preset from the config before flag overrides")
	cmd.MarkFlagRequired("match-date")
}

// run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a timestamp rewrite job",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeJob(cmd, "Run", false)
	},
}

// preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a job without performing writes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeJob(cmd, "Preview", true)
	},
}

// check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report where the external tools resolve to",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Check")
		if err != nil {
			return err
		}
		defer a.Close()

		for _, line := range a.CheckTools() {
			fmt.Println(line)
		}
		return nil
	},
}

// presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List configured presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if len(cfg.Presets) == 0 {
			fmt.Println("No presets configured.")
			return nil
		}

		for _, p := range cfg.Presets {
			fmt.Printf("%-30s  %s\n", p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	addRequestFlags(runCmd)
	runCmd.Flags().Bool("dry-run", false, "Preview only; no writes are performed")
	runCmd.Flags().BoolP("yes", "y", false, "Skip the interactive write confirmation")
	addRequestFlags(previewCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(presetsCmd)
}
