// Package main provides the CLI entrypoint for typings.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typings/internal/config"
	"github.com/verte-zerg/typings/internal/corpus"
	"github.com/verte-zerg/typings/internal/engine"
	"github.com/verte-zerg/typings/internal/logging"
	"github.com/verte-zerg/typings/internal/sampler"
	"github.com/verte-zerg/typings/internal/tui"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

type options struct {
	wordlist  string
	logLevel  string
	logFormat string
	logFile   string
}

var (
	opts         options
	corpusSample bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typings",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.wordlist, "wordlist", "", "word list file, one word per line (default: bundled list)")
	flags.StringVar(&opts.logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", defaultLogFormat, "log format (text, json)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCorpusCmd())

	return rootCmd
}

// loadOptions merges the config file under flags that were not set explicitly.
func loadOptions(cmd *cobra.Command) (options, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return options{}, fmt.Errorf("failed to load config: %w", err)
	}
	merged := opts
	applyStringConfig(cmd, "wordlist", &merged.wordlist, fileCfg.Practice.Wordlist)
	applyStringConfig(cmd, "log-level", &merged.logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &merged.logFormat, fileCfg.Log.Format)
	applyStringConfig(cmd, "log-file", &merged.logFile, fileCfg.Log.File)
	return merged, nil
}

func newLogger(o options) (*logrus.Logger, func() error, error) {
	logger, closeFn, err := logging.New(logging.Options{
		Level:  o.logLevel,
		Format: o.logFormat,
		File:   o.logFile,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, closeFn, nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	o, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	logger, closeLog, err := newLogger(o)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", cerr)
		}
	}()

	src, err := corpus.Resolve(o.wordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	logger.WithFields(logrus.Fields{"source": src.Name, "words": len(src.Words)}).Info("word list loaded")

	eng, err := engine.New(src.Words, sampler.New())
	if err != nil {
		return fmt.Errorf("failed to start test from %s: %w", src.Name, err)
	}

	model := tui.NewModel(eng, logger, src.Name)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Show the active word list",
		Args:  cobra.NoArgs,
		RunE:  runCorpusCmd,
	}
	cmd.Flags().BoolVar(&corpusSample, "sample", false, "print one test's worth of sampled words")
	return cmd
}

func runCorpusCmd(cmd *cobra.Command, _ []string) error {
	o, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	src, err := corpus.Resolve(o.wordlist)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	out := cmd.OutOrStdout()
	if !corpusSample {
		_, err := fmt.Fprintf(out, "source: %s\nwords: %d\n", src.Name, len(src.Words))
		return err
	}
	words, err := sampler.New().Sample(src.Words, engine.DefaultSampleSize)
	if err != nil {
		return fmt.Errorf("failed to sample %s: %w", src.Name, err)
	}
	_, err = fmt.Fprintln(out, strings.Join(words, " "))
	return err
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typings configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# wordlist = "/path/to/words.txt"   # One word per line (default: bundled list)

[log]
# level = %q                       # debug, info, warn, error
# format = %q                      # text or json
# file = %q
`,
		defaultLogLevel,
		defaultLogFormat,
		config.DefaultLogPath(),
	)
}
