/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// version is the application version.
var version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// NewRootCmd builds the todo command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "todo keeps a personal to-do list from an interactive menu.",
		Long: `todo is an interactive to-do list manager.
Start it with no arguments and pick an action from the menu: add, list,
edit, delete or complete tasks. Tasks are saved to a local file after
every change.`,
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return InitConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, GetConfig())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./.todo.yaml or $HOME/.todo.yaml)")
	flags.BoolP("verbose", "v", false, "enable verbose output")
	flags.String("data-file", "", "task file path (default db/tasks.json)")
	flags.String("format", "", fmt.Sprintf("storage format: %s (default json)", strings.Join(store.Formats, ", ")))

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("data.file", flags.Lookup("data-file"))
	_ = v.BindPFlag("data.format", flags.Lookup("format"))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, config *types.AppConfig) error {
	log, err := logger.New(cmd.ErrOrStderr(), config.Log.Level, config.Verbose)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	taskStore, err := GetStore(afero.NewOsFs(), log, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := taskStore.Close(); err != nil {
			log.Warn("failed to close task store", "error", err)
		}
	}()

	crashDir := config.Log.CrashDir
	if crashDir == "" {
		crashDir = filepath.Dir(taskStore.Path())
	}
	logger.SetVersion(version)
	logger.SetDataFile(taskStore.Path())
	logger.SetBaseDir(crashDir)

	prompt := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), config.UI.Mode)
	manager := todo.NewManager(taskStore, recordingPrompter{prompt}, todo.WithLogger(log))

	newSession(manager, prompt, cmd.OutOrStdout(), cmd.ErrOrStderr()).run()
	return nil
}

// GetStore opens the task store described by config.
func GetStore(fsys afero.Fs, log *slog.Logger, config *types.AppConfig) (store.TaskStore, error) {
	s, err := store.Open(fsys, log, config.Data.File, config.Data.Format)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	return s, nil
}

// newPrompter picks terminal widgets or line prompts according to mode.
func newPrompter(in io.Reader, out io.Writer, mode string) todo.Prompter {
	switch mode {
	case "line":
		return ui.NewLinePrompter(in, out)
	case "prompt":
		return ui.NewPromptUI(promptStreams(in, out))
	}
	if isTerminal(in) && isTerminal(out) {
		return ui.NewPromptUI(promptStreams(in, out))
	}
	return ui.NewLinePrompter(in, out)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// promptStreams maps the process terminal to nil so the widgets use their
// default stdin handling.
func promptStreams(in io.Reader, out io.Writer) (io.ReadCloser, io.WriteCloser) {
	var rc io.ReadCloser
	var wc io.WriteCloser
	if in != io.Reader(os.Stdin) {
		rc = io.NopCloser(in)
	}
	if out != io.Writer(os.Stdout) {
		wc = nopWriteCloser{out}
	}
	return rc, wc
}

// recordingPrompter notes free-text answers for crash reports.
type recordingPrompter struct {
	todo.Prompter
}

func (p recordingPrompter) Input(label string) (string, error) {
	value, err := p.Prompter.Input(label)
	if err == nil {
		logger.SetLastInput(value)
	}
	return value, err
}
