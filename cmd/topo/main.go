package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/wahlandcase/topo-order-commits/internal/app"
	"github.com/wahlandcase/topo-order-commits/internal/config"
	"github.com/wahlandcase/topo-order-commits/internal/git"
	"github.com/wahlandcase/topo-order-commits/internal/topo"
	"github.com/wahlandcase/topo-order-commits/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

var (
	verbose bool
	cfg     *config.Config
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var notRepo *git.NotRepositoryError
	if errors.As(err, &notRepo) {
		fmt.Fprintln(stderr, "Not inside a Git repository")
		return 1
	}
	fmt.Fprintln(stderr, err)
	return 2
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "topo",
		Short: "Print a deterministic topological order of the commits in this repository",
		Long: `topo reads the loose objects of the enclosing git repository and prints every
commit reachable from refs/heads, newest first. Lines where the next printed
commit is not a parent are followed by a "parents=" / "=children" block.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newBrowseCmd(), newConfigCmd(stdout))
	return rootCmd
}

// setup loads the config and sends log output to stderr only when asked to.
// The printer itself never depends on the config file: an unreadable one
// falls back to the defaults there and only fails the subcommands.
func setup(cmd *cobra.Command, args []string) error {
	log.SetFlags(0)
	log.SetOutput(io.Discard)
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	}

	loaded, err := config.Load()
	if err != nil {
		if cmd.HasParent() {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.Printf("topo: ignoring config: %v", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded
	if cfg.Log.Verbose {
		log.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}

func run(stdout io.Writer) error {
	repo, err := git.OpenCurrentRepository(cfg.Layout())
	if err != nil {
		return err
	}

	report, err := topo.Build(repo)
	if err != nil {
		return err
	}

	return report.Print(stdout)
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the commit order interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fail before entering the alt screen when there is no repository
			repo, err := git.OpenCurrentRepository(cfg.Layout())
			if err != nil {
				return err
			}

			ui.Setup(cfg.Browse.Color)
			model := app.New(cfg, func() (*topo.Report, error) {
				return topo.Build(repo)
			})
			p := tea.NewProgram(model, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}
}

func newConfigCmd(stdout io.Writer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.DefaultConfig().Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintln(stdout, path)
			return nil
		},
	})

	return configCmd
}
