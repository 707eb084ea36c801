package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/config"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/exporter"
	"github.com/nikbrunner/bizbook/internal/importer"
	"github.com/nikbrunner/bizbook/internal/logger"
	"github.com/nikbrunner/bizbook/internal/logic"
	bizmcp "github.com/nikbrunner/bizbook/internal/mcp"
	"github.com/nikbrunner/bizbook/internal/model"
	"github.com/nikbrunner/bizbook/internal/picker"
	"github.com/nikbrunner/bizbook/internal/search"
	"github.com/nikbrunner/bizbook/internal/storage"
	"github.com/nikbrunner/bizbook/internal/tui"
)

var version = "dev"

// env is what every subcommand shares once flags are parsed.
type env struct {
	configPath string
	dataPath   string
	logLevel   string

	cfg *config.Config
	log *logger.Logger
}

func main() {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "bizbook",
		Short: "Command-driven address book for small businesses",
		Long: `bizbook keeps your customers, suppliers and partners in one address book.

Run without arguments to open the interactive command box, or use a
subcommand for one-shot work from the shell.`,
		Version:           version,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: e.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default ~/.config/bizbook/config.toml)")
	rootCmd.PersistentFlags().StringVar(&e.dataPath, "data", "", "address book file; .db selects the sqlite backend")
	rootCmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled")

	rootCmd.AddCommand(
		runCmd(e),
		searchCmd(e),
		importCmd(e),
		exportCmd(e),
		mcpCmd(e),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and builds the logger before any subcommand runs.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	path := e.configPath
	if path == "" {
		var err error
		path, err = config.DefaultFilePath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if e.dataPath != "" {
		cfg.SetDataPath(e.dataPath)
	}
	if e.logLevel != "" {
		cfg.Log.Level = e.logLevel
	}
	// stdout belongs to the MCP transport.
	if cmd.Name() == "mcp" && cfg.Log.Output == "stdout" {
		cfg.Log.Output = "stderr"
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.log = log
	return nil
}

// withStorage opens the configured backend for fn and closes it again.
func (e *env) withStorage(fn func(s storage.Storage) error) error {
	s, err := storage.Open(e.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open address book: %w", err)
	}
	defer func() {
		if err := storage.Close(s); err != nil {
			e.log.Warn().Err(err).Msg("failed to close storage")
		}
	}()
	return fn(s)
}

func (e *env) loadManager(s storage.Storage) (*logic.Manager, error) {
	manager, err := logic.Load(s, e.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}
	return manager, nil
}

// runTUI runs the full interactive command box. Every change is saved as
// it happens, so nothing is left to write on exit.
func (e *env) runTUI() error {
	return e.withStorage(func(s storage.Storage) error {
		manager, err := e.loadManager(s)
		if err != nil {
			return err
		}

		app := tui.NewApp(tui.AppParams{
			Manager:             manager,
			SidebarWidthPercent: e.cfg.UI.SidebarWidthPercent,
			Logger:              e.log,
		})
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("error running app: %w", err)
		}
		return nil
	})
}

func runCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command line>",
		Short: "Execute one command and print its feedback",
		Example: `  bizbook run add n/Alex Yeoh p/87438807 e/alex@example.com a/Blk 30 Geylang t/friends
  bizbook run list t/suppliers`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			return e.withStorage(func(s storage.Storage) error {
				manager, err := e.loadManager(s)
				if err != nil {
					return err
				}

				res, err := manager.Execute(line)
				if err != nil && !errors.Is(err, errors.ErrStorage) {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, res.Feedback)
				if res.ShowHelp {
					fmt.Fprintln(out)
					for _, entry := range command.Manual() {
						fmt.Fprintln(out, entry.Summary())
					}
				}
				return err
			})
		},
	}
}

func searchCmd(e *env) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-find a person and copy their phone or email",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if field == "" {
				field = e.cfg.UI.CopyField
			}

			var persons []model.Person
			err := e.withStorage(func(s storage.Storage) error {
				book, err := s.Load()
				if err != nil {
					return fmt.Errorf("failed to load address book: %w", err)
				}
				persons = book.Persons
				return nil
			})
			if err != nil {
				return err
			}

			results := search.FuzzySearchPersons(persons, query)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No persons found for '%s'\n", query)
				return nil
			}

			p := picker.New(results, query, field)
			if len(results) > 1 {
				finalModel, err := tea.NewProgram(p).Run()
				if err != nil {
					return fmt.Errorf("error running picker: %w", err)
				}
				p = finalModel.(picker.Picker)
				if p.Cancelled() {
					return nil
				}
			} else {
				// Single result - select it directly
				p = p.Select()
			}

			person := p.SelectedPerson()
			value, ok := p.SelectedValue()
			if person == nil || !ok {
				return nil
			}
			if err := clipboard.WriteAll(value); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s of %s: %s\n", p.Field(), person.Name, value)
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "field to copy: phone or email (default from config)")
	return cmd
}

func importCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html>",
		Short: "Merge persons, folders and features from an HTML contact sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			sheet, err := importer.ParseHTMLContacts(file)
			if err != nil {
				return fmt.Errorf("failed to parse HTML: %w", err)
			}

			return e.withStorage(func(s storage.Storage) error {
				book, err := s.Load()
				if err != nil {
					return fmt.Errorf("failed to load address book: %w", err)
				}

				summary := importer.Merge(book, sheet)
				if err := s.Save(book); err != nil {
					return errors.NewStorage(err)
				}
				e.log.Info().
					Int("added", summary.Added).
					Int("skipped", summary.Skipped).
					Int("invalid", summary.Invalid).
					Str("file", args[0]).
					Msg("import finished")

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d persons, %d folders, %d features",
					summary.Added, summary.Folders, summary.Features)
				if summary.Skipped > 0 {
					fmt.Fprintf(out, " (%d duplicates skipped)", summary.Skipped)
				}
				if summary.Invalid > 0 {
					fmt.Fprintf(out, " (%d invalid entries skipped)", summary.Invalid)
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}

func exportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the address book as an HTML contact sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputPath string
			if len(args) == 1 {
				outputPath = args[0]
			} else {
				var err error
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("failed to get default export path: %w", err)
				}
			}

			return e.withStorage(func(s storage.Storage) error {
				book, err := s.Load()
				if err != nil {
					return fmt.Errorf("failed to load address book: %w", err)
				}

				if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(book)), 0644); err != nil {
					return fmt.Errorf("failed to write file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d persons, %d folders to %s\n",
					len(book.Persons), len(book.Folders), outputPath)
				return nil
			})
		},
	}
}

func mcpCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the address book to AI assistants over MCP (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStorage(func(s storage.Storage) error {
				manager, err := e.loadManager(s)
				if err != nil {
					return err
				}
				return bizmcp.Run(manager, e.log, version)
			})
		},
	}
}
