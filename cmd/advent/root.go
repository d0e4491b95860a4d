package advent

import (
	"fmt"
	"io"
	"os"

	"github.com/husi/advent-of-tdd/internal/version"
	"github.com/husi/advent-of-tdd/pkg/config"
	"github.com/husi/advent-of-tdd/pkg/display"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/husi/advent-of-tdd/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	// Registers every daily solver
	_ "github.com/husi/advent-of-tdd/pkg/solutions"
)

// app holds what the persistent flags resolve to before a command runs
type app struct {
	fs     afero.Fs
	loader *input.Loader

	verbosity  int
	configFile string
	output     string
	color      string

	cfg *config.Config
}

// setup loads the configuration, applying flags as the final layer
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("output") {
		overrides["output.format"] = a.output
	}
	if cmd.Flags().Changed("color") {
		overrides["output.color"] = a.color
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	styles.SetColorMode(cfg.Output.Color, os.Stdout)
	return nil
}

func (a *app) renderer() (display.Renderer, error) {
	return display.New(a.cfg.Output.Format)
}

// reportError writes err in the configured output format
func (a *app) reportError(stdout, stderr io.Writer, err error) {
	if a.cfg != nil && a.cfg.Output.Format == config.FormatJSON {
		_ = display.RenderError(stdout, err)
		return
	}
	fmt.Fprintln(stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	defer func() { _ = logging.Close() }()

	a, rootCmd := buildRoot(afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		a.reportError(os.Stdout, os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	_, rootCmd := buildRoot(fs)
	return rootCmd
}

func buildRoot(fs afero.Fs) (*app, *cobra.Command) {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: fs, loader: input.NewLoader(fs)}

	rootCmd := &cobra.Command{
		Use:     "advent",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", config.FormatText, MsgFlagOutput)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", config.ColorAuto, MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "puzzles",
		Title: "PUZZLES:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newAlmanacCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return a, rootCmd
}
