package sweeps

import (
	"fmt"

	"github.com/arthur-debert/sweeps/internal/version"
	"github.com/arthur-debert/sweeps/pkg/config"
	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/input"
	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/arthur-debert/sweeps/pkg/output"
	"github.com/arthur-debert/sweeps/pkg/sweep"
	"github.com/spf13/cobra"
)

// rootOptions carries the global flags and the lazily loaded configuration
type rootOptions struct {
	verbosity  int
	configFile string
	format     string
	noColor    bool

	cfg *config.Config
}

// config loads the configuration once and applies flag overrides
func (o *rootOptions) config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: o.configFile})
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}

	if o.format != "" {
		if _, err := output.ParseFormat(o.format); err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrBadFormatFlag).
				WithDetail("value", o.format)
		}
		cfg.Output.Format = o.format
	}
	if o.noColor {
		cfg.Output.NoColor = true
	}

	o.cfg = cfg
	return cfg, nil
}

// renderer builds an output renderer for the command's stdout
func (o *rootOptions) renderer(cmd *cobra.Command) (*output.Renderer, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	// Validated while loading.
	format, _ := output.ParseFormat(cfg.Output.Format)
	r := output.NewRenderer(cmd.OutOrStdout(), format, cfg.Output.NoColor)
	if cfg.Output.Styles != "" {
		if err := r.UseStyles(cfg.Output.Styles); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "sweeps",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCountCmd(opts))
	rootCmd.AddCommand(newTraceCmd(opts))
	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// readSequences gathers sequences from arguments and from the --file flag
func readSequences(cmd *cobra.Command, opts *rootOptions, args []string, file string) ([][]int, error) {
	if len(args) == 0 && file == "" {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoSequences)
	}

	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	seps := cfg.Input.Separators

	sequences, err := input.ParseAll(args, seps)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, MsgErrReadSequences)
	}

	if file != "" {
		var fromFile [][]int
		if file == "-" {
			fromFile, err = input.Load(cmd.InOrStdin(), input.FormatText, seps)
		} else {
			fromFile, err = input.LoadFile(file, seps)
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrReadSequences)
		}
		sequences = append(sequences, fromFile...)
	}

	return sequences, nil
}

// sweepAndRender evaluates the sequences, renders every outcome, and reports
// an error if any of them failed.
func sweepAndRender(cmd *cobra.Command, opts *rootOptions, sequences [][]int, mode output.Mode) error {
	logger := logging.GetLogger("cmd." + cmd.Name())
	done := logging.LogOperationStart(logger, cmd.Name())
	defer done()

	renderer, err := opts.renderer(cmd)
	if err != nil {
		return err
	}

	outcomes := sweep.Evaluate(cmd.Context(), sequences)
	if err := renderer.Render(outcomes, mode); err != nil {
		return err
	}

	var firstErr error
	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
			if firstErr == nil {
				firstErr = o.Err
			}
			logger.Info().Err(o.Err).Ints("sequence", o.Sequence).Msg("Sequence failed")
		}
	}
	if failed > 0 {
		return errors.Wrapf(firstErr, errors.GetErrorCode(firstErr), MsgErrSomeFailed, failed, len(outcomes)).
			WithDetail("failed", failed)
	}

	logger.Info().Int("sequences", len(outcomes)).Msg("All sequences swept")
	return nil
}

func newCountCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "count [sequence...]",
		Short:   MsgCountShort,
		Example: MsgCountExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			sequences, err := readSequences(cmd, opts, args, file)
			if err != nil {
				return err
			}
			return sweepAndRender(cmd, opts, sequences, output.ModeCount)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	return cmd
}

func newTraceCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "trace [sequence...]",
		Short:   MsgTraceShort,
		Example: MsgTraceExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			sequences, err := readSequences(cmd, opts, args, file)
			if err != nil {
				return err
			}
			return sweepAndRender(cmd, opts, sequences, output.ModeTrace)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", MsgFlagFile)
	return cmd
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			mode := output.ModeCount
			if trace {
				mode = output.ModeTrace
			}
			return sweepAndRender(cmd, opts, cfg.Demo.Sequences, mode)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, MsgTraceShort)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgUserConfigFormat, config.UserConfigPath())
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
