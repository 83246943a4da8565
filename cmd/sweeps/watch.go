package sweeps

import (
	"fmt"

	"github.com/arthur-debert/sweeps/pkg/errors"
	"github.com/arthur-debert/sweeps/pkg/input"
	"github.com/arthur-debert/sweeps/pkg/logging"
	"github.com/arthur-debert/sweeps/pkg/output"
	"github.com/arthur-debert/sweeps/pkg/sweep"
	"github.com/arthur-debert/sweeps/pkg/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:     "watch FILE",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			logger := logging.GetLogger("cmd.watch")

			cfg, err := opts.config()
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			mode := output.ModeCount
			if trace {
				mode = output.ModeTrace
			}

			evaluate := func() error {
				sequences, err := input.LoadFile(path, cfg.Input.Separators)
				if err != nil {
					return errors.Wrapf(err, errors.GetErrorCode(err), MsgWatchReloadFail, path)
				}
				return renderer.Render(sweep.Evaluate(cmd.Context(), sequences), mode)
			}

			if err := evaluate(); err != nil {
				return err
			}

			onChange := func() {
				if err := evaluate(); err != nil {
					logger.Warn().Err(err).Str("path", path).Msg("Reload failed")
					fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
				}
			}

			return watch.File(cmd.Context(), path, cfg.Watch.Debounce, onChange)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, MsgTraceShort)
	return cmd
}
