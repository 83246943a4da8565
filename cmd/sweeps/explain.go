package sweeps

import (
	"fmt"

	"github.com/arthur-debert/sweeps/pkg/explain"
	"github.com/arthur-debert/sweeps/pkg/output"
	"github.com/spf13/cobra"
)

func newExplainCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "explain",
		Short:   MsgExplainShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			content := explain.Markdown()
			if renderer.Format() == output.FormatTerminal {
				content = explain.NewRenderer(opts.cfg.Output.Width).Render(content)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}
