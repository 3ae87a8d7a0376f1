package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
)

func newTextCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Work with localized messages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "render KEY [name=value...]",
		Short: "Render a message in the configured language",
		Example: `  kit text render constraint.length.range min=5 max=10
  kit --lang de text render types.integer`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			opts := a.renderOptions()
			if !a.catalog.HasTranslation(opts.Lang, key) {
				return fmt.Errorf("%w: %s", errUnknownKey, key)
			}

			params := make([]any, 0, 2*(len(args)-1))
			for _, arg := range args[1:] {
				name, value, ok := strings.Cut(arg, "=")
				if !ok || name == "" {
					return fmt.Errorf("%w: %q", errMalformedProperty, arg)
				}
				params = append(params, name, value)
			}

			a.log.Debug("rendering message", logger.Lang(opts.Lang), slog.String("key", key))
			fmt.Fprintln(cmd.OutOrStdout(), opts.Render(text.New(key, key, params...)))
			return nil
		},
	})
	return cmd
}
