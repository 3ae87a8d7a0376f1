// Package cmd implements the kit command line tool.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/dmitrymomot/kit/pkg/abnf" // registers the RFC grammar tables
	"github.com/dmitrymomot/kit/pkg/config"
	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
)

// ErrRejected is returned by validate when the value does not pass. The
// reason has already been printed.
var ErrRejected = errors.New("value rejected")

// app carries the state shared by all subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfg     config.Kit
	log     *slog.Logger
	catalog *text.Catalog

	lang  string
	level string
}

// Execute runs the kit command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kit",
		Short: "Validate values and inspect kit enumerations and messages",
		Long: `kit runs values through the typed input pipeline and renders the
localized messages it produces.

Configuration is read from the environment (and an optional .env file):
  KIT_LANG              message language (default: en)
  KIT_INFO_LEVEL        user, technical or internal (default: user)
  KIT_LOG_LEVEL         debug, info, warn or error (default: info)
  KIT_LOG_FORMAT        text or json (default: text)
  KIT_TRANSLATIONS_DIR  extra YAML translations merged over the built-in ones`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language, overrides KIT_LANG")
	root.PersistentFlags().StringVar(&a.level, "level", "", "message detail level, overrides KIT_INFO_LEVEL")

	root.AddCommand(
		newValidateCommand(a),
		newEnumCommand(a),
		newTextCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadKit()
	if err != nil {
		return err
	}
	if a.lang != "" {
		cfg.Lang = a.lang
	}
	if a.level != "" {
		if _, err := text.ParseLevel(a.level); err != nil {
			return err
		}
		cfg.InfoLevel = a.level
	}
	a.cfg = cfg
	a.log = cfg.Logger(logger.WithOutput(cmd.ErrOrStderr()), logger.WithService("kit"))

	catalog := text.NewDefault(text.WithLogger(a.log))
	if cfg.TranslationsDir != "" {
		extra, err := text.NewCatalog(cmd.Context(),
			text.NewDirectoryAdapter(text.NewYAMLParser(), cfg.TranslationsDir),
			text.WithLogger(a.log),
		)
		if err != nil {
			return fmt.Errorf("load translations from %s: %w", cfg.TranslationsDir, err)
		}
		catalog.Merge(extra)
		a.log.Debug("translations merged", slog.String("dir", cfg.TranslationsDir))
	}
	a.catalog = catalog
	return nil
}

// renderOptions returns the message options for the configured language
// and level.
func (a *app) renderOptions() text.Options {
	return text.Options{
		Lang:       a.catalog.Negotiate(a.cfg.Lang),
		Level:      a.cfg.Level(),
		Translator: a.catalog,
	}
}
