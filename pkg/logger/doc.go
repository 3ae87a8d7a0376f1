// Package logger builds the *slog.Logger instances used across the kit.
//
// New assembles a text or JSON handler from functional options and wraps it
// in a decorator that pulls attributes out of context.Context on every
// record. Components that accept a logger (input.Input, property.Manager,
// text.Catalog) default to Discard, so the kit is silent unless a logger is
// handed in.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("signup")),
//	)
//	in := input.Must(types.Text(), input.WithLogger(log))
//
// Attribute helpers in attr.go keep key names consistent: Input, Modifier,
// Priority, Stage, Property, Phase, Mode, Error and friends. Helpers that take
// optional values return an empty slog.Attr, which slog drops, so calls such
// as log.Debug("rejected", logger.Error(err)) need no nil check.
package logger
