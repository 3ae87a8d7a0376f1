package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/types"
)

var valueTypes = []string{"text", "integer", "float", "boolean", "datetime", "uuid"}

type validateFlags struct {
	kind      string
	modifiers []string
	nullable  bool
	name      string
}

func newValidateCommand(a *app) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate [VALUE]",
		Short: "Run a value through the input pipeline",
		Long: `Validate coerces VALUE into the selected type, applies the given
modifiers and prints the result. When the value is rejected the localized
error is printed to stderr and the command exits with status 1.

Without VALUE the input receives null, which only --nullable inputs accept.

Modifiers are given as NAME or NAME:key=value,key=value. A segment without
"=" continues the previous value, so lists read naturally:

  kit validate --type text --modifier "length:min=5,max=10" hello
  kit validate --type text --modifier trim --modifier "uri:schemes=http,https" " https://example.com "
  kit validate --type integer --modifier "range:min=1,max=10" 11`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw any
			if len(args) == 1 {
				raw = args[0]
			}
			return a.validate(cmd.OutOrStdout(), cmd.ErrOrStderr(), f, raw)
		},
	}

	cmd.Flags().StringVarP(&f.kind, "type", "t", "text", "value type: "+strings.Join(valueTypes, ", "))
	cmd.Flags().StringArrayVarP(&f.modifiers, "modifier", "m", nil, "modifier NAME[:key=value,...], repeatable")
	cmd.Flags().BoolVar(&f.nullable, "nullable", false, "accept a missing value as null")
	cmd.Flags().StringVar(&f.name, "name", "", "input name used in logs")
	return cmd
}

func (a *app) validate(out, errOut io.Writer, f validateFlags, raw any) error {
	switch f.kind {
	case "text":
		return run[string](a, out, errOut, types.Text(), f, raw)
	case "integer":
		return run[int64](a, out, errOut, types.Integer(), f, raw)
	case "float":
		return run[float64](a, out, errOut, types.Float(), f, raw)
	case "boolean":
		return run[bool](a, out, errOut, types.Boolean(), f, raw)
	case "datetime":
		return run[time.Time](a, out, errOut, types.DateTime(), f, raw)
	case "uuid":
		return run[uuid.UUID](a, out, errOut, types.UUID(), f, raw)
	default:
		return fmt.Errorf("unknown type %q, expected one of: %s", f.kind, strings.Join(valueTypes, ", "))
	}
}

func run[T any](a *app, out, errOut io.Writer, proto input.Prototype[T], f validateFlags, raw any) error {
	in, err := input.New(proto,
		input.WithName(f.name),
		input.WithNullable(f.nullable),
		input.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	for _, spec := range f.modifiers {
		name, props, err := parseModifier(spec)
		if err != nil {
			return err
		}
		if err := in.AddNamed(name, props); err != nil {
			return err
		}
	}

	if !in.SetValue(raw) {
		fmt.Fprintln(errOut, in.ErrorMessage(a.renderOptions()))
		return ErrRejected
	}

	a.log.Debug("value accepted",
		logger.Input(f.name),
		logger.Prototype(in.PrototypeName()),
		logger.Value(raw),
	)
	if in.IsNull() {
		fmt.Fprintln(out, "null")
		return nil
	}
	fmt.Fprintln(out, formatValue(in.MustValue()))
	return nil
}

// parseModifier splits "name:k=v,k=v" into a name and raw properties.
func parseModifier(spec string) (string, map[string]any, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("modifier %q: %w", spec, errEmptyModifierName)
	}

	props := make(map[string]any)
	if strings.TrimSpace(rest) == "" {
		return name, props, nil
	}

	var last string
	for _, part := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			if last == "" {
				return "", nil, fmt.Errorf("modifier %q: %w: %q", spec, errMalformedProperty, part)
			}
			props[last] = props[last].(string) + "," + part
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return "", nil, fmt.Errorf("modifier %q: %w: %q", spec, errMalformedProperty, part)
		}
		props[key] = value
		last = key
	}
	return name, props, nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case uuid.UUID:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
