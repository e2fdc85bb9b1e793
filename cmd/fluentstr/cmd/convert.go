package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr"
)

var errNotConvertible = errors.New("input is not convertible")

func newConvertCmd(_ *app) *cobra.Command {
	var (
		to     string
		layout string
		path   string
		sep    string
		kvSep  string
	)

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Parse the trimmed input into a typed value",
		Example: `  fluentstr convert --to int " 42 "
  fluentstr convert --to map "host=localhost,port=8080"
  fluentstr convert --to date --layout 02.01.2006 24.12.2024
  echo '{"user":{"name":"ada"}}' | fluentstr convert --to json --path user.name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			p := fluentstr.Of(in).Convert()

			var (
				out any
				ok  bool
			)
			switch to {
			case "int":
				out, ok = p.ToInt64()
			case "float":
				out, ok = p.ToFloat64()
			case "decimal":
				var f any
				if f, ok = p.ToBigFloat(); ok {
					out = fmt.Sprint(f)
				}
			case "bool":
				out, ok = p.ToBool()
			case "date":
				var t time.Time
				if t, ok = p.ToDate(layout); ok {
					out = t.Format(time.DateOnly)
				}
			case "instant":
				var t time.Time
				if t, ok = p.ToInstant(); ok {
					out = t.UTC().Format(time.RFC3339Nano)
				}
			case "uuid":
				out, ok = p.ToUUID()
			case "list":
				out, ok = p.ToList(sep)
			case "map":
				out, ok = p.ToMap(sep, kvSep)
			case "json":
				res, found := p.JSON(path)
				out, ok = res.String(), found
			default:
				return fmt.Errorf("unknown target %q", to)
			}
			if !ok {
				return fmt.Errorf("%w to %s", errNotConvertible, to)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&to, "to", "int", "target: int, float, decimal, bool, date, instant, uuid, list, map, json")
	f.StringVar(&layout, "layout", time.DateOnly, "Go time layout for --to date")
	f.StringVar(&path, "path", "", "gjson path for --to json")
	f.StringVar(&sep, "sep", ",", "entry separator for --to list and --to map")
	f.StringVar(&kvSep, "kv-sep", "=", "key/value separator for --to map")
	return cmd
}
