package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr"
)

func newCheckCmd(_ *app) *cobra.Command {
	var (
		minLen, maxLen int
		notBlank       bool
		contains       string
		matches        string
		alpha          bool
		date           string
		oneOf          []string
		example        string
		schema         bool
	)

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Assert rules against the input",
		Long: `Check runs the selected rules in order and fails on the first one
that does not hold. With --schema it prints the rules as an OpenAPI schema
instead of checking anything.`,
		Example: `  fluentstr check --not-blank --min 3 --max 20 --matches "[a-z-]+" hello-world
  fluentstr check --date 2006-01-02 --schema`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in string
			if !schema {
				var err error
				if in, err = input(cmd, args); err != nil {
					return err
				}
			}

			a := fluentstr.Of(in).AssertThat()
			if notBlank {
				a.NotBlank("value must not be blank")
			}
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				a.LengthBetween(minLen, maxLen)
			}
			if contains != "" {
				a.Contains(contains, fmt.Sprintf("value must contain %q", contains))
			}
			if matches != "" {
				a.Matches(matches, fmt.Sprintf("value must match %s", matches))
			}
			if alpha {
				a.HasAlphabetic()
			}
			if date != "" {
				a.Date(date)
			}
			if len(oneOf) > 0 {
				a.OneOf(oneOf...)
			}
			if example != "" {
				a.Example(example)
			}

			if schema {
				ref, err := a.Schema("value")
				if err != nil {
					return err
				}
				b, err := json.MarshalIndent(ref, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			if err := a.Err(); err != nil {
				return err
			}
			summary, err := a.Summary("value")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", summary)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&minLen, "min", 0, "minimum length in characters")
	f.IntVar(&maxLen, "max", 1<<16, "maximum length in characters")
	f.BoolVar(&notBlank, "not-blank", false, "reject blank input")
	f.StringVar(&contains, "contains", "", "require a substring")
	f.StringVar(&matches, "matches", "", "require the whole input to match a regular expression")
	f.BoolVar(&alpha, "alpha", false, "require at least one letter")
	f.StringVar(&date, "date", "", "require a date in this Go layout, e.g. 2006-01-02")
	f.StringSliceVar(&oneOf, "one-of", nil, "require one of these comma separated values")
	f.StringVar(&example, "example", "", "example value shown in the schema")
	f.BoolVar(&schema, "schema", false, "print the rules as an OpenAPI schema")
	return cmd
}
