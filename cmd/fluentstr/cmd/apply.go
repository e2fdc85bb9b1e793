package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr/recipe"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		steps   []string
		recipes []string
		lazy    bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "apply [text...]",
		Short: "Apply operations to the input",
		Long: `Apply runs operation expressions such as "trim", "pad-left:8:0" or
"replace-all:\s+:-" in order. Named recipes from the config file run first.
See "fluentstr recipes" for the list of operations.`,
		Example: `  fluentstr apply -s trim -s slug "  Hello, World!!  "
  echo "hello world" | fluentstr apply --lazy -s title -s "wrap:*"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var exprs []string
			for _, name := range recipes {
				r, ok := a.cfg.Recipe(name)
				if !ok {
					return fmt.Errorf("unknown recipe %q", name)
				}
				exprs = append(exprs, r...)
			}
			exprs = append(exprs, steps...)

			r, err := recipe.ParseAll(exprs)
			if err != nil {
				return err
			}
			in, err := input(cmd, args)
			if err != nil {
				return err
			}

			a.log.Debug().Strs("steps", exprs).Bool("lazy", lazy).Msg("apply")

			var out string
			if lazy {
				p := r.Pipeline(in)
				if debug {
					p.Debug()
				}
				out, err = p.Collect()
			} else {
				v, verr := r.Value(in)
				if verr == nil && debug {
					v = v.Debug()
				}
				out, err = v.Get(), verr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "operation expression, repeatable")
	cmd.Flags().StringArrayVarP(&recipes, "recipe", "r", nil, "named recipe from the config file, repeatable")
	cmd.Flags().BoolVar(&lazy, "lazy", false, "record the steps in a pipeline and collect once")
	cmd.Flags().BoolVar(&debug, "debug", false, "log the input and result at debug level")
	return cmd
}
