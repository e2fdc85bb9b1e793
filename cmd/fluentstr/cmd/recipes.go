package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr/recipe"
)

func newRecipesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List operations and configured recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "operations:")
			for _, name := range recipe.Names() {
				usage, _ := recipe.Usage(name)
				fmt.Fprintf(out, "  %s\n", usage)
			}

			if len(a.cfg.Recipes) == 0 {
				return nil
			}
			names := make([]string, 0, len(a.cfg.Recipes))
			for name := range a.cfg.Recipes {
				names = append(names, name)
			}
			slices.Sort(names)

			fmt.Fprintln(out, "recipes:")
			for _, name := range names {
				if _, err := recipe.ParseAll(a.cfg.Recipes[name]); err != nil {
					return fmt.Errorf("recipe %s: %w", name, err)
				}
				fmt.Fprintf(out, "  %s: %s\n", name, strings.Join(a.cfg.Recipes[name], " | "))
			}
			return nil
		},
	}
}
