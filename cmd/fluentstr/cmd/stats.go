package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gobd/fluentstr"
)

func newStatsCmd(_ *app) *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "stats [text...]",
		Short: "Print character, word and line statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := input(cmd, args)
			if err != nil {
				return err
			}
			v := fluentstr.Of(in)

			chars, words := v.CharFrequency().String(), v.WordFrequency().String()
			if fold {
				chars, words = v.CharFrequencyFold().String(), v.WordFrequencyFold().String()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "length\t%d\n", v.Len())
			fmt.Fprintf(w, "chars\t%d\n", v.CharCount())
			fmt.Fprintf(w, "words\t%d\n", v.WordCount())
			fmt.Fprintf(w, "lines\t%d\n", v.LineCount())
			fmt.Fprintf(w, "palindrome\t%t\n", v.IsPalindrome())
			fmt.Fprintf(w, "char frequency\t%s\n", chars)
			fmt.Fprintf(w, "word frequency\t%s\n", words)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&fold, "ignore-case", "i", false, "count case-insensitively")
	return cmd
}
