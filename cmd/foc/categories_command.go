package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"foc/internal/category"
)

func newCategoriesCommand() *cobra.Command {
	var showConflicts bool

	cmd := &cobra.Command{
		Use:         "categories",
		Short:       "List the category table",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := category.Default()
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(rules.Names()))
			for _, rule := range rules.Rules() {
				rows = append(rows, []string{rule.Name, strconv.Itoa(len(rule.Extensions)), strings.Join(rule.Extensions, " ")})
			}
			fmt.Fprintln(out, renderTable([]string{"Category", "Count", "Extensions"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))

			if !showConflicts {
				return nil
			}
			conflicts := rules.Conflicts()
			rows = rows[:0]
			for _, c := range conflicts {
				rows = append(rows, []string{c.Extension, strings.Join(c.Categories, ", "), c.Winner})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Extensions claimed by several categories go to the last one listed:")
			fmt.Fprintln(out, renderTable([]string{"Extension", "Claimed by", "Sorted into"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showConflicts, "conflicts", false, "Also list extensions claimed by more than one category")
	return cmd
}
