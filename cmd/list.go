package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/selector"
	"github.com/ZeroDread/nudge/internal/ui"
)

var (
	listCategory string
	listFilter   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog commands",
	Long:  "List catalog commands in run order. Example:\n  nudge list --category Blockchain",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		if listCategory != "" {
			c = catalog.FilterByCategory(c, listCategory)
		}
		c = selector.Filter(c, listFilter)
		if len(c) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no commands")
			return nil
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.CatalogTable(c))
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, name := range catalog.Categories(c) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", name)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Only list commands whose name fuzzy-matches this text")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only list commands of this category")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
}
