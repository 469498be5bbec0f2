package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkscout/linkscout/filter"
	"github.com/linkscout/linkscout/linkedin"
)

var (
	searchKeywords string
	searchLocation string
	searchTitle    string
	searchCompany  string
	filterExpr     string
	preset         string
)

// searchCmd groups the search subcommands
var searchCmd = &cobra.Command{
	Use:               "search",
	Short:             "Search people, companies, and posts",
	PersistentPreRunE: initializeApp,
}

var searchPeopleCmd = &cobra.Command{
	Use:   "people",
	Short: "Search member profiles",
	RunE:  runSearchPeople,
}

var searchCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Search company pages",
	RunE:  runSearchCompanies,
}

var searchPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Search public posts",
	RunE:  runSearchPosts,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.PersistentFlags().StringVarP(&searchKeywords, "keywords", "k", "", "search keywords")
	searchCmd.PersistentFlags().StringVarP(&searchLocation, "location", "l", "", "location name")
	searchCmd.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to result rows")
	searchCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.PersistentFlags().IntVar(&pageStart, "start", 0, "pagination offset")

	searchPeopleCmd.Flags().StringVar(&searchTitle, "title", "", "current title")
	searchPeopleCmd.Flags().StringVar(&searchCompany, "company", "", "current company")
	searchCmd.AddCommand(searchPeopleCmd)

	searchCmd.AddCommand(searchCompaniesCmd)
	searchCmd.AddCommand(searchPostsCmd)
}

func runSearchPeople(cmd *cobra.Command, args []string) error {
	result, err := client.SearchPeople(context.Background(), linkedin.PeopleSearchOptions{
		Keywords: searchKeywords,
		Location: searchLocation,
		Title:    searchTitle,
		Company:  searchCompany,
		Start:    pageStart,
	})
	if err != nil {
		return fmt.Errorf("people search failed: %w", err)
	}
	return printFiltered(result)
}

func runSearchCompanies(cmd *cobra.Command, args []string) error {
	result, err := client.SearchCompanies(context.Background(), linkedin.CompanySearchOptions{
		Keywords: searchKeywords,
		Location: searchLocation,
		Start:    pageStart,
	})
	if err != nil {
		return fmt.Errorf("company search failed: %w", err)
	}
	return printFiltered(result)
}

func runSearchPosts(cmd *cobra.Command, args []string) error {
	result, err := client.SearchPosts(context.Background(), linkedin.PostSearchOptions{
		Keywords: searchKeywords,
		Start:    pageStart,
	})
	if err != nil {
		return fmt.Errorf("post search failed: %w", err)
	}
	return printFiltered(result)
}

// printFiltered narrows result rows with the configured filter expression
// before printing. Without a filter the raw result is printed unchanged.
func printFiltered(result any) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression == "" {
		return printJSON(result)
	}

	compiled, err := filter.Compile(expression)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	rows := extractRows(result)
	if rows == nil {
		logger.Warn().Msg("Result has no recognizable row list, printing unfiltered")
		return printJSON(result)
	}

	matched, err := compiled.Apply(rows)
	if err != nil {
		return fmt.Errorf("filter evaluation failed: %w", err)
	}

	logger.Info().
		Int("total", len(rows)).
		Int("matched", len(matched)).
		Str("filter", expression).
		Msg("Applied filter to search results")

	return printJSON(matched)
}

// getFilterExpression resolves the --filter flag or a --preset name from
// config. The flag wins when both are given.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}
	if preset == "" {
		return "", nil
	}
	expression, ok := cfg.Filters[preset]
	if !ok {
		return "", fmt.Errorf("preset %q not found in config", preset)
	}
	return expression, nil
}

// extractRows digs the row list out of a search response. The API wraps
// result arrays under a handful of envelope keys.
func extractRows(result any) []any {
	switch v := result.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range []string{"items", "results", "data", "elements"} {
			if rows, ok := v[key].([]any); ok {
				return rows
			}
		}
	}
	return nil
}
