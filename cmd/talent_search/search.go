package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-search/internal/observability"
	"github.com/jonathan/talent-search/internal/search"
	"github.com/jonathan/talent-search/internal/store"
	"github.com/jonathan/talent-search/internal/types"
)

var (
	searchData      string
	searchSkills    []string
	searchKeywords  []string
	searchCity      string
	searchPosition  string
	searchSeniority string
	searchSortBy    string
	searchMinScore  int
	searchLimit     int
	searchPage      int
	searchEvidence  bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a one-shot search against a JSON candidate dataset",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchData, "data", "", "Path to candidate dataset JSON (required)")
	searchCmd.Flags().StringSliceVar(&searchSkills, "skills", nil, "Requested skills")
	searchCmd.Flags().StringSliceVar(&searchKeywords, "keywords", nil, "Free-text keywords")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "City filter")
	searchCmd.Flags().StringVar(&searchPosition, "position", "", "Target position")
	searchCmd.Flags().StringVar(&searchSeniority, "seniority", "", "Seniority band (intern|junior|mid|senior)")
	searchCmd.Flags().StringVar(&searchSortBy, "sort", "relevance", "Sort order")
	searchCmd.Flags().IntVar(&searchMinScore, "min-score", 0, "Minimum relevance score")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Page size")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number")
	searchCmd.Flags().BoolVar(&searchEvidence, "evidence", false, "Print match evidence per hit")
	_ = searchCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	snapshot, err := store.LoadFile(searchData)
	if err != nil {
		return err
	}

	engine, err := search.New(snapshot, search.Config{}, zap.NewNop())
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	raw := &types.RawSearchQuery{
		Skills:    searchSkills,
		Keywords:  searchKeywords,
		City:      searchCity,
		Position:  searchPosition,
		Seniority: searchSeniority,
		SortBy:    searchSortBy,
		MinScore:  json.Number(fmt.Sprintf("%d", searchMinScore)),
		Limit:     json.Number(fmt.Sprintf("%d", searchLimit)),
		Page:      json.Number(fmt.Sprintf("%d", searchPage)),
	}

	result, err := engine.Search(cmd.Context(), raw)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSearchResult(result)
	if searchEvidence {
		fmt.Println()
		for i := range result.Talents {
			printer.PrintMatchEvidence(&result.Talents[i])
		}
	}
	return nil
}
