package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

var (
	searchCase  string
	searchRole  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search case evidence",
	Long: `Ranks a case's evidence against a query, per role.
Uses keyword overlap by default, or embedding similarity when
retrieval.scorer is set to "embedding".`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCase, "case", "c", "", "case ID (default: newest case)")
	searchCmd.Flags().StringVarP(&searchRole, "role", "r", "", "plaintiff or opposition (default: both)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultTopN, "maximum results per role")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchHit is one ranked document with its role.
type searchHit struct {
	Role       domain.Role `json:"role"`
	DocumentID string      `json:"document_id"`
	Filename   string      `json:"filename,omitempty"`
	Score      float64     `json:"score"`
	Distance   float64     `json:"distance"`
	Content    string      `json:"content"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	roles, err := parseRoles(searchRole)
	if err != nil {
		return err
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, searchCase)
	if err != nil {
		return err
	}

	var hits []searchHit
	for _, role := range roles {
		ranked, err := retrievalService.Rank(ctx, domain.CollectionKey(role, caseID), query, searchLimit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		for _, r := range ranked {
			filename, _ := r.Document.Metadata[domain.MetaFilename].(string)
			hits = append(hits, searchHit{
				Role:       role,
				DocumentID: r.Document.ID,
				Filename:   filename,
				Score:      r.Score,
				Distance:   r.Distance,
				Content:    r.Document.Content,
			})
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, hits)
	}

	return outputSearchTable(cmd, hits)
}

func outputSearchJSON(cmd *cobra.Command, hits []searchHit) error {
	if hits == nil {
		hits = []searchHit{}
	}
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, hits []searchHit) error {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range hits {
		title := hits[i].Filename
		if title == "" {
			title = hits[i].DocumentID
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, hits[i].Score)
		cmd.Printf("      %s\n", hits[i].Role.Label())
		cmd.Printf("      %s\n", preview(hits[i].Content, 160))
		cmd.Println()
	}

	return nil
}
