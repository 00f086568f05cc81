package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Manage legal cases",
	Long:  `Create, list and inspect cases. Each case owns its evidence, dialogue and insights.`,
}

var caseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases, newest first",
	Args:  cobra.NoArgs,
	RunE:  runCaseList,
}

var caseCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new case",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaseCreate,
}

var caseShowCmd = &cobra.Command{
	Use:   "show [case-id]",
	Short: "Show case details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCaseShow,
}

var caseDescription string

func init() {
	caseCreateCmd.Flags().StringVarP(&caseDescription, "description", "d", "", "case description")

	caseCmd.AddCommand(caseListCmd)
	caseCmd.AddCommand(caseCreateCmd)
	caseCmd.AddCommand(caseShowCmd)
	rootCmd.AddCommand(caseCmd)
}

func runCaseList(cmd *cobra.Command, _ []string) error {
	if caseService == nil {
		return errors.New("case service not configured")
	}

	ctx := context.Background()
	if _, err := caseService.EnsureDefault(ctx); err != nil {
		return fmt.Errorf("failed to seed default case: %w", err)
	}

	cases, err := caseService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cases: %w", err)
	}

	cmd.Println("Cases:")
	cmd.Println()
	for i := range cases {
		cmd.Printf("  %s\n", cases[i].ID)
		cmd.Printf("    Title:   %s\n", cases[i].Title)
		if cases[i].Description != "" {
			cmd.Printf("    About:   %s\n", cases[i].Description)
		}
		cmd.Printf("    Created: %s\n", cases[i].CreatedAt.Format("2006-01-02 15:04"))
		cmd.Println()
	}

	cmd.Printf("Total: %d cases\n", len(cases))
	return nil
}

func runCaseCreate(cmd *cobra.Command, args []string) error {
	if caseService == nil {
		return errors.New("case service not configured")
	}

	c, err := caseService.Create(context.Background(), args[0], caseDescription)
	if err != nil {
		return fmt.Errorf("failed to create case: %w", err)
	}

	cmd.Printf("Created case %s (%s)\n", c.Title, c.ID)
	return nil
}

func runCaseShow(cmd *cobra.Command, args []string) error {
	if caseService == nil {
		return errors.New("case service not configured")
	}

	ctx := context.Background()
	c, err := caseService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get case: %w", err)
	}

	cmd.Printf("Case: %s\n\n", c.ID)
	cmd.Printf("  Title:       %s\n", c.Title)
	cmd.Printf("  Description: %s\n", c.Description)
	cmd.Printf("  Created:     %s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))

	if ingestService != nil {
		evidence, err := ingestService.List(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("failed to list evidence: %w", err)
		}
		cmd.Printf("  Evidence:    %d files\n", len(evidence))
	}

	return nil
}
