package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/core/domain"
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Manage saved insights, arguments and todos",
	Long: `Saved insights and arguments are included in every answer for the case.
Todos are tracked here but never consulted when answering.`,
}

var insightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runInsightList,
}

var insightAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Save a new entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsightAdd,
}

var insightDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a todo as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsightDone,
}

var insightRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsightRemove,
}

var (
	insightCase  string
	listCategory string
	addCategory  string
	insightTags  []string
	insightUndo  bool
)

func init() {
	insightListCmd.Flags().StringVarP(&insightCase, "case", "c", "", "case ID (default: newest case)")
	insightListCmd.Flags().StringVar(&listCategory, "category", "", "insight, argument or todo (default: all)")

	insightAddCmd.Flags().StringVarP(&insightCase, "case", "c", "", "case ID (default: newest case)")
	insightAddCmd.Flags().StringVar(&addCategory, "category", string(domain.CategoryInsight), "insight, argument or todo")
	insightAddCmd.Flags().StringSliceVarP(&insightTags, "tag", "t", nil, "tags (repeatable)")

	insightDoneCmd.Flags().BoolVar(&insightUndo, "undo", false, "mark as not completed")

	insightCmd.AddCommand(insightListCmd)
	insightCmd.AddCommand(insightAddCmd)
	insightCmd.AddCommand(insightDoneCmd)
	insightCmd.AddCommand(insightRemoveCmd)
	rootCmd.AddCommand(insightCmd)
}

func allCategories() []domain.Category {
	return []domain.Category{domain.CategoryInsight, domain.CategoryArgument, domain.CategoryTodo}
}

func runInsightList(cmd *cobra.Command, _ []string) error {
	if insightService == nil {
		return errors.New("insight service not configured")
	}

	categories := allCategories()
	if listCategory != "" {
		c, err := domain.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		categories = []domain.Category{c}
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, insightCase)
	if err != nil {
		return err
	}

	total := 0
	for _, category := range categories {
		items, err := insightService.List(ctx, caseID, category)
		if err != nil {
			return fmt.Errorf("failed to list %s entries: %w", category, err)
		}
		if len(items) == 0 {
			continue
		}

		cmd.Printf("[%s]\n", category)
		for i := range items {
			mark := ""
			if category == domain.CategoryTodo {
				mark = "[ ] "
				if items[i].Completed {
					mark = "[x] "
				}
			}
			cmd.Printf("  %s%s\n", mark, items[i].Content)
			cmd.Printf("    ID: %s\n", items[i].ID)
			if len(items[i].Tags) > 0 {
				cmd.Printf("    Tags: %v\n", items[i].Tags)
			}
		}
		cmd.Println()
		total += len(items)
	}

	if total == 0 {
		cmd.Println("No saved entries.")
	}
	return nil
}

func runInsightAdd(cmd *cobra.Command, args []string) error {
	if insightService == nil {
		return errors.New("insight service not configured")
	}

	category, err := domain.ParseCategory(addCategory)
	if err != nil {
		return err
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, insightCase)
	if err != nil {
		return err
	}

	saved, err := insightService.Create(ctx, caseID, args[0], category, insightTags)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", category, err)
	}

	cmd.Printf("Saved %s %s\n", saved.Category, saved.ID)
	return nil
}

func runInsightDone(cmd *cobra.Command, args []string) error {
	if insightService == nil {
		return errors.New("insight service not configured")
	}

	if err := insightService.SetCompleted(context.Background(), args[0], !insightUndo); err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	if insightUndo {
		cmd.Printf("Reopened %s\n", args[0])
	} else {
		cmd.Printf("Completed %s\n", args[0])
	}
	return nil
}

func runInsightRemove(cmd *cobra.Command, args []string) error {
	if insightService == nil {
		return errors.New("insight service not configured")
	}

	if err := insightService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	cmd.Printf("Removed %s\n", args[0])
	return nil
}
