package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/connectors/filesystem"
	"github.com/custodia-labs/legalmind/internal/core/domain"
	"github.com/custodia-labs/legalmind/internal/core/ports/driving"
	"github.com/custodia-labs/legalmind/internal/logger"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Manage case evidence",
	Long: `Add, list, remove and watch for evidence files.

Evidence is filed as plaintiff (supporting your side) or opposition
material. Byte-identical uploads are recognised and stored only once.`,
}

var evidenceAddCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add an evidence file to a case",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvidenceAdd,
}

var evidenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a case's evidence, newest first",
	Args:  cobra.NoArgs,
	RunE:  runEvidenceList,
}

var evidenceRemoveCmd = &cobra.Command{
	Use:   "remove [evidence-id]",
	Short: "Remove an evidence file and its indexed content",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvidenceRemove,
}

var evidenceWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Ingest files dropped into a directory",
	Long: `Ingests every file already in the directory, then watches it and ingests
new or changed files once they stop being written. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvidenceWatch,
}

var (
	evidenceCase string
	evidenceRole string
)

func init() {
	for _, c := range []*cobra.Command{evidenceAddCmd, evidenceListCmd, evidenceWatchCmd} {
		c.Flags().StringVarP(&evidenceCase, "case", "c", "", "case ID (default: newest case)")
	}
	for _, c := range []*cobra.Command{evidenceAddCmd, evidenceWatchCmd} {
		c.Flags().StringVarP(&evidenceRole, "role", "r", string(domain.RolePlaintiff), "plaintiff or opposition")
	}

	evidenceCmd.AddCommand(evidenceAddCmd)
	evidenceCmd.AddCommand(evidenceListCmd)
	evidenceCmd.AddCommand(evidenceRemoveCmd)
	evidenceCmd.AddCommand(evidenceWatchCmd)
	rootCmd.AddCommand(evidenceCmd)
}

func runEvidenceAdd(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	role, err := domain.ParseRole(evidenceRole)
	if err != nil {
		return err
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, evidenceCase)
	if err != nil {
		return err
	}

	result, err := ingestFile(ctx, caseID, role, args[0])
	if err != nil {
		return err
	}

	if result.Duplicate {
		cmd.Printf("Already ingested: %s (evidence %s)\n", filepath.Base(args[0]), result.EvidenceID)
		return nil
	}
	cmd.Printf("Added %s as %s evidence (evidence %s)\n", result.Filename, role, result.EvidenceID)
	return nil
}

func runEvidenceList(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := context.Background()
	caseID, err := resolveCaseID(ctx, evidenceCase)
	if err != nil {
		return err
	}

	evidence, err := ingestService.List(ctx, caseID)
	if err != nil {
		return fmt.Errorf("failed to list evidence: %w", err)
	}

	if len(evidence) == 0 {
		cmd.Printf("No evidence for case: %s\n", caseID)
		return nil
	}

	cmd.Printf("Evidence for case %s:\n\n", caseID)
	for i := range evidence {
		cmd.Printf("  %s\n", evidence[i].ID)
		cmd.Printf("    File:     %s\n", evidence[i].Filename)
		cmd.Printf("    Role:     %s\n", evidence[i].Role)
		cmd.Printf("    Uploaded: %s\n", evidence[i].UploadedAt.Format("2006-01-02 15:04"))
		cmd.Println()
	}

	cmd.Printf("Total: %d files\n", len(evidence))
	return nil
}

func runEvidenceRemove(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	if err := ingestService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove evidence: %w", err)
	}

	cmd.Printf("Removed evidence %s\n", args[0])
	return nil
}

func runEvidenceWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	role, err := domain.ParseRole(evidenceRole)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	caseID, err := resolveCaseID(ctx, evidenceCase)
	if err != nil {
		return err
	}

	watcher := filesystem.NewWatcher(args[0], filesystem.DefaultSettle, func(ctx context.Context, path string) error {
		result, err := ingestFile(ctx, caseID, role, path)
		if err != nil {
			return err
		}
		if result.Duplicate {
			logger.Debug("skipped duplicate %s", path)
			return nil
		}
		cmd.Printf("Added %s as %s evidence\n", result.Filename, role)
		return nil
	})

	n, err := watcher.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", args[0], err)
	}
	cmd.Printf("Scanned %d existing files. Watching %s for %s evidence...\n", n, args[0], role)

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch stopped: %w", err)
	}
	return nil
}

func ingestFile(ctx context.Context, caseID string, role domain.Role, path string) (*driving.IngestResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := ingestService.Ingest(ctx, driving.IngestRequest{
		CaseID:   caseID,
		Role:     role,
		Filename: filepath.Base(path),
		Content:  content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ingest %s: %w", filepath.Base(path), err)
	}
	return result, nil
}
