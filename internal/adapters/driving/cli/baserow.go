package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legalmind/internal/adapters/driven/baserow"
)

var baserowCmd = &cobra.Command{
	Use:   "baserow",
	Short: "Baserow integration commands",
}

var baserowTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Check a Baserow URL and API token",
	Long: `Lists the applications visible to the token to confirm that the Baserow
instance is reachable and the token is accepted.`,
	Args: cobra.NoArgs,
	RunE: runBaserowTest,
}

var (
	baserowURL   string
	baserowToken string

	// baserowClient is replaceable in tests.
	baserowClient = baserow.NewClient(baserow.DefaultTimeout)
)

func init() {
	baserowTestCmd.Flags().StringVar(&baserowURL, "url", "", "Baserow base URL")
	baserowTestCmd.Flags().StringVar(&baserowToken, "token", "", "Baserow API token")

	baserowCmd.AddCommand(baserowTestCmd)
	rootCmd.AddCommand(baserowCmd)
}

func runBaserowTest(cmd *cobra.Command, _ []string) error {
	if baserowURL == "" || baserowToken == "" {
		return errors.New("both --url and --token are required")
	}

	apps, err := baserowClient.Test(context.Background(), baserowURL, baserowToken)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	cmd.Printf("Connected to %s\n", baserowURL)
	cmd.Printf("Applications: %d\n", len(apps))
	for _, app := range apps {
		cmd.Printf("  - %s (%s)\n", app.Name, app.Type)
	}
	return nil
}
