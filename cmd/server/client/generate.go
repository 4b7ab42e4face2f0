package client

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/card-forge/internal/handlers/cardforge/v1alpha1"
)

var outputFormat string

var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate a card set on the server",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFormat, "output", "o", FormatJSON, "Output format: json or yaml")
}

func runGenerate(_ *cobra.Command, args []string) error {
	if err := ValidateFormat(outputFormat); err != nil {
		return err
	}

	cardSetClient, cleanup, err := createCardSetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	description := strings.Join(args, " ")
	slog.Info("Requesting card set", "server", serverAddr, "description", description)

	doc, err := cardSetClient.GenerateCardSet(ctx, v1alpha1.NewGenerateCardSetRequest(description))
	if err != nil {
		return fmt.Errorf("failed to generate card set: %w", err)
	}

	resp, err := v1alpha1.DecodeGenerateCardSetResponse(doc)
	if err != nil {
		return err
	}
	return WriteResponse(os.Stdout, resp, outputFormat)
}
