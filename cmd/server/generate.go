package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/card-forge/cmd/server/client"
	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/handlers/cardforge/v1alpha1"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/cardset"
)

var (
	generateOutput  string
	generateOffline bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate a card set without a server",
	Long: `Generate a creature and four item cards in-process and print them.
With --offline every card is synthesized locally and no external service is called.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", client.FormatJSON, "Output format: json or yaml")
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "Skip remote generators and synthesize every card")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := client.ValidateFormat(generateOutput); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := buildPipeline(ctx, cfg, generateOffline)
	if err != nil {
		return err
	}
	defer p.Close()

	resp, err := generate(ctx, p.orchestrator, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return client.WriteResponse(os.Stdout, resp, generateOutput)
}

func generate(ctx context.Context, svc cardset.Service, description string) (*v1alpha1.GenerateCardSetResponse, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.InvalidArgument("description is required")
	}

	out, err := svc.GenerateCardSet(ctx, &cardset.GenerateCardSetInput{Description: description})
	if err != nil {
		return nil, err
	}

	return &v1alpha1.GenerateCardSetResponse{
		GenerationID:   out.GenerationID,
		CardSet:        out.CardSet,
		EffectiveStats: out.EffectiveStats,
		Compatibility:  out.Compatibility,
	}, nil
}
