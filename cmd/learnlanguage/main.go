package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stvsever/LearnLanguage/internal/cli"
	"github.com/stvsever/LearnLanguage/internal/models"
	"github.com/stvsever/LearnLanguage/internal/processor"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), args, flags)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, args []string, flags *cli.Flags) error {
	log, err := zap.NewProduction()
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx)
	}

	proc := processor.NewProcessor(flags, log)

	// Batch file, single concept, or GUI when nothing is given
	if flags.BatchFile != "" {
		return proc.ProcessBatch(ctx)
	}
	if len(args) > 0 {
		return proc.ProcessConcept(ctx, args[0], 0)
	}
	return proc.RunGUIMode(ctx)
}
