package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Garik-/gpscore/pkg/importer"
)

var (
	settingsFlag string
	debugFlag    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gpdump <file>",
		Short:         "Import a Guitar Pro 7 file and print a yaml summary of the score",
		Args:          cobra.ExactArgs(1),
		RunE:          dumpCmd,
		SilenceUsage:  true,
	}
	cmd.Flags().StringVar(&settingsFlag, "settings", "", "yaml file with import settings")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "log decoding details to stderr")
	return cmd
}

func dumpCmd(cmd *cobra.Command, args []string) error {
	if debugFlag || os.Getenv("GPSCORE_DEBUG") != "" {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync() //nolint:errcheck
		enableDebugLogging(l)
	}

	settings, err := loadSettings(settingsFlag)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	score, err := importer.Import(data, importer.FormatUnknown, settings,
		importer.WithLogger(importLog.With(zap.String("file", args[0]))))
	if err != nil {
		return err
	}

	return writeSummary(cmd.OutOrStdout(), score)
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
