package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/pecheck/internal/files/filesystem"
	"github.com/vvka-141/pecheck/internal/logging"
	"github.com/vvka-141/pecheck/internal/scanner"
)

type scanOptions struct {
	configPath  string
	contextMode string
}

func addScanFlags(cmd *cobra.Command, opts *scanOptions) {
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to pecheck.yaml (default: ./pecheck.yaml if present)")
	cmd.Flags().StringVar(&opts.contextMode, "context-mode", "", "Context window lower bound handling: wrap or clamp (default wrap)")
	_ = cmd.RegisterFlagCompletionFunc("context-mode", completeContextModes)
}

func runScan(cmd *cobra.Command, opts *scanOptions, args []string) error {
	cfg, err := loadEffectiveConfig(opts.configPath)
	if err != nil {
		return err
	}

	mode, err := resolveContextMode(cmd, cfg, opts.contextMode)
	if err != nil {
		return err
	}

	verbose := getVerboseFlag(cmd) || cfg.Verbose
	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Context mode: %s", mode)

	s := scanner.New(filesystem.NewOSFileSystem(),
		scanner.WithLogger(logger),
		scanner.WithContextMode(mode),
	)
	return s.Run(args[0], cmd.OutOrStdout())
}
