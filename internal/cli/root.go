package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const rootLong = `pecheck loads a PE binary into memory and reports where the resource
section name ".rsrc" and the FX_ASI_BUILD resource type name occur, in both
ASCII and UTF-16LE form. Nothing is decoded; every check is a plain byte search.

Output (stdout):
  Found .rsrc at offset N | No .rsrc section found
  Found FX_ASI_BUILD at offset N
  Context: b'...'         (bytes [N-20, N+50))
  FX_ASI_BUILD not found in file
  Found FX_ASI_BUILD (Unicode) at offset N   (only when present)

Configuration (highest precedence first):
  flags, PECHECK_* environment variables (.env is loaded), pecheck.yaml

Exit Codes:
  0  - Scan completed (markers found or not)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Input file missing or unreadable
  11 - Invalid configuration`

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "pecheck <filepath>",
		Short: "Locate resource markers in a PE binary",
		Long:  rootLong,
		Example: `  pecheck ./plugin.asi
  pecheck ./plugin.asi -v --context-mode=clamp`,
		Args: RequireFilePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
	addScanFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return NewRootCmd().Execute()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
