package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// contextModes contains valid context modes for shell completion.
var contextModes = []string{string(pecheck.ContextWrap), string(pecheck.ContextClamp)}

// completeContextModes provides shell completion for the --context-mode flag.
func completeContextModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range contextModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
