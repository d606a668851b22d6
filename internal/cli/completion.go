package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/render/board/styles"
)

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: fmt.Sprintf(`Generate a shell completion script for %[1]s on stdout.

  bash:        source <(%[1]s completion bash)
  zsh:         %[1]s completion zsh > "${fpath[1]}/_%[1]s"
  fish:        %[1]s completion fish > ~/.config/fish/completions/%[1]s.fish
  powershell:  %[1]s completion powershell | Out-String | Invoke-Expression`, appName),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.Out, true)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
		},
	}
}

// registerValueCompletions offers the fixed values of --format, --style and
// --engine wherever a command defines them.
func registerValueCompletions(cmd *cobra.Command) {
	fixed := map[string][]string{
		"format": {pipeline.FormatSVG, pipeline.FormatHTML, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatDOT},
		"style":  styles.Names(),
		"engine": {pipeline.EngineNative, pipeline.EngineGraphviz},
	}
	for name, values := range fixed {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
	}
}
