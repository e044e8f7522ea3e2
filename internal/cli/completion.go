package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for cogmap and write it to stdout.

Load it for the current session:

  bash        source <(cogmap completion bash)
  zsh         source <(cogmap completion zsh)
  fish        cogmap completion fish | source
  powershell  cogmap completion powershell | Out-String | Invoke-Expression

To install permanently, redirect the output to your shell's completion
directory, for example:

  cogmap completion bash > /etc/bash_completion.d/cogmap
  cogmap completion zsh > "${fpath[1]}/_cogmap"
  cogmap completion fish > ~/.config/fish/completions/cogmap.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return root.GenBashCompletionV2(out, true)
			}
		},
	}
}
