package main

import (
	"github.com/philipparndt/bodysize/pkg/scene"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for bodysize.

Bash:

  $ source <(bodysize completion bash)

Zsh:

  $ bodysize completion zsh > "${fpath[1]}/_bodysize"

Fish:

  $ bodysize completion fish | source

Body names after --body are completed from the scene file given on the
command line.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	// Completion output must not be mixed with config or log setup
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)

	for _, cmd := range []*cobra.Command{sizeCmd, fixturesCmd} {
		cmd.ValidArgsFunction = completeSceneFile
		_ = cmd.RegisterFlagCompletionFunc("body", completeBodyNames)
	}
	largestCmd.ValidArgsFunction = completeSceneFile
	renderCmd.ValidArgsFunction = completeSceneFile
}

func completeSceneFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeBodyNames offers the body names of the scene file argument
func completeBodyNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := scene.Parse(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(s.Bodies))
	for _, body := range s.Bodies {
		names = append(names, body.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
