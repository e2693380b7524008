package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for your shell.

Besides subcommands, the scripts complete the --engine values of the
monitor and the comma-separated --kinds values of show.

Try it in the current shell:
  bash:        source <(trainwatch completion bash)
  zsh:         source <(trainwatch completion zsh)
  fish:        trainwatch completion fish | source
  powershell:  trainwatch completion powershell | Out-String | Invoke-Expression

To keep it, write the script wherever your shell loads completions from,
for example:
  trainwatch completion bash > ~/.local/share/bash-completion/completions/trainwatch
  trainwatch completion zsh > "${fpath[1]}/_trainwatch"
  trainwatch completion fish > ~/.config/fish/completions/trainwatch.fish`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Usage()
		}

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

func init() {
	rootCmd.AddCommand(completionCmd)
}

// listInput splits a partially typed comma-separated value into the part
// that is already complete (with its trailing comma) and the word being
// typed, lowercased.
func listInput(toComplete string) (done []string, prefix, word string) {
	i := strings.LastIndexByte(toComplete, ',')
	if i >= 0 {
		prefix = toComplete[:i+1]
		done = strings.Split(toComplete[:i], ",")
	}
	return done, prefix, strings.ToLower(strings.TrimSpace(toComplete[i+1:]))
}

// completeKinds completes a comma-separated kind flag. Kinds already typed
// or already given to the flag are not offered again. Candidates carry the
// typed prefix so every shell replaces the whole word.
func completeKinds(flagName string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		done, prefix, word := listInput(toComplete)
		if prev, err := cmd.Flags().GetStringSlice(flagName); err == nil {
			done = append(done, prev...)
		}
		for i, v := range done {
			done[i] = strings.ToLower(strings.TrimSpace(v))
		}

		var candidates []string
		for _, k := range ValidKindNames() {
			if strings.HasPrefix(k, word) && !slices.Contains(done, k) {
				candidates = append(candidates, prefix+k)
			}
		}
		return candidates, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

func registerKindCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeKinds(flagName))
}

// completeEngines completes the single-valued --engine flag.
func completeEngines(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	word := strings.ToLower(strings.TrimSpace(toComplete))
	var candidates []string
	for _, e := range trainwatch.EngineNames() {
		if strings.HasPrefix(e, word) {
			candidates = append(candidates, e)
		}
	}
	return candidates, cobra.ShellCompDirectiveNoFileComp
}

func registerEngineCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, completeEngines)
}
