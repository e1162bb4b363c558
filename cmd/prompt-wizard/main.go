// prompt-wizard is a scaffolding wizard built on a dynamic prompt flow: the
// Confirm step decides whether a follow-up batch of prompts runs at all.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	prompter "github.com/kungfusheep/prompter"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prompt-wizard",
	Short: "Interactive project scaffolding wizard",
	Long: `prompt-wizard walks through a small dynamic prompt flow: a project
name, a module kind, and then a follow-up batch of extra options only if
the user confirms they want one.`,
	RunE: runWizard,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runWizard(cmd *cobra.Command, args []string) error {
	flow := prompter.NewFlow()

	results, err := flow.RunDynamic(nil, wizardStep)
	if err != nil {
		if _, ok := err.(*prompter.UserCancelled); ok {
			fmt.Println("cancelled")
			return nil
		}
		return err
	}

	name := results["name"].AsString()
	kind := results["kind"].AsString()
	fmt.Printf("scaffolding %q as a %s project\n", name, kind)

	if opts, ok := results["options"]; ok {
		for opt := range opts.AsSet() {
			fmt.Println("  +", opt)
		}
	}
	return nil
}

// wizardStep is the PromptProvider driving the dynamic flow: the first
// batch asks for name and kind; a second batch of extra options (the same
// for every kind) runs only if the user confirms one is wanted.
func wizardStep(results prompter.ResultMap) []*prompter.Prompt {
	if _, done := results["name"]; !done {
		return []*prompter.Prompt{
			prompter.NewInputPrompt("name", prompter.Plain("Project name?")).
				WithValidator(prompter.VRequired),
			prompter.NewListPrompt("kind", prompter.Plain("Project kind:"),
				prompter.NewPromptItem("service", prompter.Plain("service")),
				prompter.NewPromptItem("library", prompter.Plain("library")),
				prompter.NewPromptItem("cli", prompter.Plain("cli")),
			),
			prompter.NewConfirmPrompt("wantOptions", prompter.Plain("Configure extra options?"), false),
		}
	}

	if _, done := results["options"]; !done && results["wantOptions"].AsBool() {
		return []*prompter.Prompt{
			prompter.NewCheckboxPrompt("options", prompter.Plain("Extra options:"),
				prompter.NewPromptItem("docker", prompter.Plain("Dockerfile")),
				prompter.NewPromptItem("ci", prompter.Plain("CI workflow")),
				prompter.NewPromptItem("lint", prompter.Plain("lint config")),
			),
		}
	}

	return nil
}
