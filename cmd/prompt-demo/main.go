// prompt-demo runs one of every prompt kind back to back, printing the
// committed result map on exit.
package main

import (
	"fmt"
	"os"

	prompter "github.com/kungfusheep/prompter"
)

func main() {
	flow := prompter.NewFlow()

	prompts := []*prompter.Prompt{
		prompter.NewInputPrompt("name", prompter.Plain("What's your name?")).
			WithDefault("Ann").
			WithValidator(prompter.VRequired),

		prompter.NewListPrompt("env", prompter.Plain("Deploy target:"),
			prompter.NewPromptItem("production", prompter.Plain("production")),
			prompter.NewPromptItem("staging", prompter.Plain("staging")),
			prompter.NewPromptItem("development", prompter.Plain("development")),
			prompter.NewPromptItem("local", prompter.Plain("local")),
		),

		prompter.NewCheckboxPrompt("features", prompter.Plain("Enable features:"),
			prompter.NewPromptItem("metrics", prompter.Plain("metrics")).AsChecked(),
			prompter.NewPromptItem("tracing", prompter.Plain("tracing")),
			prompter.NewPromptItem("debug", prompter.Plain("debug logging")),
		),

		prompter.NewChoicePrompt("severity", prompter.Plain("Severity:"),
			prompter.NewPromptItem("low", prompter.Plain("low")).WithShortcut('l'),
			prompter.NewPromptItem("high", prompter.Plain("high")).WithShortcut('h').AsDefault(),
		),

		prompter.NewConfirmPrompt("proceed", prompter.Plain("Proceed?"), true),

		prompter.NewTextPrompt("done", prompter.Plain(""), prompter.Plain("All set.")),
	}

	results, err := flow.Run(nil, prompts)
	if err != nil {
		if _, ok := err.(*prompter.UserCancelled); ok {
			fmt.Println("cancelled")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for name, res := range results {
		fmt.Printf("%s = %+v\n", name, res)
	}
}
