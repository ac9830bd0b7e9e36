package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/code-critic/internal/core"
	"github.com/sevigo/code-critic/internal/syntax"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages available for review",
	Run: func(_ *cobra.Command, _ []string) {
		checkers := syntax.NewRegistry()

		titleColor.Println("Supported languages:")
		for _, lang := range core.Languages() {
			note := ""
			if checkers.Supports(lang) {
				note = color.GreenString(" (with syntax check on generated code)")
			}
			color.White("  - %s%s", lang, note)
		}
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(languagesCmd)
}
