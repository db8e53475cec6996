package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	h := help.New()
	h.ShowAll = true
	fmt.Fprintln(cmd.OutOrStdout(), h.View(tui.DefaultKeyMap()))
}
