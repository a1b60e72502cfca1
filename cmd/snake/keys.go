package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	bindings := tui.DefaultKeyMap().ShortHelp()

	// Calculate column widths
	maxKeyLen := 4 // "Keys" header
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, len(keyList(b)))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "Keys", "Action")
	fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, "----", "------")

	for _, b := range bindings {
		fmt.Fprintf(out, "  %-*s  %s\n", maxKeyLen, keyList(b), b.Help().Desc)
	}
}

// keyList joins the keys of a binding, spelling out the space bar.
func keyList(b key.Binding) string {
	names := make([]string, 0, len(b.Keys()))
	for _, k := range b.Keys() {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, ", ")
}
