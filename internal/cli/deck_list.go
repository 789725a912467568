package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hnakamura/decksched/internal/scheduler"
)

// RenderDeckTree writes the due tree as an indented list with per-deck
// new/learn/review counts, the way the deck browser shows them.
func RenderDeckTree(w io.Writer, tree *scheduler.DueTree) error {
	bold := color.New(color.Bold)
	newColor := color.New(color.FgBlue)
	learnColor := color.New(color.FgRed)
	revColor := color.New(color.FgGreen)

	if _, err := bold.Fprintf(w, "%-40s %6s %6s %6s\n", "Deck", "New", "Learn", "Due"); err != nil {
		return fmt.Errorf("write header > %w", err)
	}
	for _, r := range tree.Roots() {
		if err := renderNode(w, tree, r, newColor, learnColor, revColor); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w io.Writer, tree *scheduler.DueTree, i int, newColor, learnColor, revColor *color.Color) error {
	n := tree.Nodes[i]
	name := strings.Repeat("  ", n.Depth) + n.Deck.BaseName()
	if _, err := fmt.Fprintf(w, "%-40s %s %s %s\n",
		name,
		newColor.Sprintf("%6d", n.New),
		learnColor.Sprintf("%6d", n.Learn),
		revColor.Sprintf("%6d", n.Rev),
	); err != nil {
		return fmt.Errorf("write deck row > %w", err)
	}
	for _, c := range n.Children {
		if err := renderNode(w, tree, c, newColor, learnColor, revColor); err != nil {
			return err
		}
	}
	return nil
}
