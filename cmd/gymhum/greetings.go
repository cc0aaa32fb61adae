package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/gymhum/pkg/domain"
)

var signOffs = [...]string{
	"Rest is part of the program. See you next session.",
	"Hydrate. Stretch. Come back stronger.",
	"Progress, not perfection.",
	"The hardest rep is showing up. You did that.",
	"Sore today, strong tomorrow.",
	"Your future self just said thanks.",
	"Small steps still move you forward.",
	"Consistency beats intensity. See you tomorrow.",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c")).
			Bold(true)
	quoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
	cmdStyle  = lipgloss.NewStyle().Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printHelp(w io.Writer) {
	commands := []struct{ cmd, desc string }{
		{"gymhum", "Open the app (interactive TUI)"},
		{"gymhum cart", "Print the saved cart"},
		{"gymhum reset", "Delete the saved cart and profile"},
		{"gymhum version", "Show version"},
		{"gymhum help", "You are here"},
	}
	env := []struct{ name, desc string }{
		{"GYMHUM_API_URL", "Catalog API base URL"},
		{"GYMHUM_DATA_DIR", "Where cart and profile are stored (default ~/.gymhum)"},
		{"GYMHUM_LOG_LEVEL", "debug, info, warn or error"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n  Commands:\n", titleStyle.Render("G Y M H U M"), quoteStyle.Render(`"Train, eat well, share the journey."`))
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Fprintf(w, "\n  Environment:\n")
	for _, e := range env {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Fprintln(w)
}

func printSignOff(w io.Writer) {
	msg := signOffs[rand.IntN(len(signOffs))]
	fmt.Fprintf(w, "\n%s\n\n%s\n\n", titleStyle.Render("GYMHUM"), quoteStyle.Render(msg))
}

func printResetDone(w io.Writer, dir string) {
	fmt.Fprintf(w, "\n  %s  %s\n\n", titleStyle.Render("GYMHUM"), descStyle.Render("cart and profile cleared in "+dir))
}

// printCart lists cart lines and a total of the parseable prices.
func printCart(w io.Writer, items []domain.CartItem) {
	if len(items) == 0 {
		fmt.Fprintf(w, "\n  %s\n\n", descStyle.Render("Your cart is empty."))
		return
	}
	fmt.Fprintf(w, "\n  %s\n\n", titleStyle.Render(fmt.Sprintf("Cart (%d)", len(items))))
	var total float64
	for _, it := range items {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-28s", it.Name)), descStyle.Render(it.Price))
		if v, err := strconv.ParseFloat(strings.TrimPrefix(it.Price, "$"), 64); err == nil {
			total += v
		}
	}
	fmt.Fprintf(w, "\n    %s  %s\n\n", cmdStyle.Render(fmt.Sprintf("%-28s", "Total")), descStyle.Render(fmt.Sprintf("$%.2f", total)))
}
