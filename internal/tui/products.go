package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/domain"
)

type productsModel struct {
	state    *state.State
	products []domain.Product
	cursor   int
	loading  bool
	err      error

	added   transient // "Added!" on the card at addedAt
	addedAt int
	cleared transient // "Cart Cleared!" on the clear-cart action
	status  transient
	width   int
	height  int
}

func newProductsModel(st *state.State) productsModel {
	return productsModel{state: st, addedAt: -1}
}

func (m productsModel) startLoading() productsModel {
	m.loading = true
	m.err = nil
	return m
}

func (m productsModel) loaded(products []domain.Product, err error) productsModel {
	m.loading = false
	m.err = err
	if err == nil {
		m.products = products
	}
	m.cursor = clampCursor(m.cursor, len(m.products))
	return m
}

func (m productsModel) Update(msg tea.Msg) (productsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case expireMsg:
		switch msg.target {
		case targetAdded:
			m.added.expire(msg.seq)
		case targetCleared:
			m.cleared.expire(msg.seq)
		case targetProductStatus:
			m.status.expire(msg.seq)
		}

	case openResultMsg:
		if msg.err != nil {
			cmd := m.status.set(fmt.Sprintf("open failed: %v", msg.err), targetProductStatus, noticeDuration)
			return m, cmd
		}
		cmd := m.status.set("Opened in browser", targetProductStatus, labelDuration)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m productsModel) handleKey(msg tea.KeyMsg) (productsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "a":
		if m.loading || len(m.products) == 0 {
			return m, nil
		}
		i := clampCursor(m.cursor, len(m.products))
		if err := m.state.AddToCart(m.products[i]); err != nil {
			cmd := m.status.saveFailed(err, targetProductStatus)
			return m, cmd
		}
		m.addedAt = i
		cmd := m.added.set("Added!", targetAdded, labelDuration)
		return m, cmd
	case "x":
		if m.state.CartLen() == 0 {
			return m, nil
		}
		if err := m.state.ClearCart(); err != nil {
			cmd := m.status.saveFailed(err, targetProductStatus)
			return m, cmd
		}
		cmd := m.cleared.set("Cart Cleared!", targetCleared, labelDuration)
		return m, cmd
	case "o":
		if len(m.products) == 0 {
			return m, nil
		}
		p := m.products[clampCursor(m.cursor, len(m.products))]
		if p.Image == "" {
			cmd := m.status.set("no image for "+p.Name, targetProductStatus, labelDuration)
			return m, cmd
		}
		return m, openCmd(p.Image)
	}
	return m, nil
}

// showClearCart reports whether the clear-cart action is rendered: only while
// the cart has items, or while its confirmation label is still showing.
func (m productsModel) showClearCart() bool {
	return m.state.CartLen() > 0 || m.cleared.text != ""
}

func (m productsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("PRODUCTS") + "  " + taglineStyle.Render("Gear up."))
	if m.showClearCart() {
		label := "[Clear Cart]"
		if m.cleared.text != "" {
			label = m.cleared.text
		}
		b.WriteString("   " + buttonStyle.Render(label) + " " + helpKeyStyle.Render("x"))
	}
	if m.status.text != "" {
		b.WriteString("   " + noticeStyle.Render(m.status.text))
	}
	b.WriteString("\n")
	b.WriteString(separator(m.width) + "\n")

	if body, ok := placeholder(domain.SectionProducts, m.loading, m.err, len(m.products)); ok {
		b.WriteString(body)
		return b.String()
	}

	cursor := clampCursor(m.cursor, len(m.products))
	for i, p := range m.products {
		marker := " "
		name := normalStyle.Render(p.Name)
		if i == cursor {
			marker = accentStyle.Render("▸")
			name = selectedStyle.Render(p.Name)
		}
		action := buttonStyle.Render("[Add to Cart]")
		if i == m.addedAt && m.added.text != "" {
			action = doneStyle.Render(m.added.text)
		}
		fmt.Fprintf(&b, " %s %s  %s  %s\n", marker, name, priceStyle.Render(p.DisplayPrice()), action)

		if p.Category != "" {
			b.WriteString("   " + CategoryStyle(p.Category).Render(p.Category) + "\n")
		}
		if len(p.Features) > 0 {
			b.WriteString("   " + dimStyle.Render(strings.Join(p.Features, " · ")) + "\n")
		}
		if len(p.Colors) > 0 {
			b.WriteString("   " + metaStyle.Render("Colors: "+strings.Join(p.Colors, ", ")) + "\n")
		}
	}
	return b.String()
}

func (m productsModel) helpKeys() string {
	entries := []string{helpEntry("1-5", "tabs"), helpEntry("j/k", "nav"), helpEntry("enter", "add"), helpEntry("o", "image")}
	if m.showClearCart() {
		entries = append(entries, helpEntry("x", "clear cart"))
	}
	entries = append(entries, helpEntry("h", "help"), helpEntry("q", "quit"))
	return helpBar(entries...)
}
