package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/client"
	"github.com/naveenspark/gymhum/pkg/domain"
)

type view int

const (
	viewWorkouts view = iota
	viewNutrition
	viewProducts
	viewProfile
	viewCommunity
)

// Catalog fetches remote catalog sections. *client.Client satisfies it.
type Catalog interface {
	FetchSection(ctx context.Context, kind domain.SectionKind) (client.Section, error)
}

// navigateMsg activates a view as if its number key was pressed.
type navigateMsg struct {
	view view
}

// sectionLoadedMsg carries the result of FetchSection. gen identifies the
// fetch that produced it; only the latest fetch is applied.
type sectionLoadedMsg struct {
	gen     int
	kind    domain.SectionKind
	section client.Section
	err     error
}

// profileChangedMsg is emitted after a mutation of the profile record.
// challenge names the challenge the action counts toward; community is set
// when the action came from the community view itself.
type profileChangedMsg struct {
	challenge string
	community bool
}

func profileChanged(challenge string) tea.Cmd {
	return func() tea.Msg { return profileChangedMsg{challenge: challenge} }
}

// App is the root Bubbletea model.
type App struct {
	catalog   Catalog
	state     *state.State
	log       *zap.Logger
	view      view
	workouts  workoutsModel
	nutrition nutritionModel
	products  productsModel
	profile   profileModel
	community communityModel

	// communityDirty is set when the record changed in a way the community
	// view shows while it was not visible.
	communityDirty bool

	fetchGen    int
	cancelFetch context.CancelFunc

	helpOpen bool
	width    int
	height   int
	frame    int // logo shimmer animation frame
}

// NewApp creates the TUI application over a catalog and the shared state.
func NewApp(c Catalog, st *state.State, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}
	return App{
		catalog:   c,
		state:     st,
		log:       log,
		workouts:  newWorkoutsModel(st),
		nutrition: newNutritionModel(st),
		products:  newProductsModel(st),
		profile:   newProfileModel(st, log),
		community: newCommunityModel(st, log),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), func() tea.Msg { return navigateMsg{view: viewWorkouts} })
}

// navigate makes v the single visible view and refreshes its content:
// catalog views refetch, profile and community re-read the record.
func (a App) navigate(v view) (App, tea.Cmd) {
	a.view = v
	switch v {
	case viewWorkouts:
		return a.fetch(domain.SectionWorkouts)
	case viewNutrition:
		return a.fetch(domain.SectionNutrition)
	case viewProducts:
		return a.fetch(domain.SectionProducts)
	case viewProfile:
		a.profile = a.profile.refresh()
	case viewCommunity:
		a.community = a.community.refresh()
		a.communityDirty = false
	}
	return a, nil
}

// fetch cancels any in-flight fetch and starts a new one for kind.
func (a App) fetch(kind domain.SectionKind) (App, tea.Cmd) {
	if a.cancelFetch != nil {
		a.cancelFetch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelFetch = cancel
	a.fetchGen++
	gen := a.fetchGen

	switch kind {
	case domain.SectionWorkouts:
		a.workouts = a.workouts.startLoading()
	case domain.SectionNutrition:
		a.nutrition = a.nutrition.startLoading()
	case domain.SectionProducts:
		a.products = a.products.startLoading()
	}

	c := a.catalog
	a.log.Debug("fetch section", zap.Stringer("section", kind), zap.Int("gen", gen))
	return a, func() tea.Msg {
		sec, err := c.FetchSection(ctx, kind)
		return sectionLoadedMsg{gen: gen, kind: kind, section: sec, err: err}
	}
}

func (a App) applySection(msg sectionLoadedMsg) App {
	if msg.gen != a.fetchGen {
		a.log.Debug("drop stale section", zap.Stringer("section", msg.kind), zap.Int("gen", msg.gen), zap.Int("current", a.fetchGen))
		return a
	}
	if msg.err != nil {
		var netErr *client.NetworkError
		switch {
		case errors.As(msg.err, &netErr):
			a.log.Error("fetch section failed", zap.Stringer("section", msg.kind), zap.Int("status", netErr.StatusCode), zap.Error(msg.err))
		default:
			a.log.Error("fetch section failed", zap.Stringer("section", msg.kind), zap.Error(msg.err))
		}
	} else {
		a.log.Info("section loaded", zap.Stringer("section", msg.kind), zap.Int("items", msg.section.Len()))
	}

	switch msg.kind {
	case domain.SectionWorkouts:
		a.workouts = a.workouts.loaded(msg.section.Workouts, msg.err)
	case domain.SectionNutrition:
		a.nutrition = a.nutrition.loaded(msg.section.Recipes, msg.err)
	case domain.SectionProducts:
		a.products = a.products.loaded(msg.section.Products, msg.err)
	}
	return a
}

// applyProfileChange re-renders the profile snapshot, and the community
// snapshot only when community is the visible view.
func (a App) applyProfileChange(msg profileChangedMsg) App {
	a.profile = a.profile.refresh()

	touches := msg.community
	if msg.challenge != "" && a.state != nil && a.state.Profile().HasJoined(msg.challenge) {
		touches = true
	}
	if !touches {
		return a
	}
	if a.view == viewCommunity {
		a.community = a.community.refresh()
		a.communityDirty = false
	} else {
		a.communityDirty = true
	}
	return a
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.workouts, _ = a.workouts.Update(bodyMsg)
		a.nutrition, _ = a.nutrition.Update(bodyMsg)
		a.products, _ = a.products.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		a.community, _ = a.community.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case navigateMsg:
		return a.navigate(msg.view)

	case sectionLoadedMsg:
		return a.applySection(msg), nil

	case profileChangedMsg:
		return a.applyProfileChange(msg), nil

	case expireMsg:
		var cmd tea.Cmd
		switch msg.target {
		case targetWorkoutStatus:
			a.workouts, cmd = a.workouts.Update(msg)
		case targetRecipeStatus:
			a.nutrition, cmd = a.nutrition.Update(msg)
		case targetAdded, targetCleared, targetProductStatus:
			a.products, cmd = a.products.Update(msg)
		case targetNotice:
			a.community, cmd = a.community.Update(msg)
		}
		return a, cmd

	case copyResultMsg:
		var cmd tea.Cmd
		a.nutrition, cmd = a.nutrition.Update(msg)
		return a, cmd

	case openResultMsg:
		var cmd tea.Cmd
		a.products, cmd = a.products.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q":
				return a.quit()
			}
			return a, nil
		}

		if !a.isEditing() {
			switch msg.String() {
			case "h", "?":
				a.helpOpen = true
				return a, nil
			case "q":
				return a.quit()
			case "1":
				return a.navigate(viewWorkouts)
			case "2":
				return a.navigate(viewNutrition)
			case "3":
				return a.navigate(viewProducts)
			case "4":
				return a.navigate(viewProfile)
			case "5":
				return a.navigate(viewCommunity)
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewWorkouts:
		a.workouts, cmd = a.workouts.Update(msg)
	case viewNutrition:
		a.nutrition, cmd = a.nutrition.Update(msg)
	case viewProducts:
		a.products, cmd = a.products.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	case viewCommunity:
		a.community, cmd = a.community.Update(msg)
	}
	return a, cmd
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.cancelFetch != nil {
		a.cancelFetch()
	}
	return a, tea.Quit
}

func (a App) isEditing() bool {
	switch a.view {
	case viewNutrition:
		return a.nutrition.editing
	case viewCommunity:
		return a.community.editing()
	}
	return false
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo

	cartLen := 0
	if a.state != nil {
		cartLen = a.state.CartLen()
	}
	cart := cartBadgeStyle.Render(fmt.Sprintf("🛒 %d", cartLen))
	cartPad := max(a.width-lipgloss.Width(cart)-1, 0)
	header += "\n" + strings.Repeat(" ", cartPad) + cart

	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Workouts", viewWorkouts},
		{"2", "Nutrition", viewNutrition},
		{"3", "Products", viewProducts},
		{"4", "Profile", viewProfile},
		{"5", "Community", viewCommunity},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		if t.v == viewCommunity && a.communityDirty {
			label += " " + accentStyle.Render("●")
		}
		labelWidth := lipgloss.Width(label)
		leftPad := max((colWidth-labelWidth)/2, 0)
		rightPad := max(colWidth-labelWidth-leftPad, 0)
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.view {
	case viewWorkouts:
		body, help = a.workouts.View(), a.workouts.helpKeys()
	case viewNutrition:
		body, help = a.nutrition.View(), a.nutrition.helpKeys()
	case viewProducts:
		body, help = a.products.View(), a.products.helpKeys()
	case viewProfile:
		body, help = a.profile.View(), a.profile.helpKeys()
	case viewCommunity:
		body, help = a.community.View(), a.community.helpKeys()
	}

	if a.helpOpen {
		body = helpView()
		help = helpBar(helpEntry("esc", "close"), helpEntry("q", "quit"))
	}

	chrome := 4
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar.String(), body, help)
}

// placeholder returns the body shown instead of a catalog list while it is
// loading, after a failed fetch, or when the section has no items.
func placeholder(kind domain.SectionKind, loading bool, err error, n int) (string, bool) {
	switch {
	case loading:
		return " " + dimStyle.Render(fmt.Sprintf("Loading your %s data...", kind)) + "\n", true
	case err != nil:
		return " " + errorStyle.Render("Error loading data. Please try again later.") + "\n", true
	case n == 0:
		return " " + dimStyle.Render(fmt.Sprintf("No %s available currently", kind)) + "\n", true
	}
	return "", false
}
