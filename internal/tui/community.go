package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/naveenspark/gymhum/internal/state"
	"github.com/naveenspark/gymhum/pkg/domain"
)

// communityPanel is the focused area of the community view.
type communityPanel int

const (
	panelChallenges communityPanel = iota
	panelFeed
	panelCompose
	panelFriends
	panelCount
)

// communityModel shows challenges, the feed, the compose box and friend
// suggestions. Its snapshot is rebuilt by refresh.
type communityModel struct {
	state *state.State
	log   *zap.Logger

	record      domain.ProfileRecord
	feed        []domain.Post
	ready       bool
	panel       communityPanel
	cursors     [panelCount]int
	draft       string
	friendQuery string
	searching   bool // typing in the friend search
	notice      transient
	width       int
	height      int
}

func newCommunityModel(st *state.State, log *zap.Logger) communityModel {
	return communityModel{state: st, log: log}
}

// refresh rebuilds the snapshot from the record.
func (m communityModel) refresh() communityModel {
	if m.state == nil {
		return m
	}
	m.record = m.state.Profile()
	m.feed = m.state.Feed()
	m.ready = true
	m.cursors[panelChallenges] = clampCursor(m.cursors[panelChallenges], len(domain.Challenges))
	m.cursors[panelFeed] = clampCursor(m.cursors[panelFeed], len(m.feed))
	m.cursors[panelFriends] = clampCursor(m.cursors[panelFriends], len(m.suggestions()))
	return m
}

func (m communityModel) suggestions() []domain.FriendSuggestion {
	return domain.FriendSuggestions(m.record, m.friendQuery)
}

// editing reports whether keystrokes are text input rather than navigation.
func (m communityModel) editing() bool {
	return m.panel == panelCompose || m.searching
}

func (m communityModel) panelLen(p communityPanel) int {
	switch p {
	case panelChallenges:
		return len(domain.Challenges)
	case panelFeed:
		return len(m.feed)
	case panelFriends:
		return len(m.suggestions())
	}
	return 0
}

func (m communityModel) Update(msg tea.Msg) (communityModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case expireMsg:
		m.notice.expire(msg.seq)

	case tea.KeyMsg:
		if !m.ready {
			return m, nil
		}
		switch {
		case m.panel == panelCompose:
			return m.updateCompose(msg)
		case m.searching:
			return m.updateSearch(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m communityModel) nextPanel(delta int) communityModel {
	m.panel = communityPanel((int(m.panel) + delta + int(panelCount)) % int(panelCount))
	return m
}

func (m communityModel) updateNav(msg tea.KeyMsg) (communityModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.nextPanel(1), nil
	case "shift+tab":
		return m.nextPanel(-1), nil
	case "p":
		m.panel = panelCompose
	case "/":
		m.panel = panelFriends
		m.searching = true
	case "j", "down":
		if m.cursors[m.panel] < m.panelLen(m.panel)-1 {
			m.cursors[m.panel]++
		}
	case "k", "up":
		if m.cursors[m.panel] > 0 {
			m.cursors[m.panel]--
		}
	case "enter", "l":
		return m.act(msg.String())
	}
	return m, nil
}

// act performs the focused panel's action. "l" only likes.
func (m communityModel) act(key string) (communityModel, tea.Cmd) {
	switch m.panel {
	case panelChallenges:
		if key != "enter" {
			return m, nil
		}
		c := domain.Challenges[clampCursor(m.cursors[panelChallenges], len(domain.Challenges))]
		return m.joinChallenge(c.Name)
	case panelFeed:
		if len(m.feed) == 0 {
			return m, nil
		}
		return m.likePost(m.feed[clampCursor(m.cursors[panelFeed], len(m.feed))].ID)
	case panelFriends:
		if key != "enter" {
			return m, nil
		}
		s := m.suggestions()
		if len(s) == 0 {
			return m, nil
		}
		return m.addFriend(s[clampCursor(m.cursors[panelFriends], len(s))].Name)
	}
	return m, nil
}

func (m communityModel) changed(notice string) (communityModel, tea.Cmd) {
	m = m.refresh()
	changed := func() tea.Msg { return profileChangedMsg{community: true} }
	if notice == "" {
		return m, changed
	}
	noticeCmd := m.notice.set(notice, targetNotice, noticeDuration)
	return m, tea.Batch(noticeCmd, changed)
}

// failed shows a save error in the notice area. The draft is kept.
func (m communityModel) failed(err error) (communityModel, tea.Cmd) {
	cmd := m.notice.saveFailed(err, targetNotice)
	return m, cmd
}

func (m communityModel) joinChallenge(name string) (communityModel, tea.Cmd) {
	ok, err := m.state.JoinChallenge(name)
	if err != nil {
		return m.failed(err)
	}
	if !ok {
		return m, nil
	}
	return m.changed(fmt.Sprintf("You've joined the %s!", name))
}

func (m communityModel) addFriend(name string) (communityModel, tea.Cmd) {
	ok, err := m.state.AddFriend(name)
	if err != nil {
		return m.failed(err)
	}
	if !ok {
		return m, nil
	}
	return m.changed("Friend request sent to " + name)
}

func (m communityModel) likePost(id string) (communityModel, tea.Cmd) {
	ok, err := m.state.LikePost(id)
	if err != nil {
		return m.failed(err)
	}
	if !ok {
		return m, nil
	}
	return m.changed("")
}

func (m communityModel) updateCompose(msg tea.KeyMsg) (communityModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m.nextPanel(1), nil
	case "shift+tab":
		return m.nextPanel(-1), nil
	case "esc":
		m.panel = panelFeed
	case "enter":
		ok, err := m.state.CreatePost(m.draft)
		if err != nil {
			return m.failed(err)
		}
		if !ok {
			return m, nil
		}
		m.draft = ""
		m.cursors[panelFeed] = 1
		return m.changed("Your post has been shared with the community!")
	default:
		m.draft = editRune(m.draft, msg.String())
	}
	return m, nil
}

func (m communityModel) updateSearch(msg tea.KeyMsg) (communityModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
	case "esc":
		m.searching = false
		m.friendQuery = ""
	default:
		m.friendQuery = editRune(m.friendQuery, msg.String())
	}
	m.cursors[panelFriends] = clampCursor(m.cursors[panelFriends], len(m.suggestions()))
	return m, nil
}

func (m communityModel) View() string {
	if !m.ready {
		m.log.Error("community view rendered without state")
		return ""
	}
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render("GymHum Community") + "  " + taglineStyle.Render("Connect with fellow fitness enthusiasts") + "\n")
	if m.notice.text != "" {
		b.WriteString(" " + noticeStyle.Render(m.notice.text) + "\n")
	}

	m.viewChallenges(&b)
	m.viewFeed(&b)
	m.viewFriends(&b)
	return b.String()
}

func (m communityModel) heading(title string, p communityPanel) string {
	if m.panel == p {
		return "\n " + accentStyle.Render(title) + "\n"
	}
	return "\n " + sectionHeaderStyle.Render(title) + "\n"
}

func (m communityModel) rowMarker(p communityPanel, i int) string {
	if m.panel == p && m.cursors[p] == i {
		return accentStyle.Render("▸")
	}
	return " "
}

func (m communityModel) viewChallenges(b *strings.Builder) {
	b.WriteString(m.heading("Current Challenges", panelChallenges))
	barWidth := min(max(m.width-40, 10), 20)
	for i, c := range domain.Challenges {
		action := buttonStyle.Render("[Join Challenge]")
		if m.record.HasJoined(c.Name) {
			action = doneStyle.Render("Joined ✓")
		}
		fmt.Fprintf(b, " %s %s  %s\n", m.rowMarker(panelChallenges, i), selectedStyle.Render(c.Name), action)
		fmt.Fprintf(b, "   %s\n", dimStyle.Render(c.Description))
		fmt.Fprintf(b, "   %s %s\n", progressBar(c.Percent(m.record), barWidth),
			metaStyle.Render(fmt.Sprintf("%d/%d %s", c.Count(m.record), c.Goal, c.Unit)))
	}
}

func (m communityModel) viewFeed(b *strings.Builder) {
	b.WriteString(m.heading("Community Feed", panelFeed))
	for i, p := range m.feed {
		fmt.Fprintf(b, " %s %s %s  %s\n", m.rowMarker(panelFeed, i), p.Avatar, selectedStyle.Render(p.User), metaStyle.Render(p.Time))
		fmt.Fprintf(b, "   %s\n", normalStyle.Render(truncStr(p.Content, max(m.width-4, 20))))
		fmt.Fprintf(b, "   %s\n", dimStyle.Render(fmt.Sprintf("👍 %d  💬 %d  ↗️ Share", p.Likes, p.Comments)))
	}
	b.WriteString(" " + inputLine(m.draft, "Share your progress with the community...", m.panel == panelCompose) + "\n")
}

func (m communityModel) viewFriends(b *strings.Builder) {
	b.WriteString(m.heading("Connect With Friends", panelFriends))
	b.WriteString(" " + inputLine(m.friendQuery, "Search for friends...", m.searching) + "\n")
	b.WriteString(" " + sectionHeaderStyle.Render("People You May Know") + "\n")
	suggestions := m.suggestions()
	if len(suggestions) == 0 {
		b.WriteString("   " + dimStyle.Render("No suggestions") + "\n")
		return
	}
	for i, s := range suggestions {
		fmt.Fprintf(b, " %s %s  %s  %s\n", m.rowMarker(panelFriends, i),
			normalStyle.Render(s.Name),
			metaStyle.Render(fmt.Sprintf("%d mutual friends", s.MutualFriends)),
			buttonStyle.Render("[Add Friend]"))
	}
}

func (m communityModel) helpKeys() string {
	switch {
	case m.panel == panelCompose:
		return helpBar(helpEntry("enter", "post"), helpEntry("tab", "next"), helpEntry("esc", "back"))
	case m.searching:
		return helpBar(helpEntry("enter", "done"), helpEntry("esc", "clear"))
	}
	var action string
	switch m.panel {
	case panelChallenges:
		action = helpEntry("enter", "join")
	case panelFeed:
		action = helpEntry("enter/l", "like")
	case panelFriends:
		action = helpEntry("enter", "add friend")
	}
	return helpBar(helpEntry("1-5", "tabs"), helpEntry("tab", "panel"), helpEntry("j/k", "nav"), action, helpEntry("p", "post"), helpEntry("/", "search"), helpEntry("h", "help"), helpEntry("q", "quit"))
}
