package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hustleworks/nashville-hustle/internal/format"
	"github.com/hustleworks/nashville-hustle/pkg/catalog"
	"github.com/hustleworks/nashville-hustle/pkg/cue"
	"github.com/hustleworks/nashville-hustle/pkg/event"
	"github.com/hustleworks/nashville-hustle/pkg/game"
	"github.com/hustleworks/nashville-hustle/pkg/leaderboard"
	"github.com/hustleworks/nashville-hustle/pkg/market"
)

// UI is the BubbleTea model that runs the game screen.
// https://github.com/charmbracelet/bubbletea
type UI struct {
	g      *game.Game
	store  leaderboard.Store
	sounds cue.Player

	width  int
	height int
	ready  bool

	// Intro narrative state
	introLine int
	introDone bool

	// Character selection state
	selectedClass int

	// Playing state
	selectedItem int
	grade        catalog.Quality
	metaViewport viewport.Model
	particles    int
	notice       *event.Event

	// Modal state
	showTravelModal  bool
	selectedLocation int
	showLoanModal    bool
	showQuitModal    bool
	selectedAction   int

	// Game-over state
	nameInput textinput.Model
	saving    bool
	saved     bool
	saveErr   error
	scores    []leaderboard.HighScore
	copied    bool
}

type introTickMsg struct{}

type scoreSavedMsg struct {
	scores []leaderboard.HighScore
	err    error
}

var introLines = []string{
	"Nashville. Music City. A town of dreamers, tourists... and customers.",
	"You owe Jelly two grand, and Jelly doesn't do payment plans.",
	"Thirty days. Buy low, sell high, stay off the radar.",
	"Pay the shark back, stack your cash, and get out clean.",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	cashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	debtStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("251"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	introStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("251")).
			Italic(true)

	metaPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(2)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var demandStyles = map[market.DemandLevel]lipgloss.Style{
	market.DemandVeryHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	market.DemandHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	market.DemandMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
	market.DemandLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	market.DemandCrash:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

func NewUI(g *game.Game, store leaderboard.Store, sounds cue.Player) UI {
	ti := textinput.New()
	ti.Placeholder = "Your name for the books..."
	ti.CharLimit = 24
	ti.Width = 30

	return UI{
		g:            g,
		store:        store,
		sounds:       sounds,
		grade:        catalog.QualityMid,
		metaViewport: viewport.New(30, 20),
		nameInput:    ti,
	}
}

func (m UI) Init() tea.Cmd {
	return introTick()
}

func introTick() tea.Cmd {
	return tea.Tick(1800*time.Millisecond, func(time.Time) tea.Msg {
		return introTickMsg{}
	})
}

func (m UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.metaViewport.Width = m.metaWidth()
		m.metaViewport.Height = m.height - 4
		m.ready = true
		return m, nil

	case introTickMsg:
		if m.introDone {
			return m, nil
		}
		m.introLine++
		if m.introLine >= len(introLines) {
			m.introDone = true
			return m, nil
		}
		return m, introTick()

	case scoreSavedMsg:
		m.saving = false
		m.saveErr = msg.err
		if msg.err == nil {
			m.saved = true
			m.scores = msg.scores
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.g.Status() == game.StatusGameOver && !m.saved {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m UI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}
	if msg.Type == tea.KeyCtrlC {
		m.showQuitModal = true
		return m, nil
	}

	if !m.introDone {
		m.introDone = true
		return m, nil
	}

	switch m.g.Status() {
	case game.StatusCharacterSelection:
		return m.updateCharacterSelect(msg)
	case game.StatusPlaying:
		return m.updatePlaying(msg)
	case game.StatusGameOver:
		return m.updateGameOver(msg)
	}
	return m, nil
}

func (m UI) updateQuitModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEnter:
		return m, tea.Quit
	default:
		switch msg.String() {
		case "y", "Y":
			return m, tea.Quit
		case "n", "N", "esc":
			m.showQuitModal = false
		}
	}
	return m, nil
}

func (m UI) updateCharacterSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.showQuitModal = true
	case tea.KeyUp:
		if m.selectedClass > 0 {
			m.selectedClass--
		}
	case tea.KeyDown:
		if m.selectedClass < len(catalog.CharacterClasses)-1 {
			m.selectedClass++
		}
	case tea.KeyEnter:
		res := m.g.StartGame(catalog.CharacterClasses[m.selectedClass])
		m.applyResult(res)
	}
	return m, nil
}

func (m UI) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A news-style event banner blocks everything until acknowledged.
	if m.notice != nil {
		m.notice = nil
		return m, nil
	}
	if m.g.PendingEvent() != nil {
		return m.updateEventModal(msg)
	}
	if m.showLoanModal {
		return m.updateLoanModal(msg)
	}
	if m.showTravelModal {
		return m.updateTravelModal(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.showQuitModal = true
		return m, nil
	case tea.KeyUp:
		if m.selectedItem > 0 {
			m.selectedItem--
		}
		return m, nil
	case tea.KeyDown:
		if m.selectedItem < len(catalog.Items)-1 {
			m.selectedItem++
		}
		return m, nil
	case tea.KeyLeft:
		if m.grade > catalog.QualityLow {
			m.grade--
		}
		return m, nil
	case tea.KeyRight:
		if m.grade < catalog.QualityHigh {
			m.grade++
		}
		return m, nil
	}

	item := catalog.Items[m.selectedItem].Name
	switch msg.String() {
	case "b":
		m.applyResult(m.g.Transact(item, m.grade, 1, true))
	case "B":
		m.applyResult(m.g.Transact(item, m.grade, 10, true))
	case "s":
		m.applyResult(m.g.Transact(item, m.grade, 1, false))
	case "S":
		m.applyResult(m.g.Transact(item, m.grade, 10, false))
	case "t":
		m.showTravelModal = true
		m.selectedLocation = 0
	case "f":
		m.applyResult(m.g.SearchStash())
	case "p":
		m.applyResult(m.g.PayDebt())
	case "r":
		m.applyResult(m.g.Retire())
		if m.g.Status() == game.StatusGameOver {
			return m.enterGameOver()
		}
	}
	return m, nil
}

func (m UI) updateEventModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.g.PendingEvent()
	switch msg.Type {
	case tea.KeyUp:
		if m.selectedAction > 0 {
			m.selectedAction--
		}
	case tea.KeyDown:
		if m.selectedAction < len(pending.Actions)-1 {
			m.selectedAction++
		}
	case tea.KeyEnter:
		m.applyResult(m.g.RespondToEvent(m.selectedAction))
		m.selectedAction = 0
	}
	return m, nil
}

func (m UI) updateLoanModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.showLoanModal = false
		return m, nil
	case tea.KeyUp:
		if m.selectedAction > 0 {
			m.selectedAction--
		}
	case tea.KeyDown:
		if m.selectedAction < len(catalog.LoanOffers)-1 {
			m.selectedAction++
		}
	case tea.KeyEnter:
		m.applyResult(m.g.TakeLoan(m.selectedAction))
		m.showLoanModal = false
		m.selectedAction = 0
	}
	return m, nil
}

func (m UI) updateTravelModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.showTravelModal = false
		return m, nil
	case tea.KeyUp:
		if m.selectedLocation > 0 {
			m.selectedLocation--
		}
	case tea.KeyDown:
		if m.selectedLocation < len(catalog.Locations)-1 {
			m.selectedLocation++
		}
	case tea.KeyEnter:
		m.showTravelModal = false
		res := m.g.Travel(catalog.Locations[m.selectedLocation].Name)
		m.applyResult(res)
		if m.g.Status() == game.StatusGameOver {
			return m.enterGameOver()
		}
		if res.Event != nil && m.g.PendingEvent() == nil {
			m.notice = res.Event
		}
	}
	return m, nil
}

func (m UI) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.saved {
		switch msg.Type {
		case tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.saving {
				return m, nil
			}
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				name = "Anonymous Hustler"
			}
			m.saving = true
			return m, m.saveScore(name)
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "c":
		m.copySummary()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// applyResult routes a transition result into presentation state: sound
// cues, the loan-offer modal and the profit particle burst.
func (m *UI) applyResult(res game.Result) {
	for _, c := range res.Cues {
		m.sounds.Play(c)
	}
	m.particles = res.Particles
	if res.LoanOffer {
		m.showLoanModal = true
		m.selectedAction = 0
	}
}

func (m UI) enterGameOver() (tea.Model, tea.Cmd) {
	m.nameInput.Focus()
	return m, textinput.Blink
}

func (m UI) saveScore(name string) tea.Cmd {
	score := m.g.Score()
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		scores, err := store.Load(ctx)
		if err != nil {
			return scoreSavedMsg{nil, err}
		}
		scores = append(scores, leaderboard.NewHighScore(name, score))
		if err := store.Save(ctx, scores); err != nil {
			return scoreSavedMsg{nil, err}
		}
		return scoreSavedMsg{leaderboard.Trim(scores), nil}
	}
}

func (m *UI) copySummary() {
	st := m.g.State()
	if st == nil {
		return
	}
	summary := fmt.Sprintf(
		"Nashville Hustle: %s survived %d days. Final score %s. %d deals, biggest profit %s, peak heat %d/5.",
		st.Character.Name, st.Stats.DaysSurvived, format.Currency(m.g.Score()),
		st.Stats.TotalDeals, format.Currency(st.Stats.BiggestProfit), st.Stats.HeatRecord)
	if err := clipboard.WriteAll(summary); err == nil {
		m.copied = true
	}
}

func (m UI) metaWidth() int {
	w := int(float64(m.width) * 0.34)
	if w < 28 {
		w = 28
	}
	return w
}

func (m UI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.introDone {
		return m.renderIntro()
	}

	switch m.g.Status() {
	case game.StatusCharacterSelection:
		return m.renderCharacterSelect()
	case game.StatusGameOver:
		return m.renderGameOver()
	default:
		return m.renderPlaying()
	}
}

func (m UI) renderIntro() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("NASHVILLE HUSTLE") + "\n\n")
	for i := 0; i <= m.introLine && i < len(introLines); i++ {
		content.WriteString(introStyle.Render(wordwrap.String(introLines[i], 56)) + "\n\n")
	}
	content.WriteString(helpStyle.Render("Press any key to skip"))

	modal := modalStyle.Width(62).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderCharacterSelect() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Who were you before all this?"))
	content.WriteString("\n\n")

	for i, class := range catalog.CharacterClasses {
		if i == m.selectedClass {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", class.Name)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", class.Name)))
		}
		content.WriteString("\n")
	}

	class := catalog.CharacterClasses[m.selectedClass]
	content.WriteString("\n")
	content.WriteString(wordwrap.String(class.Description, 56) + "\n\n")
	content.WriteString(helpStyle.Render(class.Perk) + "\n\n")
	content.WriteString(helpStyle.Render("Use ↑/↓ to choose, Enter to start, Ctrl+C to exit"))

	modal := modalStyle.Width(62).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderPlaying() string {
	metaWidth := m.metaWidth()
	mainWidth := m.width - metaWidth - 4

	var left strings.Builder
	left.WriteString(m.renderMarket(mainWidth))
	left.WriteString("\n" + separatorStyle.Render(strings.Repeat("─", max(mainWidth-2, 10))) + "\n")
	left.WriteString(m.renderLog(mainWidth))
	left.WriteString("\n" + helpStyle.Render(wordwrap.String(
		"↑/↓ item · ←/→ grade · b/s buy/sell · B/S x10 · t travel · f search · p pay debt · r retire · Esc quit", mainWidth)))

	m.metaViewport.Width = metaWidth
	m.metaViewport.Height = m.height - 2
	m.metaViewport.SetContent(m.renderStatus(metaWidth - 4))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(mainWidth).Render(left.String()),
		metaPanelStyle.Render(m.metaViewport.View()),
	)

	if pending := m.g.PendingEvent(); pending != nil {
		return m.renderEventModal(pending)
	}
	if m.notice != nil {
		return m.renderNoticeModal(m.notice)
	}
	if m.showLoanModal {
		return m.renderLoanModal()
	}
	if m.showTravelModal {
		return m.renderTravelModal()
	}
	return body
}

func (m UI) renderMarket(width int) string {
	st := m.g.State()
	prices := m.g.Market()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s MARKET", strings.ToUpper(st.Location))))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  day %d of %d · grade: %s", st.Day, catalog.GameDurationDays, m.grade)))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %-10s %9s %9s %9s  %-9s %5s", "ITEM", "LOW", "MID", "HIGH", "DEMAND", "HELD")))
	b.WriteString("\n")

	for i, item := range catalog.Items {
		q := prices.Quote(st.Location, item.Name)
		held := st.Inventory[item.Name].Units()

		row := fmt.Sprintf("  %-10s %9s %9s %9s  ",
			item.Name,
			format.Currency(q.Low), format.Currency(q.Mid), format.Currency(q.High))

		demand := fmt.Sprintf("%-9s", q.Demand)
		tail := fmt.Sprintf(" %5d", held)

		if i == m.selectedItem {
			b.WriteString(selectedRowStyle.Render(row+demand+tail) + "\n")
		} else {
			b.WriteString(row + demandStyles[q.Demand].Render(demand) + tail + "\n")
		}
	}

	selected := prices.Quote(st.Location, catalog.Items[m.selectedItem].Name)
	b.WriteString("\n" + helpStyle.Render(wordwrap.String(selected.Reason, max(width-2, 20))))
	return b.String()
}

func (m UI) renderLog(width int) string {
	var b strings.Builder
	if m.particles > 0 {
		b.WriteString(cashStyle.Render(strings.Repeat("$ ", m.particles*3)) + "\n")
	}
	for _, line := range m.g.Log() {
		b.WriteString(logStyle.Render(wordwrap.String("· "+line, max(width-2, 20))) + "\n")
	}
	return b.String()
}

func (m UI) renderStatus(width int) string {
	st := m.g.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("THE HUSTLE") + "\n\n")

	b.WriteString(fmt.Sprintf("Cash:  %s\n", cashStyle.Render(format.Currency(st.Cash))))
	b.WriteString(fmt.Sprintf("Debt:  %s (%.0f%%/day)\n", debtStyle.Render(format.Currency(st.Debt)), st.InterestRate*100))
	b.WriteString(fmt.Sprintf("Stash: %d/%d units\n", st.InventoryUsed(), catalog.MaxInventory))
	b.WriteString(fmt.Sprintf("Searches left: %d\n\n", st.SearchesToday))

	b.WriteString(titleStyle.Render("HEAT") + fmt.Sprintf("  %d/5\n", st.Heat))
	b.WriteString(wordwrap.String(catalog.HeatDescription(st.Heat), width) + "\n\n")

	if c := st.ActiveChallenge; c != nil {
		b.WriteString(titleStyle.Render("DAILY CHALLENGE") + "\n")
		b.WriteString(wordwrap.String(c.Description, width) + "\n")
		if c.IsComplete {
			b.WriteString(cashStyle.Render("Complete!") + "\n\n")
		} else {
			b.WriteString(fmt.Sprintf("%s / %s\n\n", format.Currency(c.Progress), format.Currency(c.Target)))
		}
	}

	b.WriteString(titleStyle.Render("REPUTATION") + "\n")
	for _, name := range catalog.FactionNames {
		b.WriteString(fmt.Sprintf("%-16s %3d\n", name, st.Reputation[name]))
	}
	b.WriteString("\n")

	if loc, ok := catalog.LocationByName(st.Location); ok {
		b.WriteString(titleStyle.Render(strings.ToUpper(loc.Name)) + "\n")
		b.WriteString(wordwrap.String(loc.Description, width) + "\n")
	}
	return b.String()
}

func (m UI) renderEventModal(ev *event.Event) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(ev.Title))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(ev.Description, 52))
	content.WriteString("\n\n")

	for i, action := range ev.Actions {
		if i == m.selectedAction {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", action.Label)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", action.Label)))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Use ↑/↓ to choose, Enter to confirm"))

	modal := modalStyle.Width(58).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderNoticeModal(ev *event.Event) string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(ev.Title))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String(ev.Description, 52))
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("Press any key to continue"))

	modal := modalStyle.Width(58).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderLoanModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("The Shark Is Impressed"))
	content.WriteString("\n\n")
	content.WriteString(wordwrap.String("Debt's clear. Word travels. The shark offers you a bigger line of credit, one time only.", 52))
	content.WriteString("\n\n")

	for i, offer := range catalog.LoanOffers {
		label := fmt.Sprintf("%s at %.0f%% daily interest", format.Currency(offer.Amount), offer.Interest*100)
		if i == m.selectedAction {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", label)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", label)))
		}
		content.WriteString("\n")
	}
	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Use ↑/↓ to choose, Enter to take it, Esc to walk away"))

	modal := modalStyle.Width(58).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderTravelModal() string {
	st := m.g.State()

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Where to next?"))
	content.WriteString("\n\n")

	for i, loc := range catalog.Locations {
		marker := "  "
		if loc.Name == st.Location {
			marker = "• "
		}
		if i == m.selectedLocation {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s%s", marker, loc.Name)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s%s", marker, loc.Name)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(wordwrap.String(catalog.Locations[m.selectedLocation].Description, 52) + "\n\n")
	content.WriteString(helpStyle.Render("Traveling ends the day: interest compounds, markets move."))
	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Use ↑/↓ to choose, Enter to go, Esc to stay"))

	modal := modalStyle.Width(58).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderGameOver() string {
	st := m.g.State()
	score := m.g.Score()

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("THE RUN IS OVER"))
	content.WriteString("\n\n")

	if score >= 0 {
		content.WriteString(fmt.Sprintf("Final score: %s\n\n", cashStyle.Render(format.Currency(score))))
	} else {
		content.WriteString(fmt.Sprintf("Final score: %s\n", debtStyle.Render(format.Currency(score))))
		content.WriteString(helpStyle.Render("You still owe the shark. Leave town. Fast.") + "\n\n")
	}

	content.WriteString(fmt.Sprintf("Days survived:   %d\n", st.Stats.DaysSurvived))
	content.WriteString(fmt.Sprintf("Deals closed:    %d\n", st.Stats.TotalDeals))
	content.WriteString(fmt.Sprintf("Biggest profit:  %s\n", format.Currency(st.Stats.BiggestProfit)))
	content.WriteString(fmt.Sprintf("Peak heat:       %d/5\n\n", st.Stats.HeatRecord))

	switch {
	case m.saving:
		content.WriteString("Saving your score...\n")
	case !m.saved:
		content.WriteString("Sign the books:\n")
		content.WriteString(m.nameInput.View() + "\n\n")
		if m.saveErr != nil {
			content.WriteString(errorStyle.Render("Couldn't save your score. Press Enter to retry.") + "\n")
		}
		content.WriteString(helpStyle.Render("Enter to save, Esc to quit"))
	default:
		content.WriteString(titleStyle.Render("HALL OF FAME") + "\n")
		if len(m.scores) == 0 {
			content.WriteString("No scores on the books yet.\n")
		}
		for i, hs := range m.scores {
			content.WriteString(fmt.Sprintf("%2d. %-24s %10s  %s\n", i+1, hs.Name, format.Currency(hs.Score), hs.Date))
		}
		content.WriteString("\n")
		if m.copied {
			content.WriteString(cashStyle.Render("Summary copied to clipboard.") + "\n")
		}
		content.WriteString(helpStyle.Render("c to copy a summary, q to quit"))
	}

	modal := modalStyle.Width(64).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Walk Away?"))
	content.WriteString("\n\n")
	content.WriteString("The shark doesn't forget. Quit anyway?")
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("Press Y to quit, N to keep hustling"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}
