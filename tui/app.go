package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"event-seating-cli/checkout"
	"event-seating-cli/model"
	"event-seating-cli/seating"
	"event-seating-cli/service"
	"event-seating-cli/store"
)

type appState int

const (
	stateLoadingEvent appState = iota
	stateLoadingSeating
	stateSeatMap
	stateCart
	stateLogin
	stateLoggingIn
	stateCheckout
	stateLoadError
)

const (
	inputFirstName = iota
	inputLastName
	inputEmail
	inputCount
)

const (
	loginInputEmail = iota
	loginInputPassword
	loginInputCount
)

type appModel struct {
	client *service.Client

	state appState
	err   error

	width  int
	height int

	event   model.Event
	seatMap seating.Model

	// checkout owns the cart and the order-submission lifecycle; the TUI
	// only dispatches events into it and renders the resulting snapshot.
	checkout checkout.Snapshot

	cursorRow  int
	cursorSeat int

	inputs     [inputCount]textinput.Model
	focusIndex int

	loginInputs [loginInputCount]textinput.Model
	loginFocus  int
	loginErr    error
	loggedIn    *model.Buyer

	cartList list.Model

	spinner spinner.Model

	// Monotonic sequence numbers: results of superseded loads and logins
	// are discarded ("last request wins").
	loadSeq  int
	loginSeq int
}

type eventMsg struct {
	event model.Event
	err   error
}

type seatingMsg struct {
	seq     int
	tickets model.EventTickets
	err     error
}

type loginMsg struct {
	seq  int
	res  model.LoginResponse
	err  error
}

type orderMsg struct {
	seq int
	res model.OrderResponse
	err error
}

func New() tea.Model {
	m := appModel{
		client: service.NewClient(nil),
		state:  stateLoadingEvent,
	}

	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].CharLimit = 64
	}
	m.inputs[inputFirstName].Placeholder = "First name"
	m.inputs[inputLastName].Placeholder = "Last name"
	m.inputs[inputEmail].Placeholder = "Email for your tickets"
	m.inputs[inputEmail].CharLimit = 128

	for i := range m.loginInputs {
		m.loginInputs[i] = textinput.New()
		m.loginInputs[i].CharLimit = 128
	}
	m.loginInputs[loginInputEmail].Placeholder = "Email"
	m.loginInputs[loginInputPassword].Placeholder = "Password"
	m.loginInputs[loginInputPassword].EchoMode = textinput.EchoPassword

	if buyer, err := store.LoadBuyerIdentity(); err == nil {
		m.inputs[inputFirstName].SetValue(buyer.FirstName)
		m.inputs[inputLastName].SetValue(buyer.LastName)
		m.inputs[inputEmail].SetValue(buyer.Email)
	}

	m.cartList = newList("Cart")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchEventCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateCart && m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		return m.updateFocusedComponent(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case eventMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateLoadError
			return m, nil
		}
		m.event = msg.event
		m.state = stateLoadingSeating
		m.loadSeq++
		return m, tea.Batch(m.fetchSeatingCmd(m.event.EventId, m.loadSeq), m.spinner.Tick)

	case seatingMsg:
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.state = stateLoadError
			return m, nil
		}
		built, err := seating.Build(msg.tickets)
		if err != nil {
			// Data-integrity failure: refuse to render seats with
			// unresolved prices.
			m.err = err
			m.state = stateLoadError
			return m, nil
		}
		m.seatMap = built
		m.checkout = checkout.Apply(m.checkout, checkout.CatalogLoaded{Model: built})
		m.clampCursor()
		m.refreshCartList()
		m.state = stateSeatMap
		return m, nil

	case loginMsg:
		if msg.seq != m.loginSeq {
			return m, nil
		}
		if msg.err != nil {
			m.loginErr = msg.err
			m.state = stateLogin
			return m, nil
		}
		user := msg.res.User
		m.loggedIn = &user
		m.loginErr = nil
		m.inputs[inputFirstName].SetValue(user.FirstName)
		m.inputs[inputLastName].SetValue(user.LastName)
		m.inputs[inputEmail].SetValue(user.Email)
		m.state = stateSeatMap
		return m, nil

	case orderMsg:
		if msg.err != nil {
			m.checkout = checkout.Apply(m.checkout, checkout.Failed{Seq: msg.seq, Err: msg.err})
			return m, nil
		}
		before := m.checkout.State
		m.checkout = checkout.Apply(m.checkout, checkout.Resolved{Seq: msg.seq, Order: msg.res})
		if before == checkout.StateSubmitting && m.checkout.State == checkout.StateSuccess {
			if m.loggedIn == nil {
				_ = store.RememberBuyerIdentity(m.checkout.Identity)
			}
			m.refreshCartList()
		}
		return m, nil
	}

	return m.updateFocusedComponent(msg)
}

func (m appModel) updateFocusedComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateCart:
		m.cartList, cmd = m.cartList.Update(msg)
	case stateLogin:
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	case stateCheckout:
		if m.checkout.State == checkout.StateCollecting {
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingEvent, stateLoadingSeating, stateLoggingIn:
		return header + "\n\n" + m.loadingView()
	case stateSeatMap:
		return header + "\n\n" + m.seatMapView()
	case stateCart:
		return header + "\n\n" + m.cartList.View() + "\n" + m.cartBar()
	case stateLogin:
		return header + "\n\n" + m.loginView()
	case stateCheckout:
		return header + "\n\n" + m.checkoutView()
	case stateLoadError:
		return header + "\n\n" + errorStyle.Render(m.err.Error()) + "\n\n" + hint("Press r to retry or ctrl+c to quit.")
	default:
		return header
	}
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Event Seating")
	sub := []string{}
	if m.event.NamePub != "" {
		sub = append(sub, m.event.NamePub)
	}
	if m.event.Place != "" {
		sub = append(sub, m.event.Place)
	}
	if !m.event.DateFrom.IsZero() {
		sub = append(sub, m.event.DateFrom.Format("2006-01-02 15:04"))
	}
	if m.loggedIn != nil {
		sub = append(sub, fmt.Sprintf("Account: %s %s", m.loggedIn.FirstName, m.loggedIn.LastName))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit"
	switch m.state {
	case stateSeatMap:
		hints = "arrows move • enter toggle seat • c checkout • v cart • l login • r reload • q quit"
	case stateCart:
		hints = "enter remove seat • type to filter • esc back"
	case stateLogin:
		hints = "tab next field • enter login • esc back"
	case stateCheckout:
		switch m.checkout.State {
		case checkout.StateCollecting:
			hints = "tab next field • enter place order • esc back"
		case checkout.StateSubmitting:
			hints = "submitting… please wait"
		case checkout.StateSuccess:
			hints = "enter/esc back to seat map"
		case checkout.StateError:
			hints = "enter retry • esc back"
		}
	case stateLoadError:
		hints = "r retry • ctrl+c quit"
	}
	return title + meta + "\n" + hint(hints)
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingEvent:
		title = "Loading event"
	case stateLoadingSeating:
		title = "Loading seat map"
	case stateLoggingIn:
		title = "Logging in"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if m.state == stateSeatMap || m.state == stateCart || m.state == stateLoadError {
			return m, tea.Quit, true
		}
	case "r":
		if m.state == stateLoadError {
			m.err = nil
			m.state = stateLoadingEvent
			return m, tea.Batch(m.fetchEventCmd(), m.spinner.Tick), true
		}
		if m.state == stateSeatMap {
			m.state = stateLoadingSeating
			m.loadSeq++
			return m, tea.Batch(m.fetchSeatingCmd(m.event.EventId, m.loadSeq), m.spinner.Tick), true
		}
	case "esc":
		return m.handleEscape()
	case "v":
		if m.state == stateSeatMap {
			m.refreshCartList()
			m.state = stateCart
			return m, nil, true
		}
	case "l":
		if m.state == stateSeatMap && m.loggedIn == nil {
			m.loginErr = nil
			m.loginFocus = loginInputEmail
			m.focusLoginInputs()
			m.state = stateLogin
			return m, nil, true
		}
	case "c":
		if m.state == stateSeatMap {
			return m.openCheckout()
		}
	case "up", "down", "left", "right":
		if m.state == stateSeatMap {
			m.moveCursor(msg.String())
			return m, nil, true
		}
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		switch m.state {
		case stateLogin:
			m.cycleLoginFocus(msg.Type == tea.KeyShiftTab)
			return m, nil, true
		case stateCheckout:
			if m.checkout.State == checkout.StateCollecting {
				m.cycleCheckoutFocus(msg.Type == tea.KeyShiftTab)
				return m, nil, true
			}
		}
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeySpace:
		if m.state == stateSeatMap {
			return m.toggleCursorSeat()
		}
	}
	return m, nil, false
}

func (m appModel) handleEscape() (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case stateCart:
		if m.cartList.SettingFilter() || m.cartList.IsFiltered() {
			m.cartList.ResetFilter()
			return m, nil, true
		}
		m.state = stateSeatMap
		return m, nil, true
	case stateLogin:
		m.state = stateSeatMap
		return m, nil, true
	case stateCheckout:
		m.checkout = checkout.Apply(m.checkout, checkout.Close{})
		// Close is refused while a submission is in flight.
		if m.checkout.State == checkout.StateIdle {
			m.state = stateSeatMap
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleEnter() (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case stateSeatMap:
		return m.toggleCursorSeat()
	case stateCart:
		item, ok := m.cartList.SelectedItem().(cartItem)
		if !ok {
			return m, nil, true
		}
		m.checkout = checkout.Apply(m.checkout, checkout.ToggleSeat{Seat: item.seat})
		m.refreshCartList()
		return m, nil, true
	case stateLogin:
		email := strings.TrimSpace(m.loginInputs[loginInputEmail].Value())
		password := m.loginInputs[loginInputPassword].Value()
		if email == "" || password == "" {
			m.loginErr = errors.New("enter both email and password")
			return m, nil, true
		}
		m.loginSeq++
		m.state = stateLoggingIn
		return m, tea.Batch(m.loginCmd(m.loginSeq, email, password), m.spinner.Tick), true
	case stateCheckout:
		switch m.checkout.State {
		case checkout.StateCollecting:
			m.checkout = checkout.Apply(m.checkout, checkout.SetIdentity{Identity: m.formIdentity()})
			m.checkout = checkout.Apply(m.checkout, checkout.Submit{})
			if m.checkout.State != checkout.StateSubmitting {
				return m, nil, true
			}
			req := checkout.BuildOrderRequest(m.event.EventId, m.checkout.Cart, m.checkout.Identity)
			return m, tea.Batch(m.submitOrderCmd(m.checkout.Seq, req), m.spinner.Tick), true
		case checkout.StateSuccess:
			m.checkout = checkout.Apply(m.checkout, checkout.Close{})
			m.state = stateSeatMap
			return m, nil, true
		case checkout.StateError:
			m.checkout = checkout.Apply(m.checkout, checkout.Retry{})
			return m, nil, true
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) openCheckout() (tea.Model, tea.Cmd, bool) {
	m.checkout = checkout.Apply(m.checkout, checkout.Open{})
	if m.checkout.State != checkout.StateCollecting {
		return m, nil, true
	}
	m.focusIndex = inputFirstName
	m.focusCheckoutInputs()
	m.state = stateCheckout
	return m, nil, true
}

func (m appModel) toggleCursorSeat() (tea.Model, tea.Cmd, bool) {
	seat, ok := m.seatAtCursor()
	if !ok {
		return m, nil, true
	}
	m.checkout = checkout.Apply(m.checkout, checkout.ToggleSeat{Seat: seat})
	return m, nil, true
}

func (m appModel) seatAtCursor() (seating.PricedSeat, bool) {
	if m.cursorRow < 0 || m.cursorRow >= len(m.seatMap) {
		return seating.PricedSeat{}, false
	}
	row := m.seatMap[m.cursorRow]
	if m.cursorSeat < 0 || m.cursorSeat >= len(row.Seats) {
		return seating.PricedSeat{}, false
	}
	return row.Seats[m.cursorSeat], true
}

func (m *appModel) moveCursor(direction string) {
	switch direction {
	case "up":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down":
		if m.cursorRow < len(m.seatMap)-1 {
			m.cursorRow++
		}
	case "left":
		if m.cursorSeat > 0 {
			m.cursorSeat--
		}
	case "right":
		m.cursorSeat++
	}
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	if len(m.seatMap) == 0 {
		m.cursorRow = 0
		m.cursorSeat = 0
		return
	}
	if m.cursorRow >= len(m.seatMap) {
		m.cursorRow = len(m.seatMap) - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	row := m.seatMap[m.cursorRow]
	if m.cursorSeat >= len(row.Seats) {
		m.cursorSeat = len(row.Seats) - 1
	}
	if m.cursorSeat < 0 {
		m.cursorSeat = 0
	}
}

func (m *appModel) cycleCheckoutFocus(backwards bool) {
	m.focusIndex = cycleIndex(m.focusIndex, inputCount, backwards)
	m.focusCheckoutInputs()
}

func (m *appModel) focusCheckoutInputs() {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *appModel) cycleLoginFocus(backwards bool) {
	m.loginFocus = cycleIndex(m.loginFocus, loginInputCount, backwards)
	m.focusLoginInputs()
}

func (m *appModel) focusLoginInputs() {
	for i := range m.loginInputs {
		if i == m.loginFocus {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

func cycleIndex(current int, count int, backwards bool) int {
	if backwards {
		return (current - 1 + count) % count
	}
	return (current + 1) % count
}

func (m appModel) formIdentity() model.Buyer {
	return model.Buyer{
		FirstName: m.inputs[inputFirstName].Value(),
		LastName:  m.inputs[inputLastName].Value(),
		Email:     m.inputs[inputEmail].Value(),
	}
}

func (m appModel) isLoadingState() bool {
	if m.state == stateLoadingEvent || m.state == stateLoadingSeating || m.state == stateLoggingIn {
		return true
	}
	return m.state == stateCheckout && m.checkout.State == checkout.StateSubmitting
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	m.cartList.SetSize(m.width, h)
}

func (m *appModel) refreshCartList() {
	seats := m.checkout.Cart.Seats()
	items := make([]list.Item, 0, len(seats))
	for _, seat := range seats {
		items = append(items, cartItem{seat: seat, currency: m.currency()})
	}
	m.cartList.SetItems(items)
	if index := m.cartList.Index(); index >= len(items) && len(items) > 0 {
		m.cartList.Select(len(items) - 1)
	}
}

func (m appModel) currency() string {
	if m.event.CurrencyIso != "" {
		return m.event.CurrencyIso
	}
	return "CZK"
}

// seat map rendering

var (
	cursorStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	inCartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5"))
	rowLabelStyle  = lipgloss.NewStyle().Faint(true)
	tierPalette    = []string{"2", "4", "6", "3", "5", "12"}
	cartBarStyle   = lipgloss.NewStyle().Bold(true)
	panelStyle     = lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("63")).MarginTop(1)
	panelChipStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("63")).Padding(0, 2)
)

func (m appModel) seatMapView() string {
	if len(m.seatMap) == 0 {
		return "No seats on sale." + "\n\n" + m.cartBar()
	}

	tierColors := m.tierColors()

	cellWidth := 2
	for _, row := range m.seatMap {
		for _, seat := range row.Seats {
			if l := len(fmt.Sprintf("%d", seat.Place)); l > cellWidth {
				cellWidth = l
			}
		}
	}

	rowWidth := 2
	for _, row := range m.seatMap {
		if l := len(fmt.Sprintf("%d", row.SeatRow)); l > rowWidth {
			rowWidth = l
		}
	}

	var b strings.Builder
	for rowIndex, row := range m.seatMap {
		label := fmt.Sprintf("%*d", rowWidth, row.SeatRow)
		b.WriteString(rowLabelStyle.Render(label))
		b.WriteString(" ")
		for seatIndex, seat := range row.Seats {
			text := padCell(fmt.Sprintf("%d", seat.Place), cellWidth)
			switch {
			case rowIndex == m.cursorRow && seatIndex == m.cursorSeat:
				text = cursorStyle.Render(text)
			case m.checkout.Cart.Has(seat.SeatId):
				text = inCartStyle.Render(text)
			default:
				color := tierColors[seat.TicketTypeId]
				text = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
			}
			b.WriteString(text)
			if seatIndex < len(row.Seats)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	legend := m.tierLegend(tierColors)
	selected := m.cursorSeatLine()

	return b.String() + "\n" + legend + "\n" + selected + "\n\n" + m.cartBar()
}

func (m appModel) tierColors() map[string]string {
	colors := map[string]string{}
	seen := []string{}
	for _, row := range m.seatMap {
		for _, seat := range row.Seats {
			if _, ok := colors[seat.TicketTypeId]; ok {
				continue
			}
			colors[seat.TicketTypeId] = tierPalette[len(seen)%len(tierPalette)]
			seen = append(seen, seat.TicketTypeId)
		}
	}
	return colors
}

func (m appModel) tierLegend(tierColors map[string]string) string {
	type tier struct {
		id    string
		name  string
		price float64
	}
	var tiers []tier
	seen := map[string]bool{}
	for _, row := range m.seatMap {
		for _, seat := range row.Seats {
			if seen[seat.TicketTypeId] {
				continue
			}
			seen[seat.TicketTypeId] = true
			tiers = append(tiers, tier{id: seat.TicketTypeId, name: seat.TicketTypeName, price: seat.Price})
		}
	}

	parts := make([]string, 0, len(tiers)+1)
	for _, t := range tiers {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(tierColors[t.id])).Render("██")
		parts = append(parts, fmt.Sprintf("%s %s %s", swatch, t.name, formatAmount(t.price, m.currency())))
	}
	parts = append(parts, inCartStyle.Render("NN")+" in cart")
	return hint("Legend: ") + strings.Join(parts, "  •  ")
}

func (m appModel) cursorSeatLine() string {
	seat, ok := m.seatAtCursor()
	if !ok {
		return ""
	}
	status := "available"
	if m.checkout.Cart.Has(seat.SeatId) {
		status = "in cart"
	}
	return hint(fmt.Sprintf("Row %d • Seat %d • %s • %s • %s",
		seat.Row, seat.Place, seat.TicketTypeName, formatAmount(seat.Price, m.currency()), status))
}

func (m appModel) cartBar() string {
	count := m.checkout.Cart.Count()
	word := "tickets"
	if count == 1 {
		word = "ticket"
	}
	total := formatAmount(m.checkout.Cart.Total(), m.currency())
	line := fmt.Sprintf("Total for %d %s: %s", count, word, total)
	if count == 0 {
		return cartBarStyle.Render(line) + "  " + hint("select a seat to get started")
	}
	return cartBarStyle.Render(line) + "  " + hint("press c to checkout")
}

// checkout and login rendering

func (m appModel) checkoutView() string {
	switch m.checkout.State {
	case checkout.StateCollecting:
		return m.collectingView()
	case checkout.StateSubmitting:
		return m.panel("Placing order", fmt.Sprintf("%s Submitting your order…\n\n%s", m.spinner.View(), hint("This can take a moment. The window cannot be closed while submitting.")))
	case checkout.StateSuccess:
		return m.successView()
	case checkout.StateError:
		body := errorStyle.Render("Could not create the order.") + "\n\n" +
			m.checkout.Err.Error() + "\n\n" +
			hint("Your seats and details are kept. Press enter to edit and retry, esc to go back.")
		return m.panel("Order failed", body)
	default:
		return ""
	}
}

func (m appModel) collectingView() string {
	var b strings.Builder
	count := m.checkout.Cart.Count()
	word := "tickets"
	if count == 1 {
		word = "ticket"
	}
	fmt.Fprintf(&b, "You have %d %s for %s.\n\n", count, word, formatAmount(m.checkout.Cart.Total(), m.currency()))

	if m.loggedIn != nil {
		fmt.Fprintf(&b, "Ordering as %s %s (%s).\n\n", m.loggedIn.FirstName, m.loggedIn.LastName, m.loggedIn.Email)
	} else {
		b.WriteString(hint("Continue as guest, or log in from the seat map first.") + "\n\n")
	}

	labels := [inputCount]string{"First name", "Last name", "Email"}
	for i := range m.inputs {
		fmt.Fprintf(&b, "%s\n%s\n\n", rowLabelStyle.Render(labels[i]), m.inputs[i].View())
	}

	if m.checkout.Err != nil {
		b.WriteString(errorStyle.Render(m.checkout.Err.Error()) + "\n")
	}
	return m.panel("Complete your order", strings.TrimRight(b.String(), "\n"))
}

func (m appModel) successView() string {
	order := m.checkout.Order
	if order == nil {
		return m.panel("Order created", "Done.")
	}
	body := fmt.Sprintf("Order %s created.\n\nTickets: %d\nTotal: %s\n\n%s",
		order.OrderId,
		len(order.Tickets),
		formatAmount(order.TotalAmount, m.currency()),
		hint("A confirmation is on its way to "+order.User.Email+"."))
	return m.panel("Order created", body)
}

func (m appModel) loginView() string {
	var b strings.Builder
	b.WriteString(hint("Log in to prefill your details.") + "\n\n")
	labels := [loginInputCount]string{"Email", "Password"}
	for i := range m.loginInputs {
		fmt.Fprintf(&b, "%s\n%s\n\n", rowLabelStyle.Render(labels[i]), m.loginInputs[i].View())
	}
	if m.loginErr != nil {
		message := "Login failed: check your credentials."
		if !service.IsUnauthorized(m.loginErr) {
			message = m.loginErr.Error()
		}
		b.WriteString(errorStyle.Render(message) + "\n")
	}
	return m.panel("Login", strings.TrimRight(b.String(), "\n"))
}

func (m appModel) panel(title string, body string) string {
	content := panelChipStyle.Render(title) + "\n\n" + body
	style := panelStyle
	if m.width > 56 {
		cardWidth := m.width - 8
		if cardWidth > 72 {
			cardWidth = 72
		}
		style = style.Width(cardWidth)
	}
	rendered := style.Render(content)
	if m.width > 0 {
		rendered = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, rendered)
	}
	return rendered
}

// commands

func (m appModel) fetchEventCmd() tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadEventCache(); err == nil && fresh && cached.EventId != "" {
			return eventMsg{event: cached}
		}
		ctx := context.Background()
		event, err := m.client.GetEvent(ctx)
		if err == nil {
			_ = store.SaveEventCache(event)
		}
		return eventMsg{event: event, err: err}
	}
}

func (m appModel) fetchSeatingCmd(eventId string, seq int) tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadTicketsCache(eventId); err == nil && fresh && len(cached.SeatRows) > 0 {
			return seatingMsg{seq: seq, tickets: cached}
		}
		ctx := context.Background()
		tickets, err := m.client.GetEventTickets(ctx, eventId)
		if err == nil && len(tickets.SeatRows) > 0 {
			_ = store.SaveTicketsCache(eventId, tickets)
		}
		return seatingMsg{seq: seq, tickets: tickets, err: err}
	}
}

func (m appModel) loginCmd(seq int, email string, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.Login(ctx, email, password)
		return loginMsg{seq: seq, res: res, err: err}
	}
}

func (m appModel) submitOrderCmd(seq int, req model.OrderRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := m.client.CreateOrder(ctx, req)
		return orderMsg{seq: seq, res: res, err: err}
	}
}

// cart list

type cartItem struct {
	seat     seating.PricedSeat
	currency string
}

func (c cartItem) Title() string {
	return fmt.Sprintf("Row %d • Seat %d", c.seat.Row, c.seat.Place)
}

func (c cartItem) Description() string {
	return fmt.Sprintf("%s • %s", c.seat.TicketTypeName, formatAmount(c.seat.Price, c.currency))
}

func (c cartItem) FilterValue() string {
	return strings.ToLower(fmt.Sprintf("row %d seat %d %s", c.seat.Row, c.seat.Place, c.seat.TicketTypeName))
}

// list plumbing

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	if !m.cartList.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(&m.cartList, string(msg.Runes))
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if m.cartList.FilterValue() == "" {
			return false
		}
		m.popFilter(&m.cartList)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

// helpers

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func formatAmount(value float64, currency string) string {
	return fmt.Sprintf("%.2f %s", value, currency)
}
