package touchmap

// Command names recognized by TouchGate.
const (
	CommandEnableTouchToMove  = "enableTtm"
	CommandDisableTouchToMove = "disableTtm"
)

// TouchGate switches the host's click-to-move navigation on and off.
//
// Initialize captures whatever handler is installed in the slot at that
// moment. Enable always reinstalls that captured handler, even after any
// number of Disable calls.
type TouchGate struct {
	slot        NavigationSlot
	original    NavigationHandler
	initialized bool
	enabled     bool
}

// NewTouchGate creates a gate over the given navigation slot. The gate does
// nothing until Initialize is called.
func NewTouchGate(slot NavigationSlot) *TouchGate {
	return &TouchGate{slot: slot, enabled: true}
}

// Initialize captures the slot's current handler and, when defaultDisabled
// is true, replaces it with a no-op. The handler is captured only on the
// first call.
func (g *TouchGate) Initialize(defaultDisabled bool) {
	if !g.initialized {
		g.original = g.slot.NavigationHandler()
		g.initialized = true
	}
	if defaultDisabled {
		g.Disable()
	}
}

// Disable installs a no-op navigation handler. It does nothing before
// Initialize.
func (g *TouchGate) Disable() {
	if !g.initialized {
		return
	}
	g.slot.SetNavigationHandler(noopNavigation)
	g.enabled = false
}

// Enable reinstalls the handler captured by Initialize. It does nothing
// before Initialize.
func (g *TouchGate) Enable() {
	if !g.initialized {
		return
	}
	g.slot.SetNavigationHandler(g.original)
	g.enabled = true
}

// Enabled reports whether touch-to-move is currently active.
func (g *TouchGate) Enabled() bool {
	return g.enabled
}

// HandleCommand implements CommandHandler for the enableTtm and disableTtm
// commands. Arguments are ignored. All other commands, and every command
// before Initialize, pass through.
func (g *TouchGate) HandleCommand(cmd Command) CommandResult {
	if !g.initialized {
		return PassThrough
	}
	switch cmd.Name {
	case CommandEnableTouchToMove:
		g.Enable()
		return Handled
	case CommandDisableTouchToMove:
		g.Disable()
		return Handled
	}
	return PassThrough
}

func noopNavigation(PointerSample) {}
