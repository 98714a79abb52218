package touchmap

// Command is a named command with string arguments, as delivered by the
// host's event interpreter.
type Command struct {
	Name string
	Args []string
}

// CommandResult tells the dispatcher whether to keep routing a command.
type CommandResult uint8

const (
	PassThrough CommandResult = iota // not recognized; offer it to the next handler
	Handled                          // recognized and acted on; stop routing
)

// CommandHandler receives commands from a CommandDispatcher.
type CommandHandler interface {
	HandleCommand(cmd Command) CommandResult
}

// CommandHandlerFunc adapts a function to a CommandHandler.
type CommandHandlerFunc func(cmd Command) CommandResult

// HandleCommand calls f(cmd).
func (f CommandHandlerFunc) HandleCommand(cmd Command) CommandResult {
	return f(cmd)
}

type commandEntry struct {
	id uint32
	h  CommandHandler
}

// CommandDispatcher routes commands through an ordered list of handlers.
// Handlers registered earlier see every command first, so a later handler
// can never swallow a command an earlier one recognizes.
type CommandDispatcher struct {
	handlers []commandEntry
	nextID   uint32
}

// NewCommandDispatcher creates an empty dispatcher.
func NewCommandDispatcher() *CommandDispatcher {
	return &CommandDispatcher{}
}

// CommandHandle allows removing a registered command handler.
type CommandHandle struct {
	id uint32
	d  *CommandDispatcher
}

// Remove unregisters the handler. Removing twice is a no-op.
func (h CommandHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = commandEntry{}
			h.d.handlers = s[:len(s)-1]
			return
		}
	}
}

// Register appends h to the end of the handler chain.
func (d *CommandDispatcher) Register(h CommandHandler) CommandHandle {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, commandEntry{id: id, h: h})
	return CommandHandle{id: id, d: d}
}

// Len returns the number of registered handlers.
func (d *CommandDispatcher) Len() int {
	return len(d.handlers)
}

// Dispatch offers the command to each handler in registration order until
// one returns Handled. It reports whether any handler handled it.
func (d *CommandDispatcher) Dispatch(name string, args ...string) bool {
	cmd := Command{Name: name, Args: args}
	for _, e := range d.handlers {
		if e.h.HandleCommand(cmd) == Handled {
			return true
		}
	}
	return false
}
