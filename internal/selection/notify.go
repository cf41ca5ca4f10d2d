package selection

// Level ranks a notification for display.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// User-visible notification texts.
const (
	MsgInvalidJSON = "Invalid JSON, fix JSON before selecting new plugin"
	MsgCopied      = "Config copied to clipboard"
)

// Notification is a transient, user-visible message.
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications. Delivery is fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify calls f.
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Inbox buffers notifications until the event loop drains them.
type Inbox struct {
	pending []Notification
}

// Notify queues n.
func (b *Inbox) Notify(n Notification) {
	b.pending = append(b.pending, n)
}

// Drain returns the queued notifications in arrival order and empties the inbox.
func (b *Inbox) Drain() []Notification {
	out := b.pending
	b.pending = nil
	return out
}

// Len reports how many notifications are waiting.
func (b *Inbox) Len() int {
	return len(b.pending)
}

type discard struct{}

func (discard) Notify(Notification) {}
