package store

// Kind names the mutation that produced an Event.
type Kind int

const (
	KindNone Kind = iota
	KindAdded
	KindRemoved
	KindToggled
	KindEdited
	KindDueDateEdited
	KindMarkedAll
	KindClearedCompleted
	KindMoved
)

var kindNames = [...]string{
	KindNone:             "none",
	KindAdded:            "add",
	KindRemoved:          "remove",
	KindToggled:          "toggle",
	KindEdited:           "edit",
	KindDueDateEdited:    "due",
	KindMarkedAll:        "mark-all",
	KindClearedCompleted: "clear-completed",
	KindMoved:            "move",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

var notices = map[Kind]string{
	KindAdded:            "Todo added!",
	KindRemoved:          "Todo deleted!",
	KindToggled:          "Todo updated!",
	KindEdited:           "Todo edited!",
	KindDueDateEdited:    "Due date updated!",
	KindMarkedAll:        "All marked as completed!",
	KindClearedCompleted: "Completed todos deleted!",
	KindMoved:            "Todo moved!",
}

// Event describes one applied mutation. ID is zero for bulk operations.
type Event struct {
	Kind Kind
	ID   int64
}

// Changed is false for rejected and no-op calls.
func (e Event) Changed() bool { return e.Kind != KindNone }

// Notice is the banner text shown for the event.
func (e Event) Notice() string { return notices[e.Kind] }
