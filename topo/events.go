package topo

// Event names the seven notifications a mutation may emit (spec.md §6). The
// dispatcher delivers them synchronously and in the order a mutation lists
// them in spec.md §4, before the mutation returns (spec.md §5).
type Event string

const (
	EventAddNode    Event = "addnode"
	EventAddEdge    Event = "addedge"
	EventModEdge    Event = "modedge"
	EventSplitEdge  Event = "splitedge"
	EventRemoveEdge Event = "removeedge"
	EventAddFace    Event = "addface"
	EventRemoveFace Event = "removeface"
)

// Payload carries the IDs affected by one event. Zero-valued fields mean
// "not applicable to this event".
type Payload struct {
	Node NodeID
	Edge EdgeID
	Face FaceID
}

// Handler reacts to an Event. A Handler that returns an error aborts the
// mutation that triggered it, propagating the error to the caller (spec.md
// §5: "a handler that raises propagates out of the mutation").
type Handler func(Event, Payload) error

type eventDispatcher struct {
	handlers map[Event][]Handler
}

func newEventDispatcher() *eventDispatcher {
	return &eventDispatcher{handlers: make(map[Event][]Handler)}
}

// On subscribes h to ev; handlers run in registration order.
func (d *eventDispatcher) On(ev Event, h Handler) {
	d.handlers[ev] = append(d.handlers[ev], h)
}

// trigger invokes every handler subscribed to ev in order, stopping and
// returning the first error encountered.
func (d *eventDispatcher) trigger(ev Event, p Payload) error {
	for _, h := range d.handlers[ev] {
		if err := h(ev, p); err != nil {
			return err
		}
	}
	return nil
}

// On subscribes h to fire whenever the Topology emits ev.
func (t *Topology) On(ev Event, h Handler) {
	t.dispatcher.On(ev, h)
}
