package configurator

// ModalState is the upsell modal's two-state machine. The modal opens on the
// edge-triggered category-completion signal and closes on every other event;
// in particular a step change always force-closes it.
type ModalState string

const (
	ModalClosed ModalState = "closed"
	ModalOpen   ModalState = "open"
)

// ModalEvent drives the modal machine.
type ModalEvent int

const (
	// EventCompleted is the edge-triggered signal from CategoryState.Observe.
	EventCompleted ModalEvent = iota
	// EventStepChanged fires on any step transition.
	EventStepChanged
	// EventAddExtra is the user choosing to add an extra from the modal.
	EventAddExtra
	// EventAdvance is the user choosing to move to the next category.
	EventAdvance
	// EventDismiss is the user closing the modal without choosing.
	EventDismiss
)

// Transition is the complete transition function.
func Transition(state ModalState, event ModalEvent) ModalState {
	if event == EventCompleted {
		return ModalOpen
	}
	return ModalClosed
}
