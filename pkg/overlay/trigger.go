package overlay

// Trigger identifies what caused an overlay transition.
type Trigger uint8

const (
	TriggerToggle         Trigger = iota + 1 // The overlay's own toggle control
	TriggerEscape                            // Escape key
	TriggerOutsidePointer                    // Pointer-down outside the bound subtrees
	TriggerRouteChange                       // Navigation to another path
	TriggerExplicit                          // Programmatic, e.g. a menu item was chosen
	TriggerBackdrop                          // Click on the overlay's backdrop
)

// String returns the trigger name used in logs and metric labels.
func (t Trigger) String() string {
	switch t {
	case TriggerToggle:
		return "toggle"
	case TriggerEscape:
		return "escape"
	case TriggerOutsidePointer:
		return "outside-pointer"
	case TriggerRouteChange:
		return "route-change"
	case TriggerExplicit:
		return "explicit"
	case TriggerBackdrop:
		return "backdrop"
	default:
		return "unknown"
	}
}
