package common

// ToggleState reports which way a toggle went.
type ToggleState string

const (
	ToggleCreated ToggleState = "created"
	ToggleRemoved ToggleState = "removed"
)

type ToggleResult struct {
	State ToggleState `json:"state"`
	// Active is true when the relation exists after the toggle.
	Active bool `json:"active"`
}

func NewToggleResult(created bool) ToggleResult {
	if created {
		return ToggleResult{State: ToggleCreated, Active: true}
	}
	return ToggleResult{State: ToggleRemoved, Active: false}
}
