package tui

// StepBackMsg is emitted by a step when the user asks to return to the
// previous step.
type StepBackMsg struct{}

// StepCompleteMsg is emitted by a step when it finishes.
type StepCompleteMsg struct{}

// WizardResetMsg asks the wizard to discard everything and start a new
// session at the first step.
type WizardResetMsg struct{}

// FlashExpiredMsg fires when an error flash reaches the end of its display
// time.
type FlashExpiredMsg struct {
	ID int64
}
