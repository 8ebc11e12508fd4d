package models

// ChatMode selects how the backend answers a chat submission.
type ChatMode string

const (
	// ModeStandard is plain LLM chat over the uploaded context.
	ModeStandard ChatMode = "standard"
	// ModeSearch answers by searching the document index.
	ModeSearch ChatMode = "search"
	// ModeAgentic runs the multi-step planning pipeline. Only selectable
	// when the backend advertises agentic capability.
	ModeAgentic ChatMode = "agentic"
)

// Valid reports whether m is one of the defined chat modes.
func (m ChatMode) Valid() bool {
	switch m {
	case ModeStandard, ModeSearch, ModeAgentic:
		return true
	}
	return false
}
