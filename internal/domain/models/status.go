package models

// APIStatus is the coarse health of the backend.
type APIStatus string

const (
	APIStatusHealthy  APIStatus = "healthy"
	APIStatusDegraded APIStatus = "degraded"
	APIStatusError    APIStatus = "error"
)

// Capability names a backend feature the client may rely on. Feature
// availability is strictly gated by capability membership; the client never
// assumes a capability the backend has not advertised.
type Capability string

const (
	// CapabilityLLMChat is standard LLM-backed chat.
	CapabilityLLMChat Capability = "llm_chat"
	// CapabilityRetrievalPipeline is the document index behind search mode.
	CapabilityRetrievalPipeline Capability = "retrieval_pipeline"
	// CapabilityAgenticReasoning is the multi-step planning pipeline.
	CapabilityAgenticReasoning Capability = "agentic_reasoning"
)

// SystemStatus is the backend status fetched once at session start.
type SystemStatus struct {
	APIStatus    APIStatus           `json:"api_status"`
	Capabilities map[Capability]bool `json:"capabilities"`
}

// Has reports whether the backend advertised the given capability.
func (s SystemStatus) Has(c Capability) bool {
	return s.Capabilities[c]
}
