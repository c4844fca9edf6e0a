package types

import "encoding/json"

// GenerateRequest represents a component generation request.
// Options use pointers so absent flags default to enabled.
type GenerateRequest struct {
	Blueprint json.RawMessage  `json:"blueprint" binding:"required"`
	Target    string           `json:"target"`
	Options   *GenerateOptions `json:"options,omitempty"`
}

// GenerateOptions carries the generation toggles on the wire.
type GenerateOptions struct {
	WithTypes *bool `json:"with_types,omitempty"`
	WithDocs  *bool `json:"with_docs,omitempty"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type      string           `json:"type"`
	Blueprint json.RawMessage  `json:"blueprint,omitempty"`
	Target    string           `json:"target,omitempty"`
	Targets   []string         `json:"targets,omitempty"`
	Options   *GenerateOptions `json:"options,omitempty"`
}
