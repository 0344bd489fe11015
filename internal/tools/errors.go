package tools

import (
	"fmt"

	"github.com/runestone-dev/runestone/pkg/protocol"
)

// ToolError carries a JSON-RPC error code alongside the message so the
// MCP handler can map failures onto the wire without string matching.
type ToolError struct {
	Code    int
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

func NewToolNotFoundError(name string) *ToolError {
	return &ToolError{
		Code:    protocol.CodeMethodNotFound,
		Message: fmt.Sprintf("Tool not found: %s", name),
	}
}

func NewToolExecutionError(name string, err error) *ToolError {
	return &ToolError{
		Code:    protocol.CodeInternalError,
		Message: fmt.Sprintf("Error executing tool %s: %v", name, err),
	}
}
