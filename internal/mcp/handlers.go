package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/runestone-dev/runestone/internal/buildinfo"
	"github.com/runestone-dev/runestone/internal/tools"
	"github.com/runestone-dev/runestone/pkg/protocol"
)

// Handler dispatches decoded JSON-RPC requests to the tool registry.
type Handler struct {
	registry    *tools.Registry
	initialized bool
	clientInfo  ClientInfo
}

func NewHandler(registry *tools.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) Handle(req *Request) *Response {
	resp := &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
	}

	switch req.Method {
	case "initialize":
		result, err := h.handleInitialize(req)
		if err != nil {
			resp.Error = &protocol.JSONRPCError{
				Code:    protocol.CodeInternalError,
				Message: err.Error(),
			}
		} else {
			resp.Result = result
		}
	case "ping":
		resp.Result = map[string]any{}
	case "tools/list":
		resp.Result = h.handleListTools()
	case "tools/call":
		result, err := h.handleCallTool(req)
		if err != nil {
			resp.Error = toJSONRPCError(err)
		} else {
			resp.Result = result
		}
	case "notifications/initialized":
		h.initialized = true
		resp.Result = map[string]any{}
	default:
		resp.Error = &protocol.JSONRPCError{
			Code:    protocol.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
	}

	return resp
}

func (h *Handler) handleInitialize(req *Request) (any, error) {
	initReq := struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}{}

	paramsData, err := json.Marshal(req.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}
	if err := json.Unmarshal(paramsData, &initReq); err != nil {
		return nil, fmt.Errorf("failed to parse initialize request: %w", err)
	}

	h.clientInfo.Name = initReq.ClientInfo.Name
	h.clientInfo.Version = initReq.ClientInfo.Version

	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": buildinfo.GetVersion(),
		},
	}, nil
}

func (h *Handler) handleListTools() any {
	toolsList := h.registry.List()
	toolsData := make([]Tool, len(toolsList))

	for i, t := range toolsList {
		var schema map[string]any
		if err := json.Unmarshal(t.Schema(), &schema); err != nil {
			schema = map[string]any{}
		}
		toolsData[i] = Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schema,
		}
	}

	return map[string]any{
		"tools": toolsData,
	}
}

func (h *Handler) handleCallTool(req *Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool execution panicked: %v", r)
		}
	}()

	callReq := struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}{}

	paramsData, err := json.Marshal(req.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}
	if err := json.Unmarshal(paramsData, &callReq); err != nil {
		return nil, fmt.Errorf("failed to parse tool call request: %w", err)
	}
	if callReq.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}

	args := callReq.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	result, err = h.registry.Execute(callReq.Name, args)
	if err != nil {
		return nil, err
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return map[string]any{
		"content": []map[string]any{
			{
				"type": "text",
				"text": string(resultJSON),
			},
		},
	}, nil
}

func toJSONRPCError(err error) *protocol.JSONRPCError {
	if toolErr, ok := err.(*tools.ToolError); ok {
		return &protocol.JSONRPCError{
			Code:    toolErr.Code,
			Message: toolErr.Message,
		}
	}
	return &protocol.JSONRPCError{
		Code:    protocol.CodeInternalError,
		Message: err.Error(),
	}
}
