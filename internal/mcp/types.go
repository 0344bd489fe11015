package mcp

import "github.com/runestone-dev/runestone/pkg/protocol"

type Request = protocol.JSONRPCRequest
type Response = protocol.JSONRPCResponse
type Tool = protocol.Tool

// ProtocolVersion is the MCP protocol revision this server speaks.
const ProtocolVersion = "2024-11-05"

// ServerName identifies this server in initialize responses.
const ServerName = "Runestone MCP Server"

type ClientInfo struct {
	Name    string
	Version string
}
