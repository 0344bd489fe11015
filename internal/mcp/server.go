// Package mcp implements a stdio JSON-RPC server exposing the tool
// registry to MCP clients.
package mcp

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/runestone-dev/runestone/internal/tools"
	"github.com/runestone-dev/runestone/pkg/protocol"
)

type Server struct {
	registry *tools.Registry
	handler  *Handler
}

func NewServer(registry *tools.Registry) *Server {
	return &Server{
		registry: registry,
		handler:  NewHandler(registry),
	}
}

func (s *Server) HandleRequest(req *Request) *Response {
	return s.handler.Handle(req)
}

// ProcessStream reads newline-delimited JSON-RPC requests from reader and
// writes one response per request to writer. It returns when the reader
// is exhausted.
func (s *Server) ProcessStream(reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	encoder := json.NewEncoder(writer)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp := &Response{
				JSONRPC: "2.0",
				Error: &protocol.JSONRPCError{
					Code:    protocol.CodeParseError,
					Message: "Parse error",
				},
			}
			if err := encoder.Encode(resp); err != nil {
				return err
			}
			continue
		}

		resp := s.HandleRequest(&req)
		if err := encoder.Encode(resp); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (s *Server) Registry() *tools.Registry {
	return s.registry
}
