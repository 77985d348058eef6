package host

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.openly.dev/pointy"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/config"
	"github.com/Puiching-Memory/LMT4SwanLab/internal/tools"
	"github.com/Puiching-Memory/LMT4SwanLab/pkg/app"
)

const (
	serverName    = "LMT4SwanLab"
	serverVersion = "1.0.0"
)

// Server speaks JSON-RPC 2.0 over newline-delimited stdio and exposes the
// tool registry to the connected agent host.
type Server struct {
	registry    *tools.Registry
	callTimeout time.Duration
	initialized bool
}

func NewServer(cfg *config.Config, registry *tools.Registry) *Server {
	return &Server{
		registry:    registry,
		callTimeout: cfg.CallTimeout,
	}
}

// Serve runs the request loop on stdin/stdout until stdin closes.
func (s *Server) Serve() error {
	return s.Run(os.Stdin, os.Stdout)
}

// Run processes requests from input and writes one response per line to
// output until input reaches EOF. Notifications receive no response.
func (s *Server) Run(input io.Reader, output io.Writer) error {
	scanner := bufio.NewScanner(input)
	// Tool results carry whole experiment configs, so lines can be large.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	encoder := json.NewEncoder(output)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if writeErr := s.writeError(encoder, json.RawMessage("null"), codeParseError, "parse error: "+err.Error()); writeErr != nil {
				return writeErr
			}
			continue
		}

		if req.JsonRpc != "2.0" {
			if !req.isNotification() {
				if writeErr := s.writeError(encoder, req.Id, codeInvalidRequest, "unsupported JSON-RPC version"); writeErr != nil {
					return writeErr
				}
			}
			continue
		}

		if req.isNotification() {
			continue
		}

		if err := s.dispatch(encoder, &req); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (s *Server) dispatch(encoder *json.Encoder, req *request) error {
	log.Debugf("handling %s", req.Method)

	switch req.Method {
	case "initialize":
		s.initialized = true
		return s.writeResult(encoder, req.Id, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    serverCapabilities{Tools: &toolCapability{}},
			ServerInfo:      serverInfo{Name: serverName, Version: serverVersion},
		})
	case "ping":
		return s.writeResult(encoder, req.Id, map[string]interface{}{})
	case "tools/list":
		if !s.initialized {
			return s.writeError(encoder, req.Id, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsList(encoder, req)
	case "tools/call":
		if !s.initialized {
			return s.writeError(encoder, req.Id, codeInvalidRequest, "server not initialized (call initialize first)")
		}
		return s.handleToolsCall(encoder, req)
	default:
		return s.writeError(encoder, req.Id, codeMethodNotFound, "unknown method: "+req.Method)
	}
}

func (s *Server) handleToolsList(encoder *json.Encoder, req *request) error {
	definitions := s.registry.Definitions()
	descriptions := make([]toolDescription, 0, len(definitions))
	for _, def := range definitions {
		annotations := &toolAnnotations{DestructiveHint: pointy.Bool(true)}
		if def.ReadOnly {
			annotations = &toolAnnotations{ReadOnlyHint: pointy.Bool(true)}
		}
		descriptions = append(descriptions, toolDescription{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
			Annotations: annotations,
		})
	}
	return s.writeResult(encoder, req.Id, toolsListResult{Tools: descriptions})
}

func (s *Server) handleToolsCall(encoder *json.Encoder, req *request) error {
	if len(req.Params) == 0 {
		return s.writeError(encoder, req.Id, codeInvalidParams, "params required for tools/call")
	}

	var params toolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.writeError(encoder, req.Id, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}

	ctx := context.Background()
	cancel := func() {}
	if s.callTimeout > 0 {
		ctx, cancel = app.BackgroundTimeoutContext(s.callTimeout)
	}
	defer cancel()

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		var unknownErr *tools.UnknownToolError
		if errors.As(err, &unknownErr) {
			return s.writeError(encoder, req.Id, codeInvalidParams, unknownErr.Error())
		}
		// A failing tool is a valid protocol exchange, reported inside the
		// result rather than as a JSON-RPC error.
		log.Warnf("tool %s failed: %s", params.Name, err)
		return s.writeResult(encoder, req.Id, toolsCallResult{
			Content: []contentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
	}

	return s.writeResult(encoder, req.Id, toolsCallResult{
		Content:           []contentBlock{{Type: "text", Text: strings.Join(result.Lines, "\n")}},
		StructuredContent: result.Value,
	})
}

func (s *Server) writeResult(encoder *json.Encoder, id json.RawMessage, result interface{}) error {
	if err := encoder.Encode(response{JsonRpc: "2.0", Id: id, Result: result}); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}

func (s *Server) writeError(encoder *json.Encoder, id json.RawMessage, code int, message string) error {
	if err := encoder.Encode(response{JsonRpc: "2.0", Id: id, Error: &rpcError{Code: code, Message: message}}); err != nil {
		return errors.Wrap(err, "failed to write error response")
	}
	return nil
}
