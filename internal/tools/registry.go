package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Puiching-Memory/LMT4SwanLab/internal/openapi"
)

// Arguments is the decoded argument record shared by every tool. Each tool's
// input schema declares the subset of fields it accepts.
type Arguments struct {
	Username string   `json:"username"`
	Project  string   `json:"project"`
	ExpId    string   `json:"exp_id"`
	Keys     []string `json:"keys"`
	Detail   *bool    `json:"detail"`
}

// Result is what a tool invocation hands back to the host: a JSON-serializable
// value plus human-readable lines rendering the same information.
type Result struct {
	Value interface{}
	Lines []string
}

// Definition binds one tool name to its input schema and its
// validate/call/format triple. Dispatch is a plain table lookup.
type Definition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	ReadOnly    bool
	Validate    func(args Arguments) error
	Call        func(ctx context.Context, api openapi.Api, args Arguments) (interface{}, error)
	Format      func(value interface{}) []string
}

// UnknownToolError reports a name the registry does not serve. It is an
// infrastructure failure, distinct from a served tool returning an error.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

type Registry struct {
	api         openapi.Api
	definitions []Definition
	byName      map[string]*Definition
}

func NewRegistry(api openapi.Api) *Registry {
	r := &Registry{
		api:         api,
		definitions: definitions(),
	}
	r.byName = make(map[string]*Definition, len(r.definitions))
	for i := range r.definitions {
		r.byName[r.definitions[i].Name] = &r.definitions[i]
	}
	return r
}

// Definitions returns the served tools in registration order.
func (r *Registry) Definitions() []Definition {
	return append([]Definition(nil), r.definitions...)
}

func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// Call decodes and validates the raw arguments, then runs the named tool.
// Validation failures surface before any network call is made.
func (r *Registry) Call(ctx context.Context, name string, rawArgs json.RawMessage) (*Result, error) {
	def, ok := r.byName[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	var args Arguments
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return nil, openapi.NewValidationError("malformed tool arguments: %s", err)
		}
	}

	if def.Validate != nil {
		if err := def.Validate(args); err != nil {
			return nil, err
		}
	}

	value, err := def.Call(ctx, r.api, args)
	if err != nil {
		return nil, err
	}

	return &Result{Value: value, Lines: def.Format(value)}, nil
}
