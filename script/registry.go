package script

import (
	"strings"

	"github.com/orayew2002/excel-adapter/workbook"
)

// HandlerFunc executes one script command against the workbook.
type HandlerFunc func(wb *workbook.Workbook, cmd Command) error

// Registry holds op name → handler mappings.
type Registry struct {
	handlers []entry
}

type entry struct {
	op      string
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for the given op (e.g. "merge").
// Handlers are checked in registration order; the first match wins.
func (r *Registry) Register(op string, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{op: op, handler: handler})
}

// Process looks up the handler for cmd.Op, ignoring case, and calls it.
// Returns true if a handler was executed.
func (r *Registry) Process(wb *workbook.Workbook, cmd Command) (bool, error) {
	op := strings.TrimSpace(cmd.Op)
	for _, e := range r.handlers {
		if strings.EqualFold(op, e.op) {
			if err := e.handler(wb, cmd); err != nil {
				return false, err
			}

			return true, nil
		}
	}

	return false, nil
}

// Ops returns the registered op names in registration order.
func (r *Registry) Ops() []string {
	ops := make([]string, len(r.handlers))
	for i, e := range r.handlers {
		ops[i] = e.op
	}
	return ops
}
