package logging

import (
	"context"

	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

// discard drops every entry. Tests and optional collaborators use it when no
// sink is configured.
type discard struct{}

func (discard) Debug(context.Context, string, ...interface{}) {}
func (discard) Info(context.Context, string, ...interface{})  {}
func (discard) Warn(context.Context, string, ...interface{})  {}
func (discard) Error(context.Context, string, ...interface{}) {}

func (d discard) With(...interface{}) ports.Logger { return d }

// NewNoOpLogger returns a ports.Logger that drops every entry.
func NewNoOpLogger() ports.Logger {
	return discard{}
}
