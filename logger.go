// Ink-Projector - map projections for vector paths
// Copyright (C) 2026  Tau Laboratory
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package projector

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// FuncLogger returns a logger which renders every record of level Info
// or above as a single line "message key=value ..." and passes it to fn.
// Calls to fn are serialised, so fn need not be safe for concurrent use.
func FuncLogger(fn func(msg string)) *slog.Logger {
	if fn == nil {
		return newNopLogger()
	}
	return slog.New(&funcHandler{out: &funcSink{fn: fn}})
}

type funcSink struct {
	mu sync.Mutex
	fn func(string)
}

type funcHandler struct {
	out    *funcSink
	attrs  []slog.Attr
	prefix string // group prefix, including the trailing dot
}

func (h *funcHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *funcHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})

	h.out.mu.Lock()
	defer h.out.mu.Unlock()
	h.out.fn(b.String())
	return nil
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, sub := range a.Value.Group() {
			writeAttr(b, prefix, sub)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

func (h *funcHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := *h
	res.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	res.attrs = append(res.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		res.attrs = append(res.attrs, a)
	}
	return &res
}

func (h *funcHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	res := *h
	res.prefix += name + "."
	return &res
}
