// Package diag provides zap-backed diagnostic tracers for the fixedring
// queues. Tracers log every successful mutation with the element involved
// and the ring's contents in FIFO order; they are debug tooling and stay
// out of the data path unless installed.
package diag

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"

	"github.com/dpham-dev/go-ringkit/pkg/datastructs/fixedring"
)

var (
	_ fixedring.Tracer[int] = (*RingTracer[int])(nil)
	_ fixedring.RawTracer   = (*RawTracer)(nil)
)

// Formatter renders an element for logging.
type Formatter[T any] func(elem T) string

// RingTracer logs mutations of a typed ring at Debug level.
type RingTracer[T any] struct {
	log    *zap.Logger
	format Formatter[T]
}

// NewRingTracer creates a tracer logging through log. A nil format falls
// back to fmt %v rendering.
func NewRingTracer[T any](log *zap.Logger, format Formatter[T]) *RingTracer[T] {
	if format == nil {
		format = func(elem T) string { return fmt.Sprintf("%v", elem) }
	}
	return &RingTracer[T]{log: log, format: format}
}

// Added logs an element insertion and the resulting contents.
func (t *RingTracer[T]) Added(elem T, contents []T) {
	t.log.Debug("ring elem added",
		zap.String("elem", t.format(elem)),
		zap.Strings("contents", t.render(contents)),
	)
}

// Removed logs an element removal and the remaining contents.
func (t *RingTracer[T]) Removed(elem T, contents []T) {
	t.log.Debug("ring elem removed",
		zap.String("elem", t.format(elem)),
		zap.Strings("contents", t.render(contents)),
	)
}

func (t *RingTracer[T]) render(contents []T) []string {
	if len(contents) == 0 {
		return nil
	}
	out := make([]string, len(contents))
	for i, elem := range contents {
		out[i] = t.format(elem)
	}
	return out
}

// RawTracer logs mutations of a raw ring at Debug level, hex-encoding the
// element bytes.
type RawTracer struct {
	log *zap.Logger
}

// NewRawTracer creates a tracer logging through log.
func NewRawTracer(log *zap.Logger) *RawTracer {
	return &RawTracer{log: log}
}

// Added logs an element insertion and the resulting contents.
func (t *RawTracer) Added(elem []byte, contents [][]byte) {
	t.log.Debug("ring elem added",
		zap.String("elem", hex.EncodeToString(elem)),
		zap.Strings("contents", renderHex(contents)),
	)
}

// Removed logs an element removal and the remaining contents.
func (t *RawTracer) Removed(elem []byte, contents [][]byte) {
	t.log.Debug("ring elem removed",
		zap.String("elem", hex.EncodeToString(elem)),
		zap.Strings("contents", renderHex(contents)),
	)
}

func renderHex(contents [][]byte) []string {
	if len(contents) == 0 {
		return nil
	}
	out := make([]string, len(contents))
	for i, elem := range contents {
		out[i] = hex.EncodeToString(elem)
	}
	return out
}
