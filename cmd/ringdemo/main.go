// ringdemo exercises the fixedring queues with byte elements, int elements,
// struct elements with a truncating custom copy, and a raw byte region, each
// walked through fill, overfill, wrap and drain with traced output.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dpham-dev/go-ringkit/pkg/datastructs/fixedring"
	"github.com/dpham-dev/go-ringkit/pkg/diag"
)

const demoCap = 8

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringdemo: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	scenarios := []struct {
		name string
		run  func(*zap.Logger) error
	}{
		{"bytes", demoBytes},
		{"ints", demoInts},
		{"structs", demoStructs},
		{"raw", demoRaw},
	}
	for _, s := range scenarios {
		log.Info("scenario start", zap.String("name", s.name))
		if err := s.run(log.Named(s.name)); err != nil {
			log.Fatal("scenario failed", zap.String("name", s.name), zap.Error(err))
		}
		log.Info("scenario done", zap.String("name", s.name))
	}
}

func logStats[T any](log *zap.Logger, r *fixedring.Ring[T]) {
	log.Info("ring stats",
		zap.Int("len", r.Len()),
		zap.Int("cap", r.Cap()),
		zap.Bool("empty", r.IsEmpty()),
		zap.Bool("full", r.IsFull()),
	)
}

// demoBytes queues single characters.
func demoBytes(log *zap.Logger) error {
	storage := make([]byte, demoCap)
	tracer := diag.NewRingTracer(log, func(b byte) string { return string(b) })
	r, err := fixedring.Attach(storage, fixedring.WithTracer[byte](tracer))
	if err != nil {
		return errors.Wrap(err, "attach byte ring")
	}
	logStats(log, r)

	for i := 0; i < demoCap; i++ {
		if err := r.AddTail(byte('a' + i%26)); err != nil {
			return errors.Wrapf(err, "add #%d", i)
		}
	}
	if err := r.AddTail('x'); !errors.Is(err, fixedring.ErrFull) {
		return errors.Errorf("overfill: got %v, want ErrFull", err)
	}

	var c byte
	if err := r.RemoveHead(&c); err != nil {
		return errors.Wrap(err, "remove head")
	}
	if err := r.AddTail('Z'); err != nil {
		return errors.Wrap(err, "add after wrap")
	}
	logStats(log, r)

	for !r.IsEmpty() {
		if err := r.RemoveHead(&c); err != nil {
			return errors.Wrap(err, "drain")
		}
	}
	if err := r.RemoveHead(&c); !errors.Is(err, fixedring.ErrEmpty) {
		return errors.Errorf("overdrain: got %v, want ErrEmpty", err)
	}
	logStats(log, r)
	return nil
}

// demoInts queues plain integers, the §8-style 1..8 / 90 walk.
func demoInts(log *zap.Logger) error {
	tracer := diag.NewRingTracer[int](log, nil)
	r, err := fixedring.Attach(make([]int, demoCap), fixedring.WithTracer[int](tracer))
	if err != nil {
		return errors.Wrap(err, "attach int ring")
	}
	logStats(log, r)

	for i := 1; i <= demoCap; i++ {
		if err := r.AddTail(i); err != nil {
			return errors.Wrapf(err, "add %d", i)
		}
	}
	if err := r.AddTail(demoCap + 1); !errors.Is(err, fixedring.ErrFull) {
		return errors.Errorf("overfill: got %v, want ErrFull", err)
	}

	var v int
	if err := r.RemoveHead(&v); err != nil {
		return errors.Wrap(err, "remove head")
	}
	if err := r.AddTail(v * 10 * demoCap); err != nil {
		return errors.Wrap(err, "add after wrap")
	}
	logStats(log, r)

	for !r.IsEmpty() {
		if err := r.RemoveHead(&v); err != nil {
			return errors.Wrap(err, "drain")
		}
	}
	logStats(log, r)
	return nil
}

// person has a bounded name field; the custom copy truncates instead of
// carrying arbitrarily long strings into the ring.
type person struct {
	id   int
	name string
}

const maxNameLen = 15

func copyPerson(dst *person, src *person) {
	dst.id = src.id
	if len(src.name) > maxNameLen {
		dst.name = src.name[:maxNameLen]
	} else {
		dst.name = src.name
	}
}

// demoStructs queues struct elements through the truncating copy hook.
func demoStructs(log *zap.Logger) error {
	tracer := diag.NewRingTracer(log, func(p person) string {
		return fmt.Sprintf("{%d, %q}", p.id, p.name)
	})
	r, err := fixedring.Attach(make([]person, demoCap),
		fixedring.WithCopy[person](copyPerson),
		fixedring.WithTracer[person](tracer),
	)
	if err != nil {
		return errors.Wrap(err, "attach struct ring")
	}
	logStats(log, r)

	for i := 0; i < demoCap; i++ {
		p := person{id: 100 + i, name: fmt.Sprintf("name_%d_padding_beyond_limit", i)}
		if err := r.AddTail(p); err != nil {
			return errors.Wrapf(err, "add %d", p.id)
		}
	}
	if err := r.AddTail(person{}); !errors.Is(err, fixedring.ErrFull) {
		return errors.Errorf("overfill: got %v, want ErrFull", err)
	}

	var p person
	if err := r.RemoveHead(&p); err != nil {
		return errors.Wrap(err, "remove head")
	}
	log.Info("removed", zap.Int("id", p.id), zap.String("name", p.name))

	for !r.IsEmpty() {
		if err := r.RemoveHead(nil); err != nil {
			return errors.Wrap(err, "drain")
		}
	}
	logStats(log, r)
	return nil
}

// demoRaw queues little-endian uint32 elements in an opaque byte region and
// hex-dumps the backing storage, zero-filled slots included.
func demoRaw(log *zap.Logger) error {
	const elemSize = 4
	storage := make([]byte, demoCap*elemSize)
	r, err := fixedring.NewRaw(storage, demoCap, elemSize,
		fixedring.WithRawTracer(diag.NewRawTracer(log)),
	)
	if err != nil {
		return errors.Wrap(err, "new raw ring")
	}

	elem := make([]byte, elemSize)
	for i := uint32(1); i <= demoCap; i++ {
		binary.LittleEndian.PutUint32(elem, i)
		if err := r.Add(elem); err != nil {
			return errors.Wrapf(err, "add %d", i)
		}
	}
	if err := r.Add(elem); !errors.Is(err, fixedring.ErrFull) {
		return errors.Errorf("overfill: got %v, want ErrFull", err)
	}

	if err := r.Remove(elem); err != nil {
		return errors.Wrap(err, "remove head")
	}
	binary.LittleEndian.PutUint32(elem, 90)
	if err := r.Add(elem); err != nil {
		return errors.Wrap(err, "add after wrap")
	}
	log.Info("backing storage", zap.String("hexdump", "\n"+hex.Dump(storage)))

	for !r.Empty() {
		if err := r.Remove(nil); err != nil {
			return errors.Wrap(err, "drain")
		}
	}
	// Every slot was zero-filled on removal.
	log.Info("backing storage after drain", zap.String("hexdump", "\n"+hex.Dump(storage)))
	return nil
}
