package luma

import (
	"encoding/binary"
	"math"
	"os"
	"unsafe"

	"golang.org/x/xerrors"
)

// hostOrder is the native byte order of the host CPU. Emitted words land in
// the buffer in this order.
var hostOrder = func() binary.ByteOrder {
	var probe [2]byte
	*(*uint16)(unsafe.Pointer(&probe[0])) = 0x0102
	if probe[0] == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()

// DefaultBufferSize is the buffer size New allocates when asked for the
// default, and the default grow step for auto-growing emitters.
const DefaultBufferSize = 64 * 1024

// An Emitter assembles PowerPC machine code into a byte buffer.
//
// The zero value is not usable; construct with New, or with New(mode, 0)
// followed by SetBuffer to assemble into caller-owned memory.
type Emitter struct {
	buf      []byte
	off      int
	mode     GrowMode
	growStep int
}

// New returns an emitter with bufferSize bytes of code buffer. A bufferSize
// of 0 skips allocation; the caller must provide memory with SetBuffer
// before emitting. Panics if bufferSize is not word-aligned.
func New(mode GrowMode, bufferSize int) *Emitter {
	e := &Emitter{mode: mode, growStep: DefaultBufferSize}
	if bufferSize == 0 {
		return e
	}
	if bufferSize&3 != 0 {
		panicf("buffer size %#x is not word-aligned", bufferSize)
	}
	e.buf = make([]byte, bufferSize)
	return e
}

// SetBuffer directs the emitter to assemble into p, which stays owned by the
// caller. The cursor resets to the start of p. Any code already emitted is
// abandoned, so this should only be used before emitting. Panics if len(p)
// is not word-aligned.
func (e *Emitter) SetBuffer(p []byte) {
	if len(p)&3 != 0 {
		panicf("buffer size %#x is not word-aligned", len(p))
	}
	e.buf = p
	e.off = 0
}

// Buffer returns the whole reserved buffer, including bytes not yet emitted
// to. The slice is invalidated by the next grow of an AutoGrow emitter.
func (e *Emitter) Buffer() []byte { return e.buf }

// Code returns the emitted bytes. The slice is invalidated by the next grow
// of an AutoGrow emitter.
func (e *Emitter) Code() []byte { return e.buf[:e.off] }

// Words returns the emitted code as instruction words, decoded back through
// the host byte order. Panics if the emitted length is not a multiple of 4,
// which only happens after unaligned data directives with no realigning
// Align.
func (e *Emitter) Words() []uint32 {
	if e.off&3 != 0 {
		panicf("emitted length %#x is not word-aligned", e.off)
	}
	ws := make([]uint32, e.off/4)
	for i := range ws {
		ws[i] = hostOrder.Uint32(e.buf[i*4:])
	}
	return ws
}

// Len returns the number of bytes emitted so far.
func (e *Emitter) Len() int { return e.off }

// Cursor returns the byte offset at which the next emission will land, equal
// to Len. It is the value to capture before a loop body when assembling a
// backward branch.
func (e *Emitter) Cursor() int { return e.off }

// SetGrowStep sets how many bytes an AutoGrow emitter adds to the buffer
// when it overflows. Panics if step is not word-aligned.
func (e *Emitter) SetGrowStep(step int) {
	if step&3 != 0 {
		panicf("grow step %#x is not word-aligned", step)
	}
	e.growStep = step
}

// ensure makes room for n more bytes, growing the buffer in AutoGrow mode
// and panicking on overflow in FixedSize mode.
func (e *Emitter) ensure(n int) {
	if e.off+n <= len(e.buf) {
		return
	}
	if e.mode != AutoGrow {
		panicf("buffer overflow: %d bytes used of %d reserved, %d more needed", e.off, len(e.buf), n)
	}
	newSize := len(e.buf) + e.growStep
	for e.off+n > newSize {
		newSize += e.growStep
	}
	logv("code buffer exceeded", len(e.buf), "reserved bytes; growing to", newSize)
	grown := make([]byte, newSize)
	copy(grown, e.buf[:e.off])
	e.buf = grown
}

func (e *Emitter) write8(v uint8) {
	e.ensure(1)
	e.buf[e.off] = v
	e.off++
}

func (e *Emitter) write16(v uint16) {
	e.ensure(2)
	hostOrder.PutUint16(e.buf[e.off:], v)
	e.off += 2
}

func (e *Emitter) write32(v uint32) {
	e.ensure(4)
	hostOrder.PutUint32(e.buf[e.off:], v)
	e.off += 4
}

func (e *Emitter) write64(v uint64) {
	e.ensure(8)
	hostOrder.PutUint64(e.buf[e.off:], v)
	e.off += 8
}

// EmitWord appends one raw instruction word. It is the primitive every
// mnemonic bottoms out in, exported so wrapper types can add their own
// mnemonics.
func (e *Emitter) EmitWord(w uint32) { e.write32(w) }

// Db appends data bytes.
func (e *Emitter) Db(vals ...uint8) {
	for _, v := range vals {
		e.write8(v)
	}
}

// Dh appends data halfwords.
func (e *Emitter) Dh(vals ...uint16) {
	for _, v := range vals {
		e.write16(v)
	}
}

// Dw appends data words.
func (e *Emitter) Dw(vals ...uint32) {
	for _, v := range vals {
		e.write32(v)
	}
}

// Dd appends data doublewords.
func (e *Emitter) Dd(vals ...uint64) {
	for _, v := range vals {
		e.write64(v)
	}
}

// Df32 appends single-precision floats.
func (e *Emitter) Df32(vals ...float32) {
	for _, v := range vals {
		e.write32(math.Float32bits(v))
	}
}

// Df64 appends double-precision floats.
func (e *Emitter) Df64(vals ...float64) {
	for _, v := range vals {
		e.write64(math.Float64bits(v))
	}
}

// Ds appends the bytes of str followed by a NUL terminator.
func (e *Emitter) Ds(str string) {
	for i := 0; i < len(str); i++ {
		e.write8(str[i])
	}
	e.write8(0)
}

// Align pads with zero bytes until the cursor is a multiple of n. Aligning
// to 1 is a no-op; n < 1 is fatal.
func (e *Emitter) Align(n int) {
	if n == 1 {
		return
	}
	if n < 1 {
		panicf("cannot align to a %d byte boundary", n)
	}
	for pad := (n - e.off%n) % n; pad > 0; pad-- {
		e.write8(0)
	}
}

// Repeat invokes f n times, passing the iteration index. The emitted code is
// exactly n copies of whatever f emits.
func (e *Emitter) Repeat(n int, f func(i int)) {
	for i := 0; i < n; i++ {
		f(i)
	}
}

// Ud appends the all-zero word, an illegal opcode useful as a trap.
func (e *Emitter) Ud() { e.write32(0) }

// Dump writes the emitted bytes to the file at path.
func (e *Emitter) Dump(path string) error {
	if err := os.WriteFile(path, e.buf[:e.off], 0o644); err != nil {
		return xerrors.Errorf("dumping %d emitted bytes: %w", e.off, err)
	}
	logv("dumped", e.off, "bytes to", path)
	return nil
}

// rc converts a record-form flag to the Rc bit.
func rc(set bool) uint32 {
	if set {
		return 1
	}
	return 0
}
