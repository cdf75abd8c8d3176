package luma

import (
	"fmt"
	"testing"
)

// evalLoad interprets an addi/addis/ori sequence targeting a single
// register and returns the value it leaves there, mirroring what a PPC
// would compute.
func evalLoad(t *testing.T, ws []uint32) uint32 {
	t.Helper()
	var v uint32
	for _, w := range ws {
		imm := w & 0xFFFF
		switch w >> 26 {
		case 14: // addi (rA must be 0 here, i.e. the literal zero)
			if w&0x001F0000 != 0 {
				t.Fatalf("addi with nonzero base in load sequence: %08X", w)
			}
			v = uint32(int32(int16(imm)))
		case 15: // addis
			if w&0x001F0000 != 0 {
				t.Fatalf("addis with nonzero base in load sequence: %08X", w)
			}
			v = uint32(int32(int16(imm))) << 16
		case 24: // ori
			v |= imm
		default:
			t.Fatalf("unexpected opcode %d in load sequence", w>>26)
		}
	}
	return v
}

// TestLiwLoadsExactValue checks that the emitted sequence loads exactly the
// requested value for edge cases across the 32-bit range.
func TestLiwLoadsExactValue(t *testing.T) {
	cases := []uint32{
		0, 1, 2, 0x7FFF, 0x8000, 0x8001, 0xFFFF,
		0x10000, 0x12345678, 0x7FFFFFFF, 0x80000000,
		0xABCD0000, 0xFFFF7FFF, 0xFFFF8000, 0xFFFFF000,
		0xFFFFFFFF,
	}
	for _, v := range cases {
		t.Run(fmt.Sprintf("%#x", v), func(t *testing.T) {
			ws := emitWords(func(e *Emitter) { e.Liw(R9, v) })
			if len(ws) > 2 {
				t.Errorf("liw expanded to %d instructions", len(ws))
			}
			if got := evalLoad(t, ws); got != v {
				t.Errorf("loads %#x instead of %#x", got, v)
			}
		})
	}
}

// TestLiwShortForms checks that the single-instruction cases stay single.
func TestLiwShortForms(t *testing.T) {
	single := []uint32{0, 0x7FFF, 0xFFFF8000, 0xFFFFF000, 0xFFFFFFFF, 0x12340000}
	for _, v := range single {
		if n := len(emitWords(func(e *Emitter) { e.Liw(R1, v) })); n != 1 {
			t.Errorf("liw %#x: wanted 1 instruction, have %d", v, n)
		}
	}
	double := []uint32{0x8000, 0x12345678, 0xFFFF7FFF}
	for _, v := range double {
		if n := len(emitWords(func(e *Emitter) { e.Liw(R1, v) })); n != 2 {
			t.Errorf("liw %#x: wanted 2 instructions, have %d", v, n)
		}
	}
}

// TestLiu checks the unsigned load: no sign extension of bit 15.
func TestLiu(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF} {
		t.Run(fmt.Sprintf("%#x", v), func(t *testing.T) {
			ws := emitWords(func(e *Emitter) { e.Liu(R9, v) })
			if got := evalLoad(t, ws); got != uint32(v) {
				t.Errorf("loads %#x instead of %#x", got, v)
			}
			if v < 0x8000 && len(ws) != 1 {
				t.Error("small liu should be a single li")
			}
		})
	}
}

// TestLiSignExtends pins the signed load.
func TestLiSignExtends(t *testing.T) {
	ws := emitWords(func(e *Emitter) { e.Li(R3, -1) })
	if ws[0] != 0x3860FFFF {
		t.Errorf("wanted 3860FFFF, have %08X", ws[0])
	}
}

// TestPseudoExpansions pins the remaining pseudo-ops to their primitive
// forms.
func TestPseudoExpansions(t *testing.T) {
	// mr is or d,s,s
	mr := emitWords(func(e *Emitter) { e.Mr(R4, R5, false) })
	or := emitWords(func(e *Emitter) { e.Or(R4, R5, R5, false) })
	if mr[0] != or[0] {
		t.Errorf("mr %08X != or d,s,s %08X", mr[0], or[0])
	}
	// not is nor d,s,s
	not := emitWords(func(e *Emitter) { e.Not(R6, R7, false) })
	nor := emitWords(func(e *Emitter) { e.Nor(R6, R7, R7, false) })
	if not[0] != nor[0] {
		t.Errorf("not %08X != nor d,s,s %08X", not[0], nor[0])
	}
	// setz is cntlzw then srwi 5
	setz := emitWords(func(e *Emitter) { e.Setz(R0, R20) })
	want := emitWords(func(e *Emitter) {
		e.Cntlzw(R0, R20, false)
		e.Srwi(R0, R0, 5, false)
	})
	wordsEqual(t, want, setz)
	// crset/crclr/crmove/crnot
	if w := emitWords(func(e *Emitter) { e.Crset(24) })[0]; w != emitWords(func(e *Emitter) { e.Creqv(24, 24, 24) })[0] {
		t.Errorf("crset expansion wrong: %08X", w)
	}
	if w := emitWords(func(e *Emitter) { e.Crclr(25) })[0]; w != emitWords(func(e *Emitter) { e.Crxor(25, 25, 25) })[0] {
		t.Errorf("crclr expansion wrong: %08X", w)
	}
}

// TestLoop pins the loop scaffold and its backward branch.
func TestLoop(t *testing.T) {
	ws := emitWords(func(e *Emitter) {
		e.Loop(R3, 2, e.Nop)
	})
	want := []uint32{
		0x38600002, // li r3,2
		0x60000000, // nop
		0x3463FFFF, // addic. r3,r3,-1
		0x4082FFF8, // bne back to the nop
	}
	wordsEqual(t, want, ws)
}

// TestLoopLargeCount checks that a counter needing the two-instruction liw
// still anchors the back branch at the body.
func TestLoopLargeCount(t *testing.T) {
	ws := emitWords(func(e *Emitter) {
		e.Loop(R4, 0x12345678, e.Nop)
	})
	if len(ws) != 5 {
		t.Fatalf("wanted 5 words, have %d", len(ws))
	}
	if ws[4] != 0x4082FFF8 {
		t.Errorf("back branch should target the body, have %08X", ws[4])
	}
}

// TestLoopZero emits nothing for a zero iteration count.
func TestLoopZero(t *testing.T) {
	if ws := emitWords(func(e *Emitter) { e.Loop(R3, 0, e.Nop) }); len(ws) != 0 {
		t.Errorf("zero-iteration loop emitted %d words", len(ws))
	}
}
