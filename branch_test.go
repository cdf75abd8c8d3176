package luma

import (
	"fmt"
	"testing"
)

// TestCondBranchWords checks the base encoding of every conditional branch
// form before resolution.
func TestCondBranchWords(t *testing.T) {
	cases := []struct {
		name string
		f    func(e *Emitter) Label
		want uint32
	}{
		{"ble", (*Emitter).Ble, 0x40810000},
		{"bgt", (*Emitter).Bgt, 0x41810000},
		{"blt", (*Emitter).Blt, 0x41800000},
		{"bge", (*Emitter).Bge, 0x40800000},
		{"bne", (*Emitter).Bne, 0x40820000},
		{"beq", (*Emitter).Beq, 0x41820000},
		{"bso", (*Emitter).Bso, 0x41830000},
		{"bns", (*Emitter).Bns, 0x40830000},
		{"blel", (*Emitter).Blel, 0x40810001},
		{"bgtl", (*Emitter).Bgtl, 0x41810001},
		{"bltl", (*Emitter).Bltl, 0x41800001},
		{"bgel", (*Emitter).Bgel, 0x40800001},
		{"bnel", (*Emitter).Bnel, 0x40820001},
		{"beql", (*Emitter).Beql, 0x41820001},
		{"bsol", (*Emitter).Bsol, 0x41830001},
		{"bnsl", (*Emitter).Bnsl, 0x40830001},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := New(FixedSize, 64)
			l := c.f(e)
			if l.Kind() != Branch14 {
				t.Error("conditional branch label is not Branch14")
			}
			if w := e.Words()[0]; w != c.want {
				t.Errorf("wrong word: wanted %08X, have %08X", c.want, w)
			}
		})
	}
}

// TestUncondBranchWords checks b and bl placeholders and label kinds.
func TestUncondBranchWords(t *testing.T) {
	e := New(FixedSize, 64)
	lb := e.B()
	lbl := e.Bl()
	if lb.Kind() != Branch24 || lbl.Kind() != Branch24 {
		t.Error("unconditional branch label is not Branch24")
	}
	ws := e.Words()
	if ws[0] != 0x48000000 {
		t.Errorf("b placeholder: wanted 48000000, have %08X", ws[0])
	}
	if ws[1] != 0x48000001 {
		t.Errorf("bl placeholder: wanted 48000001, have %08X", ws[1])
	}
}

// TestForwardBranchNext checks that a branch resolved to the instruction
// immediately following it encodes a displacement of +4.
func TestForwardBranchNext(t *testing.T) {
	e := New(FixedSize, 64)
	l := e.B()
	e.SetLabel(l)
	if w := e.Words()[0]; w != 0x48000004 {
		t.Errorf("wanted 48000004, have %08X", w)
	}
	e = New(FixedSize, 64)
	lc := e.Bne()
	e.SetLabel(lc)
	if w := e.Words()[0]; w != 0x40820004 {
		t.Errorf("wanted 40820004, have %08X", w)
	}
}

// TestForwardBranchOverNop reproduces the canonical forward fixup: the bne
// jumps +8 to just past the nop.
func TestForwardBranchOverNop(t *testing.T) {
	e := New(FixedSize, 64)
	l := e.Bne()
	e.Nop()
	e.SetLabel(l)
	ws := e.Words()
	if ws[0] != 0x40820008 {
		t.Errorf("wanted 40820008, have %08X", ws[0])
	}
	if ws[1] != 0x60000000 {
		t.Errorf("nop clobbered: %08X", ws[1])
	}
}

// TestBackwardBranch captures a target before the branch and resolves to a
// negative displacement.
func TestBackwardBranch(t *testing.T) {
	e := New(FixedSize, 64)
	p := e.Cursor()
	e.Nop()
	l := e.Bne()
	e.SetLabelTo(l, p)
	ws := e.Words()
	if ws[1] != 0x4082FFFC {
		t.Errorf("wanted 4082FFFC, have %08X", ws[1])
	}
}

// TestSetLabelIdempotent checks that resolving the same label to the same
// target twice yields the same word.
func TestSetLabelIdempotent(t *testing.T) {
	e := New(FixedSize, 64)
	l := e.Bne()
	e.Nop()
	e.Nop()
	target := e.Cursor()
	e.SetLabelTo(l, target)
	first := e.Words()[0]
	e.SetLabelTo(l, target)
	if second := e.Words()[0]; second != first {
		t.Errorf("resolution is not idempotent: %08X then %08X", first, second)
	}
}

// TestImmediateTarget checks the direct-emission branch forms.
func TestImmediateTarget(t *testing.T) {
	e := New(FixedSize, 64)
	e.Nop()
	e.Nop()
	e.BTo(0)
	e.BlTo(4)
	ws := e.Words()
	if ws[2] != 0x4BFFFFF8 {
		t.Errorf("b back 8: wanted 4BFFFFF8, have %08X", ws[2])
	}
	if ws[3] != 0x4BFFFFF9 {
		t.Errorf("bl back 8: wanted 4BFFFFF9, have %08X", ws[3])
	}
}

// TestBranch14AbsoluteFallback drives the relative displacement out of the
// signed-16 range while keeping the target encodeable as an absolute
// address, which must set the AA bit.
func TestBranch14AbsoluteFallback(t *testing.T) {
	e := New(FixedSize, 64*1024)
	for e.Cursor() < 0x9000 {
		e.Nop()
	}
	l := e.Bne()
	e.SetLabelTo(l, 0x100)
	w := e.Words()[0x9000/4]
	if w != 0x40820102 {
		t.Errorf("wanted 40820102 (AA form), have %08X", w)
	}
}

// TestBranch14OutOfRange checks that a displacement too large for both the
// relative and absolute forms is fatal.
func TestBranch14OutOfRange(t *testing.T) {
	e := New(FixedSize, 128*1024)
	for e.Cursor() < 0x12000 {
		e.Nop()
	}
	l := e.Bne()
	defer func() {
		if recover() == nil {
			t.Error("out-of-range displacement did not panic")
		}
	}()
	e.SetLabelTo(l, 0x9000)
}

// TestUnalignedTarget checks that a misaligned branch target is fatal.
func TestUnalignedTarget(t *testing.T) {
	e := New(FixedSize, 64)
	l := e.Bne()
	defer func() {
		if recover() == nil {
			t.Error("unaligned displacement did not panic")
		}
	}()
	e.SetLabelTo(l, 6)
}

// TestManyLabelsOnePoint resolves several branches to one landing point, as
// a chain of guard tests converging on an exit would.
func TestManyLabelsOnePoint(t *testing.T) {
	e := New(FixedSize, 4096)
	var labels []Label
	for i := 0; i < 8; i++ {
		labels = append(labels, e.Bne())
	}
	for _, l := range labels {
		e.SetLabel(l)
	}
	for i, w := range e.Words() {
		want := uint32(0x40820000) | uint32(8-i)*4
		if w != want {
			t.Errorf("branch %d: wanted %08X, have %08X", i, want, w)
		}
	}
}

// TestLinkBit checks that linking forms differ from plain forms only in the
// LK bit, and that resolution preserves it.
func TestLinkBit(t *testing.T) {
	for _, cond := range []Cond{Lt, Gt, Eq, Os, Ge, Le, Ne, Oc} {
		t.Run(fmt.Sprint(cond), func(t *testing.T) {
			ep := New(FixedSize, 64)
			el := New(FixedSize, 64)
			lp := ep.Bc(cond, false)
			ll := el.Bc(cond, true)
			ep.SetLabel(lp)
			el.SetLabel(ll)
			p, l := ep.Words()[0], el.Words()[0]
			if l != p|1 {
				t.Errorf("linking form %08X is not plain %08X with LK set", l, p)
			}
		})
	}
}
