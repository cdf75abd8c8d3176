package luma

// Branch emission and label fixup. Targets are byte offsets from the buffer
// base; because the emitted code is position-independent for relative
// branches, the same arithmetic applies if the offsets are real machine
// addresses of code assembled in place. The absolute (AA-bit) fallback
// treats the target value as an absolute address, which is meaningful when
// the code's load address makes buffer offsets and machine addresses agree.

const (
	int26Min = -0x2000000
	int26Max = 0x1FFFFFF
	int16Min = -0x8000
	int16Max = 0x7FFF
)

func link(l bool) uint32 {
	if l {
		return 1
	}
	return 0
}

// emitBranch14 appends a conditional branch word with a zero displacement
// and returns its label.
func (e *Emitter) emitBranch14(opcode uint32) Label {
	cia := e.off
	e.write32(opcode)
	return Label{off: cia, kind: Branch14}
}

// B emits an unconditional branch with no target and returns its label.
func (e *Emitter) B() Label { return e.bx(false) }

// Bl emits branch-and-link with no target and returns its label.
func (e *Emitter) Bl() Label { return e.bx(true) }

func (e *Emitter) bx(lk bool) Label {
	cia := e.off
	e.write32(0x48000000 | link(lk))
	return Label{off: cia, kind: Branch24}
}

// BTo emits an unconditional branch to a target known now.
func (e *Emitter) BTo(target int) { e.bxTo(target, false) }

// BlTo emits branch-and-link to a target known now.
func (e *Emitter) BlTo(target int) { e.bxTo(target, true) }

func (e *Emitter) bxTo(target int, lk bool) {
	if target&3 != 0 {
		panicf("unaligned branch target %#x", target)
	}
	disp := target - e.off
	switch {
	case disp >= int26Min && disp <= int26Max:
		e.write32(0x48000000 | uint32(disp)&0x3FFFFFC | link(lk))
	case target >= int26Min && target <= int26Max:
		e.write32(0x48000000 | uint32(target)&0x3FFFFFC | 2 | link(lk))
	default:
		panicf("invalid target for 24-bit branch: displacement of %#x words exceeds possible range", disp>>2)
	}
}

// Bc emits a conditional branch on the given CR0 condition, optionally
// linking, and returns its label. Conditions with ordinal 0..3 test the CR
// bit set; 4..7 test it cleared.
//
// Branches testing CR1..7 are not provided yet; Bc is the place they would
// slot in.
func (e *Emitter) Bc(cond Cond, lk bool) Label {
	op := uint32(0x40800000) | uint32(cond&3)<<16 | link(lk)
	if cond <= Os {
		op |= 1 << 24
	}
	return e.emitBranch14(op)
}

// Beq emits branch if equal.
func (e *Emitter) Beq() Label { return e.Bc(Eq, false) }

// Bne emits branch if not equal.
func (e *Emitter) Bne() Label { return e.Bc(Ne, false) }

// Blt emits branch if less than.
func (e *Emitter) Blt() Label { return e.Bc(Lt, false) }

// Bge emits branch if greater than or equal.
func (e *Emitter) Bge() Label { return e.Bc(Ge, false) }

// Ble emits branch if less than or equal.
func (e *Emitter) Ble() Label { return e.Bc(Le, false) }

// Bgt emits branch if greater than.
func (e *Emitter) Bgt() Label { return e.Bc(Gt, false) }

// Bso emits branch if summary overflow.
func (e *Emitter) Bso() Label { return e.Bc(Os, false) }

// Bns emits branch if no summary overflow.
func (e *Emitter) Bns() Label { return e.Bc(Oc, false) }

// Beql emits branch if equal and link.
func (e *Emitter) Beql() Label { return e.Bc(Eq, true) }

// Bnel emits branch if not equal and link.
func (e *Emitter) Bnel() Label { return e.Bc(Ne, true) }

// Bltl emits branch if less than and link.
func (e *Emitter) Bltl() Label { return e.Bc(Lt, true) }

// Bgel emits branch if greater than or equal and link.
func (e *Emitter) Bgel() Label { return e.Bc(Ge, true) }

// Blel emits branch if less than or equal and link.
func (e *Emitter) Blel() Label { return e.Bc(Le, true) }

// Bgtl emits branch if greater than and link.
func (e *Emitter) Bgtl() Label { return e.Bc(Gt, true) }

// Bsol emits branch if summary overflow and link.
func (e *Emitter) Bsol() Label { return e.Bc(Os, true) }

// Bnsl emits branch if no summary overflow and link.
func (e *Emitter) Bnsl() Label { return e.Bc(Oc, true) }

// SetLabel resolves l to the current cursor, so the branch lands on whatever
// is emitted next.
func (e *Emitter) SetLabel(l Label) { e.SetLabelTo(l, e.off) }

// SetLabelTo patches the branch word l refers to so that it targets the
// given byte offset. If the relative displacement does not fit the branch
// form, the absolute (AA) encoding is tried before giving up. Resolving the
// same label to the same target twice yields the same word.
func (e *Emitter) SetLabelTo(l Label, target int) {
	disp := target - l.off
	if disp&3 != 0 {
		panicf("unaligned branch displacement %#x", disp)
	}
	word := hostOrder.Uint32(e.buf[l.off:])
	switch l.kind {
	case Branch14:
		switch {
		case disp >= int16Min && disp <= int16Max:
			word = word&^0xFFFE | uint32(disp)&0xFFFC
		case target >= int16Min && target <= int16Max:
			word = word&^0xFFFE | uint32(target)&0xFFFC | 2
		default:
			panicf("invalid label for 14-bit branch: displacement of %#x words exceeds possible range", disp>>2)
		}
	case Branch24:
		switch {
		case disp >= int26Min && disp <= int26Max:
			word = word&^0x3FFFFFE | uint32(disp)&0x3FFFFFC
		case target >= int26Min && target <= int26Max:
			word = word&^0x3FFFFFE | uint32(target)&0x3FFFFFC | 2
		default:
			panicf("invalid label for 24-bit branch: displacement of %#x words exceeds possible range", disp>>2)
		}
	}
	hostOrder.PutUint32(e.buf[l.off:], word)
}

// Blr emits branch to link register.
func (e *Emitter) Blr() { e.write32(0x4E800020) }

// Bctr emits branch to count register.
func (e *Emitter) Bctr() { e.write32(0x4E800420) }

// Bctrl emits branch to count register and link.
func (e *Emitter) Bctrl() { e.write32(0x4E800421) }
