package luma

// Pseudo-ops: macros that expand to one or more primitive encodings.

// Li loads a signed 16-bit immediate, sign-extended: addi reg,r0,imm.
func (e *Emitter) Li(reg GPR, imm int16) {
	e.Addi(reg, R0, imm)
}

// Lis loads an immediate into the upper halfword: addis reg,r0,imm.
func (e *Emitter) Lis(reg GPR, imm uint16) {
	e.Addis(reg, R0, int16(imm))
}

// Liu loads an unsigned 16-bit immediate without sign extension. Values
// below 0x8000 fit a single li; above, li 0 then ori avoids extending
// bit 15.
func (e *Emitter) Liu(reg GPR, imm uint16) {
	if imm < 0x8000 {
		e.Li(reg, int16(imm))
		return
	}
	e.Li(reg, 0)
	e.Ori(reg, reg, imm)
}

// Liw loads an arbitrary 32-bit value exactly, in one instruction when the
// value sign-extends from 16 bits or has a zero low halfword, otherwise in
// two.
func (e *Emitter) Liw(reg GPR, imm uint32) {
	switch {
	case imm <= 0x7FFF || imm >= 0xFFFF8000:
		e.Li(reg, int16(imm))
	case imm&0xFFFF == 0:
		e.Lis(reg, uint16(imm>>16))
	default:
		e.Lis(reg, uint16(imm>>16))
		e.Ori(reg, reg, uint16(imm))
	}
}

// Mr copies a register: or dest,src,src.
func (e *Emitter) Mr(dest, src GPR, setFlags bool) {
	e.Or(dest, src, src, setFlags)
}

// Not complements a register: nor dest,src,src.
func (e *Emitter) Not(dest, src GPR, setFlags bool) {
	e.Nor(dest, src, src, setFlags)
}

// Setz sets dest to 1 if src is zero and 0 otherwise. cntlzw yields 32 only
// for zero, so bit 5 of the count is the answer.
func (e *Emitter) Setz(dest, src GPR) {
	e.Cntlzw(dest, src, false)
	e.Srwi(dest, dest, 5, false)
}

// Nop emits the canonical no-op, ori r0,r0,0.
func (e *Emitter) Nop() { e.Ori(R0, R0, 0) }

// Loop assembles a counted loop: counter is loaded with iterations, the
// body runs, and an addic./bne pair decrements and branches back to the top
// of the body. Zero iterations emits nothing.
func (e *Emitter) Loop(counter GPR, iterations uint32, body func()) {
	if iterations == 0 {
		return
	}
	e.Liw(counter, iterations)
	top := e.off
	body()
	e.Addic(counter, counter, -1, true)
	l := e.Bne()
	e.SetLabelTo(l, top)
}
