package luma

// Shifts, rotates, and the rlwinm alias family. Every alias must produce the
// word the raw rlwinm call with the same fields would.

// Slw emits slw, shift left word by register amount.
func (e *Emitter) Slw(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000030 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Srw emits srw, shift right word by register amount.
func (e *Emitter) Srw(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000430 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Sraw emits sraw, shift right algebraic word by register amount.
func (e *Emitter) Sraw(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000630 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Srawi emits srawi, shift right algebraic word immediate.
func (e *Emitter) Srawi(dest, src GPR, amount uint8, setFlags bool) {
	e.write32(0x7C000670 | uint32(src)<<21 | uint32(dest)<<16 | uint32(amount&31)<<11 | rc(setFlags))
}

// Rlwinm emits rlwinm: rotate src left by shift, AND with the mask running
// from bit mb through bit me (IBM numbering, 0..31 each).
func (e *Emitter) Rlwinm(dest, src GPR, shift, mb, me uint8, setFlags bool) {
	e.write32(0x54000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(shift&31)<<11 | uint32(mb)<<6 | uint32(me)<<1 | rc(setFlags))
}

// Rlwnm emits rlwnm, the register-amount rotate-and-mask.
func (e *Emitter) Rlwnm(dest, src GPR, amount GPR, mb, me uint8, setFlags bool) {
	e.write32(0x5C000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(amount)<<11 | uint32(mb)<<6 | uint32(me)<<1 | rc(setFlags))
}

// Rlwimi emits rlwimi, rotate left word immediate then mask insert.
func (e *Emitter) Rlwimi(dest, src GPR, shift, mb, me uint8, setFlags bool) {
	e.write32(0x50000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(shift&31)<<11 | uint32(mb)<<6 | uint32(me)<<1 | rc(setFlags))
}

// Slwi shifts left by an immediate: rlwinm dest,src,n,0,31-n.
func (e *Emitter) Slwi(dest, src GPR, shift uint8, setFlags bool) {
	e.Rlwinm(dest, src, shift, 0, 31-shift, setFlags)
}

// Srwi shifts right logical by an immediate: rlwinm dest,src,32-n,n,31.
func (e *Emitter) Srwi(dest, src GPR, shift uint8, setFlags bool) {
	e.Rlwinm(dest, src, 32-shift, shift, 31, setFlags)
}

// Clrlwi clears the leftmost n bits: rlwinm dest,src,0,n,31.
func (e *Emitter) Clrlwi(dest, src GPR, n uint8, setFlags bool) {
	e.Rlwinm(dest, src, 0, n, 31, setFlags)
}

// Clrrwi clears the rightmost n bits: rlwinm dest,src,0,0,31-n.
func (e *Emitter) Clrrwi(dest, src GPR, n uint8, setFlags bool) {
	e.Rlwinm(dest, src, 0, 0, 31-n, setFlags)
}

// Rotlwi rotates left by an immediate: rlwinm dest,src,n,0,31.
func (e *Emitter) Rotlwi(dest, src GPR, amount uint8, setFlags bool) {
	e.Rlwinm(dest, src, amount, 0, 31, setFlags)
}

// Rotrwi rotates right by an immediate: rlwinm dest,src,32-n,0,31.
func (e *Emitter) Rotrwi(dest, src GPR, amount uint8, setFlags bool) {
	e.Rlwinm(dest, src, 32-amount, 0, 31, setFlags)
}

// Extlwi extracts the n-bit field starting at bit b and left-justifies it:
// rlwinm dest,src,b,0,n-1.
func (e *Emitter) Extlwi(dest, src GPR, n, b uint8, setFlags bool) {
	e.Rlwinm(dest, src, b, 0, n-1, setFlags)
}

// Extrwi extracts the n-bit field starting at bit b and right-justifies it:
// rlwinm dest,src,b+n,32-n,31.
func (e *Emitter) Extrwi(dest, src GPR, n, b uint8, setFlags bool) {
	e.Rlwinm(dest, src, b+n, 32-n, 31, setFlags)
}
