package luma

// Logical operations. X-form logicals place the source register at bit 21
// and the destination at bit 16, the reverse of the arithmetic layout.

// And emits and (and., if setFlags).
func (e *Emitter) And(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000038 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Andc emits andc, AND with complement.
func (e *Emitter) Andc(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000078 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Nand emits nand.
func (e *Emitter) Nand(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C0003B8 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Andi emits andi., which always updates CR0.
func (e *Emitter) Andi(dest, src GPR, imm uint16) {
	e.write32(0x70000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Andis emits andis., which always updates CR0.
func (e *Emitter) Andis(dest, src GPR, imm uint16) {
	e.write32(0x74000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Or emits or.
func (e *Emitter) Or(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000378 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Orc emits orc, OR with complement.
func (e *Emitter) Orc(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000338 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Nor emits nor.
func (e *Emitter) Nor(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C0000F8 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Ori emits ori. Ori(R0, R0, 0) is the canonical nop.
func (e *Emitter) Ori(dest, src GPR, imm uint16) {
	e.write32(0x60000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Oris emits oris.
func (e *Emitter) Oris(dest, src GPR, imm uint16) {
	e.write32(0x64000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Xor emits xor.
func (e *Emitter) Xor(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000278 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Xori emits xori.
func (e *Emitter) Xori(dest, src GPR, imm uint16) {
	e.write32(0x68000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Xoris emits xoris.
func (e *Emitter) Xoris(dest, src GPR, imm uint16) {
	e.write32(0x6C000000 | uint32(src)<<21 | uint32(dest)<<16 | uint32(imm))
}

// Eqv emits eqv, the logical XNOR.
func (e *Emitter) Eqv(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000238 | uint32(src1)<<21 | uint32(dest)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Cntlzw emits cntlzw, count leading zeros. The result is 32 only when src
// is zero, which Setz exploits.
func (e *Emitter) Cntlzw(dest, src GPR, setFlags bool) {
	e.write32(0x7C000034 | uint32(src)<<21 | uint32(dest)<<16 | rc(setFlags))
}
