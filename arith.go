package luma

// Integer arithmetic. Three-register forms place rD at bit 21 and the
// sources at bits 16 and 11; the subtract-from family keeps the historical
// "subtract rA from rB" operand order, with natural-order wrappers below.

// Add emits add (add., if setFlags).
func (e *Emitter) Add(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000214 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Addo emits addo, the overflow-enabled add.
func (e *Emitter) Addo(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000614 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Addc emits addc, add carrying.
func (e *Emitter) Addc(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000014 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Addco emits addco.
func (e *Emitter) Addco(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000414 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Adde emits adde, add extended with carry-in.
func (e *Emitter) Adde(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000114 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Addeo emits addeo.
func (e *Emitter) Addeo(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000514 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Addze emits addze, add to zero extended.
func (e *Emitter) Addze(dest, src GPR, setFlags bool) {
	e.write32(0x7C000194 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Addzeo emits addzeo.
func (e *Emitter) Addzeo(dest, src GPR, setFlags bool) {
	e.write32(0x7C000594 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Addme emits addme, add to minus one extended.
func (e *Emitter) Addme(dest, src GPR, setFlags bool) {
	e.write32(0x7C0001D4 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Addmeo emits addmeo.
func (e *Emitter) Addmeo(dest, src GPR, setFlags bool) {
	e.write32(0x7C0005D4 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Addi emits addi. With src == R0 the operand is the literal zero, which is
// what Li relies on.
func (e *Emitter) Addi(dest, src GPR, imm int16) {
	e.write32(0x38000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Addis emits addis, add immediate shifted.
func (e *Emitter) Addis(dest, src GPR, imm int16) {
	e.write32(0x3C000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Addic emits addic, or addic. if setFlags. These are distinct primary
// opcodes (12 and 13), not an Rc-bit pair.
func (e *Emitter) Addic(dest, src GPR, imm int16, setFlags bool) {
	if setFlags {
		e.write32(0x34000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
		return
	}
	e.write32(0x30000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Subf emits subf: dest = src2 - src1, the native "subtract from" order.
func (e *Emitter) Subf(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000050 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Sub is subf with natural operand order: dest = src1 - src2.
func (e *Emitter) Sub(dest, src1, src2 GPR, setFlags bool) {
	e.Subf(dest, src2, src1, setFlags)
}

// Subfo emits subfo.
func (e *Emitter) Subfo(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000450 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Subo is subfo with natural operand order.
func (e *Emitter) Subo(dest, src1, src2 GPR, setFlags bool) {
	e.Subfo(dest, src2, src1, setFlags)
}

// Subfc emits subfc, subtract from carrying.
func (e *Emitter) Subfc(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000010 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Subc is subfc with natural operand order.
func (e *Emitter) Subc(dest, src1, src2 GPR, setFlags bool) {
	e.Subfc(dest, src2, src1, setFlags)
}

// Subfco emits subfco.
func (e *Emitter) Subfco(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000410 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Subco is subfco with natural operand order.
func (e *Emitter) Subco(dest, src1, src2 GPR, setFlags bool) {
	e.Subfco(dest, src2, src1, setFlags)
}

// Subfe emits subfe, subtract from extended.
func (e *Emitter) Subfe(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000110 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Sube is subfe with natural operand order.
func (e *Emitter) Sube(dest, src1, src2 GPR, setFlags bool) {
	e.Subfe(dest, src2, src1, setFlags)
}

// Subfeo emits subfeo.
func (e *Emitter) Subfeo(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000510 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Subeo is subfeo with natural operand order.
func (e *Emitter) Subeo(dest, src1, src2 GPR, setFlags bool) {
	e.Subfeo(dest, src2, src1, setFlags)
}

// Subfic emits subfic, subtract from immediate carrying.
func (e *Emitter) Subfic(dest, src GPR, imm int16) {
	e.write32(0x20000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Subfme emits subfme, subtract from minus one extended.
func (e *Emitter) Subfme(dest, src GPR, setFlags bool) {
	e.write32(0x7C0001D0 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Subfmeo emits subfmeo.
func (e *Emitter) Subfmeo(dest, src GPR, setFlags bool) {
	e.write32(0x7C0005D0 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Subfze emits subfze, subtract from zero extended.
func (e *Emitter) Subfze(dest, src GPR, setFlags bool) {
	e.write32(0x7C000190 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Subfzeo emits subfzeo.
func (e *Emitter) Subfzeo(dest, src GPR, setFlags bool) {
	e.write32(0x7C000590 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Neg emits neg.
func (e *Emitter) Neg(dest, src GPR, setFlags bool) {
	e.write32(0x7C0000D0 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Nego emits nego.
func (e *Emitter) Nego(dest, src GPR, setFlags bool) {
	e.write32(0x7C0004D0 | uint32(dest)<<21 | uint32(src)<<16 | rc(setFlags))
}

// Cmpi emits cmpi, comparing src against a signed immediate into the given
// CR field.
func (e *Emitter) Cmpi(dest CR, src GPR, imm int16) {
	e.write32(0x2C000000 | uint32(dest)<<23 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Cmpli emits cmpli, the unsigned immediate compare.
func (e *Emitter) Cmpli(dest CR, src GPR, imm uint16) {
	e.write32(0x28000000 | uint32(dest)<<23 | uint32(src)<<16 | uint32(imm))
}

// Cmp emits cmp, the signed register compare.
func (e *Emitter) Cmp(dest CR, src1, src2 GPR) {
	e.write32(0x7C000000 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Cmpl emits cmpl, the unsigned register compare.
func (e *Emitter) Cmpl(dest CR, src1, src2 GPR) {
	e.write32(0x7C000040 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Mulli emits mulli.
func (e *Emitter) Mulli(dest, src GPR, imm int16) {
	e.write32(0x1C000000 | uint32(dest)<<21 | uint32(src)<<16 | uint32(uint16(imm)))
}

// Mullw emits mullw, the low 32 bits of the product.
func (e *Emitter) Mullw(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C0001D6 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Mullwo emits mullwo.
func (e *Emitter) Mullwo(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C0005D6 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Mulhw emits mulhw, the high 32 bits of the signed product.
func (e *Emitter) Mulhw(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000096 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Mulhwu emits mulhwu, the high 32 bits of the unsigned product.
func (e *Emitter) Mulhwu(dest, src1, src2 GPR, setFlags bool) {
	e.write32(0x7C000016 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Divw emits divw.
func (e *Emitter) Divw(dest, dividend, divisor GPR, setFlags bool) {
	e.write32(0x7C0003D6 | uint32(dest)<<21 | uint32(dividend)<<16 | uint32(divisor)<<11 | rc(setFlags))
}

// Divwo emits divwo.
func (e *Emitter) Divwo(dest, dividend, divisor GPR, setFlags bool) {
	e.write32(0x7C0007D6 | uint32(dest)<<21 | uint32(dividend)<<16 | uint32(divisor)<<11 | rc(setFlags))
}

// Divwu emits divwu.
func (e *Emitter) Divwu(dest, dividend, divisor GPR, setFlags bool) {
	e.write32(0x7C000396 | uint32(dest)<<21 | uint32(dividend)<<16 | uint32(divisor)<<11 | rc(setFlags))
}

// Divwuo emits divwuo.
func (e *Emitter) Divwuo(dest, dividend, divisor GPR, setFlags bool) {
	e.write32(0x7C000796 | uint32(dest)<<21 | uint32(dividend)<<16 | uint32(divisor)<<11 | rc(setFlags))
}
