package luma

// Floating-point loads, stores and arithmetic. The four-operand fused ops
// follow the ISA assembler order (frD, frA, frC, frB): frD = frA*frC ± frB,
// with frB encoded at bit 11 and frC at bit 6.

// Lfs emits lfs, load floating-point single.
func (e *Emitter) Lfs(dest FPR, base GPR, offset int16) {
	e.write32(0xC0000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lfsu emits lfsu, load floating-point single with update.
func (e *Emitter) Lfsu(dest FPR, base GPR, offset int16) {
	e.write32(0xC4000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lfsx emits lfsx, load floating-point single indexed.
func (e *Emitter) Lfsx(dest FPR, index, base GPR) {
	e.write32(0x7C00042E | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lfd emits lfd, load floating-point double.
func (e *Emitter) Lfd(dest FPR, base GPR, offset int16) {
	e.write32(0xC8000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lfdu emits lfdu, load floating-point double with update.
func (e *Emitter) Lfdu(dest FPR, base GPR, offset int16) {
	e.write32(0xCC000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lfdx emits lfdx, load floating-point double indexed.
func (e *Emitter) Lfdx(dest FPR, index, base GPR) {
	e.write32(0x7C0004AE | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stfs emits stfs, store floating-point single.
func (e *Emitter) Stfs(src FPR, base GPR, offset int16) {
	e.write32(0xD0000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stfsu emits stfsu, store floating-point single with update.
func (e *Emitter) Stfsu(src FPR, base GPR, offset int16) {
	e.write32(0xD4000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stfsx emits stfsx, store floating-point single indexed.
func (e *Emitter) Stfsx(src FPR, index, base GPR) {
	e.write32(0x7C00052E | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stfd emits stfd, store floating-point double.
func (e *Emitter) Stfd(src FPR, base GPR, offset int16) {
	e.write32(0xD8000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stfdu emits stfdu, store floating-point double with update.
func (e *Emitter) Stfdu(src FPR, base GPR, offset int16) {
	e.write32(0xDC000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stfdx emits stfdx, store floating-point double indexed.
func (e *Emitter) Stfdx(src FPR, index, base GPR) {
	e.write32(0x7C0005AE | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Fmr emits fmr, floating move register.
func (e *Emitter) Fmr(dest, src FPR, setFlags bool) {
	e.write32(0xFC000090 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fabs emits fabs.
func (e *Emitter) Fabs(dest, src FPR, setFlags bool) {
	e.write32(0xFC000210 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fnabs emits fnabs, negative absolute value.
func (e *Emitter) Fnabs(dest, src FPR, setFlags bool) {
	e.write32(0xFC000110 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fneg emits fneg.
func (e *Emitter) Fneg(dest, src FPR, setFlags bool) {
	e.write32(0xFC000050 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fadd emits fadd, double-precision add.
func (e *Emitter) Fadd(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xFC00002A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fadds emits fadds, single-precision add.
func (e *Emitter) Fadds(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xEC00002A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fsub emits fsub, double-precision subtract.
func (e *Emitter) Fsub(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xFC000028 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fsubs emits fsubs, single-precision subtract.
func (e *Emitter) Fsubs(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xEC000028 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fdiv emits fdiv, double-precision divide.
func (e *Emitter) Fdiv(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xFC000024 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fdivs emits fdivs, single-precision divide.
func (e *Emitter) Fdivs(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xEC000024 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// Fmul emits fmul: dest = src1 * src2, with src2 in the frC field.
func (e *Emitter) Fmul(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xFC000032 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<6 | rc(setFlags))
}

// Fmuls emits fmuls, the single-precision multiply.
func (e *Emitter) Fmuls(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0xEC000032 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<6 | rc(setFlags))
}

// Fmadd emits fmadd: dest = a*b + c.
func (e *Emitter) Fmadd(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xFC00003A | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fmadds emits fmadds, single-precision dest = a*b + c.
func (e *Emitter) Fmadds(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xEC00003A | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fmsub emits fmsub: dest = a*b - c.
func (e *Emitter) Fmsub(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xFC000038 | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fmsubs emits fmsubs, single-precision dest = a*b - c.
func (e *Emitter) Fmsubs(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xEC000038 | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fnmadd emits fnmadd: dest = -(a*b + c).
func (e *Emitter) Fnmadd(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xFC00003E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fnmadds emits fnmadds, single-precision dest = -(a*b + c).
func (e *Emitter) Fnmadds(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xEC00003E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fnmsub emits fnmsub: dest = -(a*b - c).
func (e *Emitter) Fnmsub(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xFC00003C | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fnmsubs emits fnmsubs, single-precision dest = -(a*b - c).
func (e *Emitter) Fnmsubs(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xEC00003C | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fsel emits fsel: dest = b if a >= 0, else c.
func (e *Emitter) Fsel(dest, a, b, c FPR, setFlags bool) {
	e.write32(0xFC00002E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// Fres emits fres, single-precision reciprocal estimate.
func (e *Emitter) Fres(dest, src FPR, setFlags bool) {
	e.write32(0xEC000030 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Frsqrte emits frsqrte, reciprocal square root estimate.
func (e *Emitter) Frsqrte(dest, src FPR, setFlags bool) {
	e.write32(0xFC000034 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Frsp emits frsp, round to single precision.
func (e *Emitter) Frsp(dest, src FPR, setFlags bool) {
	e.write32(0xFC000018 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fctiw emits fctiw, convert to integer word.
func (e *Emitter) Fctiw(dest, src FPR, setFlags bool) {
	e.write32(0xFC00001C | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fctiwz emits fctiwz, convert to integer word rounding toward zero.
func (e *Emitter) Fctiwz(dest, src FPR, setFlags bool) {
	e.write32(0xFC00001E | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// Fcmpu emits fcmpu, unordered compare into the given CR field.
func (e *Emitter) Fcmpu(dest CR, src1, src2 FPR) {
	e.write32(0xFC000000 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Fcmpo emits fcmpo, ordered compare into the given CR field.
func (e *Emitter) Fcmpo(dest CR, src1, src2 FPR) {
	e.write32(0xFC000040 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}
