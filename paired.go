package luma

// Paired-single operations, the Gekko/Broadway SIMD extension. Each FPR
// holds two 32-bit floats; these ops work both lanes unless a scalar suffix
// says otherwise. Four-operand forms follow the same frD,frA,frC,frB layout
// as the scalar FPU.

// PsAbs emits ps_abs.
func (e *Emitter) PsAbs(dest, src FPR, setFlags bool) {
	e.write32(0x10000210 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsNabs emits ps_nabs.
func (e *Emitter) PsNabs(dest, src FPR, setFlags bool) {
	e.write32(0x10000110 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsNeg emits ps_neg.
func (e *Emitter) PsNeg(dest, src FPR, setFlags bool) {
	e.write32(0x10000050 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsMr emits ps_mr, paired-single move register.
func (e *Emitter) PsMr(dest, src FPR, setFlags bool) {
	e.write32(0x10000090 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsAdd emits ps_add.
func (e *Emitter) PsAdd(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x1000002A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsSub emits ps_sub.
func (e *Emitter) PsSub(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x10000028 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsDiv emits ps_div.
func (e *Emitter) PsDiv(dest, dividend, divisor FPR, setFlags bool) {
	e.write32(0x10000024 | uint32(dest)<<21 | uint32(dividend)<<16 | uint32(divisor)<<11 | rc(setFlags))
}

// PsMul emits ps_mul, with src2 in the frC field.
func (e *Emitter) PsMul(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x10000032 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<6 | rc(setFlags))
}

// PsMuls0 emits ps_muls0, multiply by lane 0 of src2.
func (e *Emitter) PsMuls0(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x10000018 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<6 | rc(setFlags))
}

// PsMuls1 emits ps_muls1, multiply by lane 1 of src2.
func (e *Emitter) PsMuls1(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x1000001A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<6 | rc(setFlags))
}

// PsMadd emits ps_madd: dest = a*b + c.
func (e *Emitter) PsMadd(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000003A | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsMadds0 emits ps_madds0, multiply-add by lane 0 of b.
func (e *Emitter) PsMadds0(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000001C | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsMadds1 emits ps_madds1, multiply-add by lane 1 of b.
func (e *Emitter) PsMadds1(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000001E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsMsub emits ps_msub: dest = a*b - c.
func (e *Emitter) PsMsub(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x10000038 | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsNmadd emits ps_nmadd: dest = -(a*b + c).
func (e *Emitter) PsNmadd(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000003E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsNmsub emits ps_nmsub: dest = -(a*b - c).
func (e *Emitter) PsNmsub(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000003C | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsSel emits ps_sel.
func (e *Emitter) PsSel(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x1000002E | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsRes emits ps_res, reciprocal estimate.
func (e *Emitter) PsRes(dest, src FPR, setFlags bool) {
	e.write32(0x10000030 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsRsqrte emits ps_rsqrte, reciprocal square root estimate.
func (e *Emitter) PsRsqrte(dest, src FPR, setFlags bool) {
	e.write32(0x10000034 | uint32(dest)<<21 | uint32(src)<<11 | rc(setFlags))
}

// PsMerge00 emits ps_merge00: both lanes from lane 0.
func (e *Emitter) PsMerge00(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x10000420 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsMerge01 emits ps_merge01: the direct merge.
func (e *Emitter) PsMerge01(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x10000460 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsMerge10 emits ps_merge10: the swapped merge.
func (e *Emitter) PsMerge10(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x100004A0 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsMerge11 emits ps_merge11: both lanes from lane 1.
func (e *Emitter) PsMerge11(dest, src1, src2 FPR, setFlags bool) {
	e.write32(0x100004E0 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | rc(setFlags))
}

// PsSum0 emits ps_sum0, vector sum into lane 0.
func (e *Emitter) PsSum0(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x10000014 | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsSum1 emits ps_sum1, vector sum into lane 1.
func (e *Emitter) PsSum1(dest, a, b, c FPR, setFlags bool) {
	e.write32(0x10000016 | uint32(dest)<<21 | uint32(a)<<16 | uint32(c)<<11 | uint32(b)<<6 | rc(setFlags))
}

// PsCmpo0 emits ps_cmpo0, ordered compare of lane 0.
func (e *Emitter) PsCmpo0(dest CR, src1, src2 FPR) {
	e.write32(0x10000040 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// PsCmpo1 emits ps_cmpo1, ordered compare of lane 1.
func (e *Emitter) PsCmpo1(dest CR, src1, src2 FPR) {
	e.write32(0x100000C0 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// PsCmpu0 emits ps_cmpu0, unordered compare of lane 0.
func (e *Emitter) PsCmpu0(dest CR, src1, src2 FPR) {
	e.write32(0x10000000 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}

// PsCmpu1 emits ps_cmpu1, unordered compare of lane 1.
func (e *Emitter) PsCmpu1(dest CR, src1, src2 FPR) {
	e.write32(0x10000080 | uint32(dest)<<23 | uint32(src1)<<16 | uint32(src2)<<11)
}
