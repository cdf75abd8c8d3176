package luma

// A small AltiVec subset. The design accommodates extension; only the ops
// below are provided.

// Vaddfp emits vaddfp, vector single-precision add.
func (e *Emitter) Vaddfp(dest, src1, src2 VR) {
	e.write32(0x1000000A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vsubfp emits vsubfp, vector single-precision subtract.
func (e *Emitter) Vsubfp(dest, src1, src2 VR) {
	e.write32(0x1000004A | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vand emits vand.
func (e *Emitter) Vand(dest, src1, src2 VR) {
	e.write32(0x10000404 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vandc emits vandc, AND with complement.
func (e *Emitter) Vandc(dest, src1, src2 VR) {
	e.write32(0x10000444 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vor emits vor.
func (e *Emitter) Vor(dest, src1, src2 VR) {
	e.write32(0x10000484 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vnor emits vnor.
func (e *Emitter) Vnor(dest, src1, src2 VR) {
	e.write32(0x10000504 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vxor emits vxor.
func (e *Emitter) Vxor(dest, src1, src2 VR) {
	e.write32(0x100004C4 | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11)
}

// Vperm emits vperm: dest lanes picked from src1:src2 by the byte indices
// in perm.
func (e *Emitter) Vperm(dest, src1, src2, perm VR) {
	e.write32(0x1000002B | uint32(dest)<<21 | uint32(src1)<<16 | uint32(src2)<<11 | uint32(perm)<<6)
}

// Vrefp emits vrefp, vector reciprocal estimate.
func (e *Emitter) Vrefp(dest, src VR) {
	e.write32(0x1000010A | uint32(dest)<<21 | uint32(src)<<11)
}

// Dss emits dss, data stream stop for the given stream (0..3).
func (e *Emitter) Dss(stream uint8) {
	e.write32(0x7C00066C | uint32(stream)<<21)
}

// Dssall emits dssall, data stream stop all.
func (e *Emitter) Dssall() { e.write32(0x7E00066C) }
