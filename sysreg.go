package luma

// Condition-register bit operations and moves to and from the system
// registers, plus the cache, TLB and synchronization ops.

// Crand emits crand. Bits number 0..31 across the whole CR.
func (e *Emitter) Crand(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000202 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crandc emits crandc, CR AND with complement.
func (e *Emitter) Crandc(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000102 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Creqv emits creqv, CR XNOR.
func (e *Emitter) Creqv(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000242 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crnand emits crnand.
func (e *Emitter) Crnand(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C0001C2 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crnor emits crnor.
func (e *Emitter) Crnor(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000042 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Cror emits cror.
func (e *Emitter) Cror(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000382 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crorc emits crorc, CR OR with complement.
func (e *Emitter) Crorc(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000342 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crxor emits crxor.
func (e *Emitter) Crxor(destBit, src1Bit, src2Bit uint8) {
	e.write32(0x4C000182 | uint32(destBit)<<21 | uint32(src1Bit)<<16 | uint32(src2Bit)<<11)
}

// Crset sets a CR bit: creqv bit,bit,bit.
func (e *Emitter) Crset(bit uint8) { e.Creqv(bit, bit, bit) }

// Crclr clears a CR bit: crxor bit,bit,bit.
func (e *Emitter) Crclr(bit uint8) { e.Crxor(bit, bit, bit) }

// Crmove copies a CR bit: cror dest,src,src.
func (e *Emitter) Crmove(destBit, srcBit uint8) { e.Cror(destBit, srcBit, srcBit) }

// Crnot copies the complement of a CR bit: crnor dest,src,src.
func (e *Emitter) Crnot(destBit, srcBit uint8) { e.Crnor(destBit, srcBit, srcBit) }

// Mtcrf emits mtcrf, copying src into the CR fields selected by mask.
func (e *Emitter) Mtcrf(mask uint8, src GPR) {
	e.write32(0x7C000120 | uint32(src)<<21 | uint32(mask)<<12)
}

// Mtcr copies src into the whole condition register.
func (e *Emitter) Mtcr(src GPR) { e.Mtcrf(0xFF, src) }

// Mfcr emits mfcr.
func (e *Emitter) Mfcr(dest GPR) {
	e.write32(0x7C000026 | uint32(dest)<<21)
}

// Mtsr emits mtsr, move to segment register.
func (e *Emitter) Mtsr(dest SR, src GPR) {
	e.write32(0x7C0001A4 | uint32(src)<<21 | uint32(dest)<<16)
}

// Mfsr emits mfsr, move from segment register.
func (e *Emitter) Mfsr(dest GPR, src SR) {
	e.write32(0x7C0004A6 | uint32(dest)<<21 | uint32(src)<<16)
}

// Mtsrin emits mtsrin, move to segment register indirect.
func (e *Emitter) Mtsrin(src, base GPR) {
	e.write32(0x7C0001E4 | uint32(src)<<21 | uint32(base)<<11)
}

// Mfsrin emits mfsrin, move from segment register indirect.
func (e *Emitter) Mfsrin(dest, base GPR) {
	e.write32(0x7C000526 | uint32(dest)<<21 | uint32(base)<<11)
}

// Mfmsr emits mfmsr, move from machine state register.
func (e *Emitter) Mfmsr(dest GPR) {
	e.write32(0x7C0000A6 | uint32(dest)<<21)
}

// Mtmsr emits mtmsr, move to machine state register.
func (e *Emitter) Mtmsr(src GPR) {
	e.write32(0x7C000124 | uint32(src)<<21)
}

// Mtctr emits mtctr.
func (e *Emitter) Mtctr(src GPR) {
	e.write32(0x7C0903A6 | uint32(src)<<21)
}

// Mfctr emits mfctr.
func (e *Emitter) Mfctr(dest GPR) {
	e.write32(0x7C0902A6 | uint32(dest)<<21)
}

// Mtlr emits mtlr.
func (e *Emitter) Mtlr(src GPR) {
	e.write32(0x7C0803A6 | uint32(src)<<21)
}

// Mflr emits mflr.
func (e *Emitter) Mflr(dest GPR) {
	e.write32(0x7C0802A6 | uint32(dest)<<21)
}

// Mtxer emits mtxer.
func (e *Emitter) Mtxer(src GPR) {
	e.write32(0x7C0103A6 | uint32(src)<<21)
}

// Mfxer emits mfxer.
func (e *Emitter) Mfxer(dest GPR) {
	e.write32(0x7C0102A6 | uint32(dest)<<21)
}

// Icbi emits icbi, instruction cache block invalidate.
func (e *Emitter) Icbi(rA, rB GPR) {
	e.write32(0x7C0007AC | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbf emits dcbf, data cache block flush.
func (e *Emitter) Dcbf(rA, rB GPR) {
	e.write32(0x7C0000AC | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbi emits dcbi, data cache block invalidate.
func (e *Emitter) Dcbi(rA, rB GPR) {
	e.write32(0x7C0003AC | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbst emits dcbst, data cache block store.
func (e *Emitter) Dcbst(rA, rB GPR) {
	e.write32(0x7C00006C | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbt emits dcbt, data cache block touch.
func (e *Emitter) Dcbt(rA, rB GPR) {
	e.write32(0x7C00022C | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbtst emits dcbtst, data cache block touch for store.
func (e *Emitter) Dcbtst(rA, rB GPR) {
	e.write32(0x7C0001EC | uint32(rA)<<16 | uint32(rB)<<11)
}

// Dcbz emits dcbz, data cache block clear to zero.
func (e *Emitter) Dcbz(rA, rB GPR) {
	e.write32(0x7C0007EC | uint32(rA)<<16 | uint32(rB)<<11)
}

// DcbzL emits dcbz_l, the Gekko locked-cache variant of dcbz.
func (e *Emitter) DcbzL(rA, rB GPR) {
	e.write32(0x100007EC | uint32(rA)<<16 | uint32(rB)<<11)
}

// Tlbie emits tlbie, TLB invalidate entry.
func (e *Emitter) Tlbie(base GPR) {
	e.write32(0x7C000264 | uint32(base)<<11)
}

// Tlbsync emits tlbsync.
func (e *Emitter) Tlbsync() { e.write32(0x7C00046C) }

// Eieio emits eieio, enforce in-order execution of I/O.
func (e *Emitter) Eieio() { e.write32(0x7C0006AC) }

// Isync emits isync.
func (e *Emitter) Isync() { e.write32(0x4C00012C) }

// Sync emits sync.
func (e *Emitter) Sync() { e.write32(0x7C0004AC) }

// Rfi emits rfi, return from interrupt.
func (e *Emitter) Rfi() { e.write32(0x4C000064) }

// Sc emits sc, system call.
func (e *Emitter) Sc() { e.write32(0x44000002) }
