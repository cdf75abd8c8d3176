// Package regress holds the emitter regression program: one long run
// through every mnemonic, directive and label form, byte-compared in CI
// against a known-good image. cmd/lumadump regenerates the image.
package regress

import (
	. "github.com/lumagen/luma"
)

// Emit assembles the regression program into e. The program is not runnable
// code; it exists to pin every encoding.
func Emit(e *Emitter) {
	label1 := e.Beq()
	e.Mflr(R3)
	e.Stw(R3, SP, 0)
	a := e.Cursor()
	e.Nop()
	e.SetLabel(label1)

	label2 := e.Bne()
	e.Lwzu(R0, R1, -4)
	e.Lhz(R2, R1, -16)
	e.SetLabelTo(label2, a)

	e.Lhzu(R1, R2, -69)
	e.Lbzu(R0, R31, 0)
	e.Lbz(R0, R1, 1)
	e.Lbzux(R0, R1, R2)
	e.Lbzx(R10, R12, R4)
	e.Lhzux(R0, R3, R2)
	e.Lhzx(R6, R7, R9)
	e.Lwzx(R31, R30, R29)
	e.Lwzux(R2, R30, R31)

	e.Lmw(R31, R15, -120)
	e.Stmw(R29, R30, -4040)
	e.Stwux(R0, R10, R3)
	e.Stwx(R9, R12, R3)

	e.Stb(R1, R2, 4)
	e.Sth(R1, R2, 12)
	e.Stbu(R1, R2, -4)
	e.Sthu(R2, R3, -8)
	e.Stbx(R1, R2, R3)
	e.Stbux(R4, R5, R6)
	e.Sthx(R7, R8, R9)
	e.Sthux(R10, R11, R12)

	e.Stfd(F0, R4, -8)
	e.Lfd(F19, R8, -90)
	e.Vaddfp(V1, V2, V0)
	e.Fmr(F0, F31, false)
	e.Fmr(F0, F31, true)
	e.Fadd(F2, F3, F0, false)
	e.Fadd(F2, F3, F0, true)
	e.Fadds(F2, F3, F0, false)
	e.Fdiv(F0, F0, F0, false)
	e.Fdivs(F0, F0, F0, false)
	e.Fmadd(F0, F4, F1, F3, false)
	e.Fmadd(F0, F4, F1, F3, true)
	e.Fmadds(F1, F19, F0, F30, false)
	e.Fmsub(F0, F9, F10, F20, false)
	e.Fmsubs(F1, F9, F10, F20, false)
	e.Fmsubs(F1, F9, F10, F20, true)
	e.Fnabs(F0, F4, false)
	e.Fnabs(F0, F4, true)
	e.Fmul(F1, F3, F9, false)
	e.Fmul(F1, F3, F9, true)
	e.Fmuls(F1, F3, F9, false)
	e.Fneg(F0, F2, false)
	e.Fneg(F0, F2, true)
	e.Fnmadd(F1, F10, F20, F30, false)
	e.Fnmadd(F1, F10, F20, F30, true)
	e.Fnmadds(F30, F20, F10, F0, false)

	e.Fnmsub(F1, F10, F20, F30, false)
	e.Fnmsub(F1, F10, F20, F30, true)
	e.Fnmsubs(F21, F11, F1, F31, false)
	e.Fnmsubs(F21, F11, F1, F31, true)
	e.Frsqrte(F0, F10, false)
	e.Frsqrte(F0, F10, true)
	e.Frsp(F1, F2, false)
	e.Fres(F10, F20, false)
	e.Fsel(F1, F0, F10, F20, false)
	e.Fsel(F1, F0, F10, F20, true)

	e.Fsub(F0, F12, F21, false)
	e.Fsub(F0, F12, F21, true)
	e.Fsubs(F1, F1, F3, false)
	e.Cmpi(CR1, R1, -69)
	e.Cmpl(CR7, R7, R9)
	e.Cmpli(CR2, R9, 23)
	e.Cntlzw(R0, R1, false)

	e.Icbi(R1, R31)
	e.Dcbf(R9, R13)
	e.Dcbst(R12, R3)
	e.Dcbi(R1, R2)
	e.Dcbt(R9, R20)
	e.Dcbtst(R5, R4)
	e.Dcbz(R2, R1)
	e.DcbzL(R13, R16)

	e.Subf(R1, R3, R4, false)
	e.Subfo(R0, R9, R27, false)
	e.Subfo(R0, R9, R27, true)
	e.Addo(R0, R17, R16, false)
	e.Addo(R0, R17, R16, true)
	e.Addc(R15, R21, R7, false)
	e.Addco(R1, R3, R5, false)
	e.Addco(R1, R3, R5, true)
	e.Subfc(R19, R23, R24, false)
	e.Subfc(R19, R23, R24, true)
	e.Subfco(R1, R2, R4, false)
	e.Addeo(R0, R13, R9, false)
	e.Addeo(R0, R13, R9, true)
	e.Adde(R12, R4, R3, false)
	e.Sub(R5, R6, R7, false)
	e.Subo(R5, R6, R7, false)
	e.Subc(R5, R6, R7, false)
	e.Subco(R5, R6, R7, false)
	e.Sube(R5, R6, R7, false)
	e.Subeo(R5, R6, R7, false)

	e.Addic(R0, R4, -4, false)
	e.Addi(R1, R9, 24)
	e.Addic(R1, R4, -40, false)
	e.Addic(R1, R4, -40, true)
	e.Addis(R0, R2, -1)

	e.Addmeo(R9, R10, false)
	e.Addmeo(R9, R10, true)
	e.Addme(R0, R11, false)
	e.Subfic(R1, R2, -8)

	e.Subfme(R1, R9, false)
	e.Subfmeo(R1, R0, false)
	e.Subfmeo(R1, R0, true)
	e.Subfzeo(R9, R31, false)
	e.Subfze(R2, R1, false)
	e.Subfze(R2, R1, true)

	e.Addze(R1, R2, false)
	e.Addzeo(R0, R9, false)
	e.Addzeo(R0, R9, true)
	e.Eieio()
	e.Isync()
	e.Sync()

	e.Divw(R1, R9, R10, false)
	e.Divwo(SP, R2, R3, true)
	e.Mulli(R0, R3, -9)
	e.Mullw(R3, R4, R21, false)
	e.Mullw(R3, R4, R21, true)
	e.Mullwo(R3, R4, R21, false)
	e.Mullwo(R3, R4, R21, true)
	e.Mulhw(R9, R12, R14, false)
	e.Mulhw(R9, R12, R14, true)
	e.Mulhwu(R1, R3, R5, false)
	e.Mulhwu(R1, R3, R5, true)

	e.Divwu(R0, R9, R13, false)
	e.Divwu(R0, R9, R13, true)
	e.Divwuo(R13, SP, R15, false)
	e.Divwuo(R13, SP, R15, true)

	e.Lhbrx(R1, R3, R4)
	e.Lhax(R2, R4, R6)
	e.Lhaux(R9, R13, R15)
	e.Lwbrx(R9, R1, R12)
	e.Lwarx(R12, R14, R16)

	e.Mtcrf(0xFF, SP)
	e.Mtcr(R7)
	e.Mtsr(SR9, R10)
	e.Mfsr(R3, SR7)
	e.Mtsrin(R9, R10)
	e.Mfsrin(R12, R15)
	e.Mfmsr(R9)
	e.Mtmsr(R30)

	e.Mtlr(R29)
	e.Mflr(R20)
	e.Mtctr(R30)
	e.Mfctr(R1)

	e.And(R1, R4, R9, false)
	e.And(R1, R4, R9, true)
	e.Andc(R2, R5, R8, false)
	e.Nand(R3, R6, R7, false)
	e.Or(R7, R10, R2, false)
	e.Or(R7, R10, R2, true)
	e.Orc(R8, R11, R3, false)
	e.Nor(R9, R12, R4, false)
	e.Xor(R1, R12, R23, false)
	e.Xor(R1, R12, R23, true)
	e.Xori(R4, R5, 0x1234)
	e.Xoris(R4, R5, 0x4321)
	e.Andi(R6, R7, 0xF0F0)

	e.PsAbs(F9, F23, false)
	e.PsAbs(F9, F23, true)
	e.PsAdd(F21, F26, F28, false)
	e.PsAdd(F21, F26, F28, true)
	e.PsCmpo0(CR6, F0, F1)
	e.PsCmpo1(CR3, F4, F5)
	e.PsCmpu0(CR1, F30, F31)
	e.PsCmpu1(CR2, F24, F25)
	e.PsDiv(F1, F0, F3, false)
	e.PsDiv(F1, F0, F3, true)
	e.PsMadd(F3, F9, F4, F5, false)
	e.PsMadds0(F3, F9, F4, F5, false)
	e.PsMadds0(F3, F9, F4, F5, true)
	e.PsMadds1(F3, F9, F4, F5, false)
	e.PsMadds1(F3, F9, F4, F5, true)
	e.PsMerge00(F3, F4, F0, false)
	e.PsMerge00(F3, F4, F0, true)
	e.PsMerge01(F3, F4, F0, false)
	e.PsMerge01(F3, F4, F0, true)
	e.PsMerge10(F3, F4, F0, false)
	e.PsMerge10(F3, F4, F0, true)
	e.PsMerge11(F3, F4, F0, false)
	e.PsMerge11(F3, F4, F0, true)
	e.PsMr(F1, F2, false)

	e.PsMsub(F3, F4, F5, F6, false)
	e.PsMsub(F3, F4, F5, F6, true)
	e.PsMul(F4, F9, F10, false)
	e.PsMul(F4, F9, F10, true)
	e.PsMuls0(F4, F9, F10, false)
	e.PsMuls0(F4, F9, F10, true)
	e.PsMuls1(F4, F9, F10, false)
	e.PsMuls1(F4, F9, F10, true)
	e.PsNabs(F15, F19, false)
	e.PsNabs(F15, F19, true)
	e.PsNeg(F15, F19, false)
	e.PsNeg(F15, F19, true)
	e.PsNmadd(F1, F2, F3, F4, false)
	e.PsNmsub(F1, F2, F3, F4, false)
	e.PsRes(F7, F8, false)
	e.PsRsqrte(F0, F3, false)
	e.PsRsqrte(F0, F3, true)

	e.PsSel(F0, F3, F4, F9, false)
	e.PsSel(F0, F3, F4, F9, true)
	e.PsSum0(F3, F4, F9, F10, false)
	e.PsSum0(F3, F4, F9, F10, true)
	e.PsSum1(F1, F2, F3, F4, false)
	e.PsSum1(F1, F2, F3, F4, true)

	e.Rlwinm(R3, R4, 20, 0, 16, false)
	e.Rlwimi(R23, R6, 12, 10, 20, false)
	e.Rotlwi(R1, R2, 5, false)
	e.Rotrwi(R9, R20, 10, false)
	e.Rlwnm(R9, R2, R4, 0, 31, false)
	e.Rfi()
	e.Slw(R9, R10, R11, false)
	e.Srw(R9, R10, R11, false)
	e.Sraw(R9, R10, R11, false)
	e.Srawi(R9, R10, 10, false)
	e.Slwi(R3, R4, 7, false)
	e.Srwi(R5, R6, 9, false)
	e.Tlbsync()
	e.Tlbie(R12)
	e.Rfi()
	e.Extrwi(R4, R10, 5, 10, false)
	e.Extlwi(R3, R9, 11, 17, false)
	e.Oris(R3, R5, 10)
	e.Ori(R2, R1, 0xFFFF)

	labels := []Label{
		e.Ble(), e.Bgt(), e.Blt(), e.Bge(),
		e.Bne(), e.Beq(), e.Bso(), e.Bns(),
		e.Blel(), e.Bgtl(), e.Bltl(), e.Bgel(),
		e.Bnel(), e.Beql(), e.Bsol(), e.Bnsl(),
	}
	for _, l := range labels {
		e.SetLabel(l)
	}
	e.Ud()

	e.Df64(69.420)
	e.Dh(4, 10, 0xFFFF)
	e.Align(4)
	e.Andis(R25, R28, 123)
	e.Dss(2)
	e.Dssall()
	e.Li(R9, -10)
	e.Li(R8, 10)
	e.Liu(R9, 0xFFFE)
	e.Liu(R7, 10)
	e.Lis(R30, 10)
	e.Lis(R9, 0xF000)
	e.PsSel(F0, F1, F9, F3, true)

	e.Liw(R10, 0x8000)
	e.Liw(R12, 0x999)
	e.Liw(R1, 0xFFFFF000)
	e.Liw(R31, 0x12345678)

	label9 := e.Bl()
	e.SetLabel(label9)
	e.Vsubfp(V0, V9, V31)
	e.Clrlwi(R1, R2, 10, false)
	e.Clrrwi(R9, R30, 5, false)
	e.Clrlwi(R27, R20, 19, true)
	e.Setz(R0, R20)
	e.Mr(R4, R5, false)
	e.Mr(R4, R5, true)
	e.Not(R6, R7, false)
	e.Mfcr(R9)
	e.Mfcr(R3)

	e.Repeat(10, func(i int) {
		e.Nop()
		e.Addi(R0, R1, int16(i))
	})

	e.Loop(R3, 69, func() {
		e.Nop()
		e.Isync()
	})

	e.Ds("*boop* *boop* *boop*")
	e.Ds("*boop* *boop* *boop*")

	e.Align(4)
	e.Vnor(V9, V3, V4)
	e.Vor(V10, V31, V20)
	e.Vxor(V1, V2, V3)
	e.Vand(V30, V13, V12)
	e.Vandc(V15, V12, V0)
	e.Vperm(V1, V10, V20, V30)
	e.Vrefp(V17, V23)

	// Ops beyond the original program's coverage.
	e.Cmp(CR0, R3, R4)
	e.Eqv(R1, R2, R3, false)
	e.Eqv(R1, R2, R3, true)
	e.Neg(R4, R5, false)
	e.Nego(R6, R7, false)
	e.Lha(R3, R4, -2)
	e.Lhau(R5, R6, 8)
	e.Sthbrx(R1, R2, R3)
	e.Stwbrx(R4, R5, R6)
	e.Stwcx(R7, R8, R9)
	e.Fabs(F1, F2, false)
	e.Fabs(F1, F2, true)
	e.Fcmpu(CR0, F1, F2)
	e.Fcmpo(CR1, F3, F4)
	e.Fctiw(F5, F6, false)
	e.Fctiwz(F7, F8, false)
	e.Lfs(F1, R3, 16)
	e.Lfsu(F2, R4, 20)
	e.Lfsx(F3, R5, R6)
	e.Lfdu(F4, R7, 24)
	e.Lfdx(F5, R8, R9)
	e.Stfs(F6, R10, 28)
	e.Stfsu(F7, R11, 32)
	e.Stfsx(F8, R12, R13)
	e.Stfdu(F9, R14, 36)
	e.Stfdx(F10, R15, R16)
	e.Crand(0, 1, 2)
	e.Crandc(3, 4, 5)
	e.Creqv(6, 7, 8)
	e.Crnand(9, 10, 11)
	e.Crnor(12, 13, 14)
	e.Cror(15, 16, 17)
	e.Crorc(18, 19, 20)
	e.Crxor(21, 22, 23)
	e.Crset(24)
	e.Crclr(25)
	e.Crmove(26, 27)
	e.Crnot(28, 29)
	e.Mtxer(R3)
	e.Mfxer(R4)
	e.Sc()
	e.Bctr()
	e.Bctrl()
	e.Blr()
	e.BTo(0)
	e.BlTo(4)
}
