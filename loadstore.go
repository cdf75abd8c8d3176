package luma

// Integer loads and stores. Stores keep the historical assembler order with
// the source register first; it still lands in the bit-21 field.

// Lbz emits lbz, load byte and zero.
func (e *Emitter) Lbz(dest, base GPR, offset int16) {
	e.write32(0x88000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lbzu emits lbzu, load byte and zero with update.
func (e *Emitter) Lbzu(dest, base GPR, offset int16) {
	e.write32(0x8C000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lbzx emits lbzx, load byte and zero indexed.
func (e *Emitter) Lbzx(dest, index, base GPR) {
	e.write32(0x7C0000AE | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lbzux emits lbzux, load byte and zero with update indexed.
func (e *Emitter) Lbzux(dest, index, base GPR) {
	e.write32(0x7C0000EE | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lhz emits lhz, load halfword and zero.
func (e *Emitter) Lhz(dest, base GPR, offset int16) {
	e.write32(0xA0000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lhzu emits lhzu, load halfword and zero with update.
func (e *Emitter) Lhzu(dest, base GPR, offset int16) {
	e.write32(0xA4000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lhzx emits lhzx, load halfword and zero indexed.
func (e *Emitter) Lhzx(dest, index, base GPR) {
	e.write32(0x7C00022E | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lhzux emits lhzux, load halfword and zero with update indexed.
func (e *Emitter) Lhzux(dest, index, base GPR) {
	e.write32(0x7C00026E | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lha emits lha, load halfword algebraic.
func (e *Emitter) Lha(dest, base GPR, offset int16) {
	e.write32(0xA8000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lhau emits lhau, load halfword algebraic with update.
func (e *Emitter) Lhau(dest, base GPR, offset int16) {
	e.write32(0xAC000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lhax emits lhax, load halfword algebraic indexed.
func (e *Emitter) Lhax(dest, index, base GPR) {
	e.write32(0x7C0002AE | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lhaux emits lhaux, load halfword algebraic with update indexed.
func (e *Emitter) Lhaux(dest, index, base GPR) {
	e.write32(0x7C0002EE | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lhbrx emits lhbrx, load halfword byte-reversed indexed.
func (e *Emitter) Lhbrx(dest, index, base GPR) {
	e.write32(0x7C00062C | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lwz emits lwz, load word and zero.
func (e *Emitter) Lwz(dest, base GPR, offset int16) {
	e.write32(0x80000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lwzu emits lwzu, load word and zero with update.
func (e *Emitter) Lwzu(dest, base GPR, offset int16) {
	e.write32(0x84000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Lwzx emits lwzx, load word and zero indexed.
func (e *Emitter) Lwzx(dest, index, base GPR) {
	e.write32(0x7C00002E | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lwzux emits lwzux, load word and zero with update indexed.
func (e *Emitter) Lwzux(dest, index, base GPR) {
	e.write32(0x7C00006E | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lwarx emits lwarx, load word and reserve indexed.
func (e *Emitter) Lwarx(dest, index, base GPR) {
	e.write32(0x7C000028 | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lwbrx emits lwbrx, load word byte-reversed indexed.
func (e *Emitter) Lwbrx(dest, index, base GPR) {
	e.write32(0x7C00042C | uint32(dest)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Lmw emits lmw, load multiple words from dest through r31.
func (e *Emitter) Lmw(dest, base GPR, offset int16) {
	e.write32(0xB8000000 | uint32(dest)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stb emits stb, store byte.
func (e *Emitter) Stb(src, base GPR, offset int16) {
	e.write32(0x98000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stbu emits stbu, store byte with update.
func (e *Emitter) Stbu(src, base GPR, offset int16) {
	e.write32(0x9C000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stbx emits stbx, store byte indexed.
func (e *Emitter) Stbx(src, index, base GPR) {
	e.write32(0x7C0001AE | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stbux emits stbux, store byte with update indexed.
func (e *Emitter) Stbux(src, index, base GPR) {
	e.write32(0x7C0001EE | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Sth emits sth, store halfword.
func (e *Emitter) Sth(src, base GPR, offset int16) {
	e.write32(0xB0000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Sthu emits sthu, store halfword with update.
func (e *Emitter) Sthu(src, base GPR, offset int16) {
	e.write32(0xB4000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Sthx emits sthx, store halfword indexed.
func (e *Emitter) Sthx(src, index, base GPR) {
	e.write32(0x7C00032E | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Sthux emits sthux, store halfword with update indexed.
func (e *Emitter) Sthux(src, index, base GPR) {
	e.write32(0x7C00036E | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Sthbrx emits sthbrx, store halfword byte-reversed indexed.
func (e *Emitter) Sthbrx(src, index, base GPR) {
	e.write32(0x7C00072C | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stw emits stw, store word.
func (e *Emitter) Stw(src, base GPR, offset int16) {
	e.write32(0x90000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stwu emits stwu, store word with update.
func (e *Emitter) Stwu(src, base GPR, offset int16) {
	e.write32(0x94000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}

// Stwx emits stwx, store word indexed.
func (e *Emitter) Stwx(src, index, base GPR) {
	e.write32(0x7C00012E | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stwux emits stwux, store word with update indexed.
func (e *Emitter) Stwux(src, index, base GPR) {
	e.write32(0x7C00016E | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stwbrx emits stwbrx, store word byte-reversed indexed.
func (e *Emitter) Stwbrx(src, index, base GPR) {
	e.write32(0x7C00052C | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stwcx emits stwcx., store word conditional indexed. The Rc bit is part of
// the instruction; there is no non-record form.
func (e *Emitter) Stwcx(src, index, base GPR) {
	e.write32(0x7C00012D | uint32(src)<<21 | uint32(index)<<16 | uint32(base)<<11)
}

// Stmw emits stmw, store multiple words from src through r31.
func (e *Emitter) Stmw(src, base GPR, offset int16) {
	e.write32(0xBC000000 | uint32(src)<<21 | uint32(base)<<16 | uint32(uint16(offset)))
}
