// Package ppcdis renders emitted PowerPC code as an assembly listing.
//
// It is a debugging aid built on the ppc64 decoder from golang.org/x/arch,
// which covers the classic 32-bit encodings but not the Gekko/Broadway
// paired-single extension. Words the decoder rejects render as raw .long
// directives; paired-single words share primary opcode 4 with the vector
// instructions, so they either render as .long or decode as an unrelated
// vector instruction. Do not treat the listing as authoritative for
// opcode-4 instructions.
package ppcdis

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/arch/ppc64/ppc64asm"
	"golang.org/x/xerrors"
)

// Listing disassembles code, which must be a whole number of words in the
// given byte order, into one "offset: word  text" line per instruction.
func Listing(code []byte, ord binary.ByteOrder) (string, error) {
	if len(code)%4 != 0 {
		return "", xerrors.Errorf("code length %d is not a whole number of words", len(code))
	}
	var sb strings.Builder
	for off := 0; off < len(code); off += 4 {
		word := ord.Uint32(code[off:])
		text := ".long " + fmt.Sprintf("%#08x", word)
		if inst, err := ppc64asm.Decode(code[off:off+4], ord); err == nil {
			text = ppc64asm.GNUSyntax(inst, uint64(off))
		}
		fmt.Fprintf(&sb, "%6x:\t%08x\t%s\n", off, word, text)
	}
	return sb.String(), nil
}

// Op returns the decoder's mnemonic for a single instruction word, or an
// error if the word does not decode.
func Op(word uint32, ord binary.ByteOrder) (string, error) {
	var buf [4]byte
	ord.PutUint32(buf[:], word)
	inst, err := ppc64asm.Decode(buf[:], ord)
	if err != nil {
		return "", xerrors.Errorf("decoding %#08x: %w", word, err)
	}
	return inst.Op.String(), nil
}
