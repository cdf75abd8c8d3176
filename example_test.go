package luma_test

import (
	"fmt"

	"github.com/lumagen/luma"
)

// mmioReg is a register file of a hypothetical coprocessor.
type mmioReg uint8

// extEmitter shows the extension mechanism: embed *Emitter and build new
// mnemonics on the word-append primitive.
type extEmitter struct {
	*luma.Emitter
}

// copro emits a made-up instruction in the usual D-form layout.
func (e extEmitter) copro(dest, src mmioReg) {
	e.EmitWord(0x6000003A | uint32(dest)<<21 | uint32(src)<<16)
}

func Example_extension() {
	e := extEmitter{luma.New(luma.FixedSize, 64)}
	e.copro(2, 3)
	e.Blr()
	for _, w := range e.Words() {
		fmt.Printf("%08X\n", w)
	}
	// Output:
	// 6043003A
	// 4E800020
}

func Example_countedLoop() {
	e := luma.New(luma.FixedSize, 256)
	e.Loop(luma.R3, 3, func() {
		e.Nop()
	})
	e.Blr()
	for _, w := range e.Words() {
		fmt.Printf("%08X\n", w)
	}
	// Output:
	// 38600003
	// 60000000
	// 3463FFFF
	// 4082FFF8
	// 4E800020
}
