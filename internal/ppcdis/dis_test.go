package ppcdis

import (
	"encoding/binary"
	"strings"
	"testing"
)

// TestOp checks the decoder bridge against a few well-known encodings.
func TestOp(t *testing.T) {
	cases := []struct {
		word uint32
		op   string
	}{
		{0x7C642A14, "add"},    // add r3,r4,r5
		{0x80610000, "lwz"},    // lwz r3,0(r1)
		{0x90610000, "stw"},    // stw r3,0(r1)
		{0x60000000, "ori"},    // ori r0,r0,0
		{0x3860FFFF, "addi"},   // addi r3,r0,-1
		{0x5483A020, "rlwinm"}, // rlwinm r3,r4,20,0,16
	}
	for _, c := range cases {
		t.Run(c.op, func(t *testing.T) {
			op, err := Op(c.word, binary.BigEndian)
			if err != nil {
				t.Fatalf("decode %#08x: %v", c.word, err)
			}
			if op != c.op {
				t.Errorf("wrong op for %#08x: wanted %s, have %s", c.word, c.op, op)
			}
		})
	}
}

// TestListing checks shape: one line per word, undecodable words rendered
// as .long.
func TestListing(t *testing.T) {
	code := make([]byte, 0, 12)
	for _, w := range []uint32{0x7C642A14, 0x00000000, 0x4E800020} {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], w)
		code = append(code, buf[:]...)
	}
	out, err := Listing(code, binary.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("wanted 3 lines, have %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "add") {
		t.Errorf("first line should decode as add: %q", lines[0])
	}
	if !strings.Contains(lines[1], ".long") {
		t.Errorf("all-zero word should render as .long: %q", lines[1])
	}
}

// TestListingUnaligned checks that ragged input is rejected.
func TestListingUnaligned(t *testing.T) {
	if _, err := Listing(make([]byte, 6), binary.BigEndian); err == nil {
		t.Error("expected error for non-word input")
	}
}
