package unsafewx

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc allocates a block of W^X memory with room for at least n bytes,
// rounded up to whole pages. Panics if n < 0.
func Alloc(n int) (*Block, error) {
	if n < 0 {
		panic(fmt.Errorf("wx: cannot allocate %d bytes: negative values are illegal", n))
	}
	ps := windows.Getpagesize()
	c := (n + ps - 1) / ps * ps
	if c == 0 {
		c = ps
	}
	logv("allocating", n, "bytes rounded up to", c)
	p, err := windows.VirtualAlloc(0, uintptr(c), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		logv("error during alloc:", err)
		return nil, err
	}
	logv("obtained", c, "bytes at", fmt.Sprintf("%#x", p))
	return &Block{mem: unsafe.Slice((*byte)(unsafe.Pointer(p)), c)}, nil
}

// Exec marks the block as executable. Following this, any write operations
// panic, and functions assembled within may be called.
func (b *Block) Exec() error {
	logv("marking data at", fmt.Sprintf("%#x", b.Addr()), "with len", b.n, "cap", len(b.mem), "executable")
	var old uint32
	if err := windows.VirtualProtect(b.Addr(), uintptr(len(b.mem)), windows.PAGE_EXECUTE_READ, &old); err != nil {
		logv("error during protect:", err)
		return err
	}
	b.x = true
	// MSDN says FlushInstructionCache should follow so the CPU sees the new
	// executable memory; on a PowerPC host an isync/icbi sequence before
	// jumping in is the caller's job either way.
	return nil
}

// Close releases the block's memory. Following this, b.IsValid returns
// false.
func (b *Block) Close() error {
	if !b.IsValid() {
		return ErrInvalidClose
	}
	logv("freeing data at", fmt.Sprintf("%#x", b.Addr()), "with len", b.n, "cap", len(b.mem))
	if err := windows.VirtualFree(b.Addr(), 0, windows.MEM_RELEASE); err != nil {
		logv("error during free:", err)
		return err
	}
	b.mem = nil
	return nil
}
