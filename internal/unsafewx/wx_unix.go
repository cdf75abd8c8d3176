//go:build unix

package unsafewx

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc allocates a block of W^X memory with room for at least n bytes,
// rounded up to whole pages. Panics if n < 0.
func Alloc(n int) (*Block, error) {
	if n < 0 {
		panic(fmt.Errorf("wx: cannot allocate %d bytes: negative values are illegal", n))
	}
	ps := unix.Getpagesize()
	c := (n + ps - 1) / ps * ps
	if c == 0 {
		// Never mmap zero bytes; Mmap keeps a special region for those and
		// we must not change its protections later.
		c = ps
	}
	logv("allocating", n, "bytes rounded up to", c)
	mem, err := unix.Mmap(-1, 0, c, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		logv("error during alloc:", err)
		return nil, err
	}
	logv("obtained", c, "bytes at", fmt.Sprintf("%#x", &mem[0]))
	return &Block{mem: mem}, nil
}

// Exec marks the block as executable. Following this, any write operations
// panic, and functions assembled within may be called.
func (b *Block) Exec() error {
	logv("marking data at", fmt.Sprintf("%#x", b.Addr()), "with len", b.n, "cap", len(b.mem), "executable")
	if err := unix.Mprotect(b.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		logv("error during protect:", err)
		return err
	}
	b.x = true
	return nil
}

// Close releases the block's memory. Following this, b.IsValid returns
// false.
func (b *Block) Close() error {
	if !b.IsValid() {
		return ErrInvalidClose
	}
	logv("freeing data at", fmt.Sprintf("%#x", b.Addr()), "with len", b.n, "cap", len(b.mem))
	if err := unix.Munmap(b.mem); err != nil {
		logv("error during free:", err)
		return err
	}
	b.mem = nil
	return nil
}
