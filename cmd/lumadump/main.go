// lumadump maintains the emitter's golden regression image and inspects
// emitted binaries.
//
//	lumadump gen -o golden.bin     regenerate the regression image
//	lumadump verify golden.bin     byte-compare a fresh emission against it
//	lumadump dis code.bin          disassemble a dumped image
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumagen/luma"
	"github.com/lumagen/luma/internal/ppcdis"
	"github.com/lumagen/luma/internal/regress"
)

func emitRegress() *luma.Emitter {
	e := luma.New(luma.AutoGrow, luma.DefaultBufferSize)
	regress.Emit(e)
	return e
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q (want little or big)", name)
}

func main() {
	root := &cobra.Command{
		Use:   "lumadump",
		Short: "PowerPC emitter regression and inspection tool",
	}
	root.CompletionOptions.DisableDefaultCmd = true

	var out string
	gen := &cobra.Command{
		Use:   "gen",
		Short: "Emit the regression program and dump it",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := emitRegress()
			if err := e.Dump(out); err != nil {
				return err
			}
			fmt.Printf("dumped %d bytes to %s\n", e.Len(), out)
			return nil
		},
	}
	gen.Flags().StringVarP(&out, "out", "o", "internal/regress/testdata/golden.bin", "output path")

	verify := &cobra.Command{
		Use:   "verify <golden.bin>",
		Short: "Byte-compare a fresh emission against a golden image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			have := emitRegress().Code()
			if len(want) != len(have) {
				return fmt.Errorf("size mismatch: golden %d bytes, emitted %d bytes", len(want), len(have))
			}
			for i := range want {
				if want[i] != have[i] {
					return fmt.Errorf("mismatch at byte %d: expected %02X, got %02X", i, want[i], have[i])
				}
			}
			fmt.Println("test passed successfully")
			return nil
		},
	}

	var order string
	dis := &cobra.Command{
		Use:   "dis <code.bin>",
		Short: "Disassemble a dumped image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ord, err := byteOrder(order)
			if err != nil {
				return err
			}
			code, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			listing, err := ppcdis.Listing(code, ord)
			if err != nil {
				return err
			}
			fmt.Print(listing)
			return nil
		},
	}
	dis.Flags().StringVar(&order, "order", "little", "byte order of the image (little or big)")

	root.AddCommand(gen, verify, dis)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
