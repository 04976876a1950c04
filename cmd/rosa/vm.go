package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"rosa/internal/dynint"
	"rosa/internal/trace"
	"rosa/internal/vm"
)

// bytecodeFile is the on-disk representation of a compiled chunk, msgpack
// encoded with extension .rbc ("rosa bytecode"). It holds vm.Chunk's code
// and flattens its constant pool into ConstData and ConstOffsets;
// chunkToFile and fileToChunk convert between the two.
type bytecodeFile struct {
	Code        []byte   `msgpack:"code"`
	ConstData   []byte   `msgpack:"const_data"`
	ConstOffsets []uint32 `msgpack:"const_offsets"`
}

func chunkToFile(c vm.Chunk) bytecodeFile {
	return bytecodeFile{Code: c.Code, ConstData: c.Pool.Data, ConstOffsets: c.Pool.Offsets}
}

func fileToChunk(bf bytecodeFile) vm.Chunk {
	return vm.Chunk{Code: bf.Code, Pool: vm.ConstantPool{Data: bf.ConstData, Offsets: bf.ConstOffsets}}
}

func newVMCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vm",
		Short: "Run compiled Rosa bytecode",
	}
	cmd.AddCommand(newVMRunCmd(flags), newVMDemoCmd(flags))
	return cmd
}

func newVMRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file.rbc>",
		Short: "Load and execute a compiled .rbc bytecode file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(flags)
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var bf bytecodeFile
			if err := msgpack.Unmarshal(data, &bf); err != nil {
				return fmt.Errorf("decoding bytecode file: %w", err)
			}
			machine := vm.New(fileToChunk(bf), cfg.VM.StackBytes)
			ctx := trace.WithTracer(context.Background(), tracerFromConfig(cfg))
			if err := machine.Run(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), machine.ExitCode())
			return nil
		},
	}
}

func newVMDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in sample chunk that pushes two u8 constants, adds them, and exits",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(flags)
			chunk := demoChunk()
			machine := vm.New(chunk, cfg.VM.StackBytes)
			ctx := trace.WithTracer(context.Background(), tracerFromConfig(cfg))
			if err := machine.Run(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), machine.ExitCode())
			return nil
		},
	}
}

// demoChunk builds a tiny program: push the constants 50 and 51, add them
// as u8, and exit with the sum.
func demoChunk() vm.Chunk {
	pool := vm.NewConstantPool()
	a := pool.Add([]byte{50})
	b := pool.Add([]byte{51})

	var code []byte
	code = append(code, byte(vm.OpConst))
	code, _ = dynint.Encode(code, uint64(a))
	code = append(code, byte(vm.OpConst))
	code, _ = dynint.Encode(code, uint64(b))
	code = append(code, byte(vm.OpAddU8))
	code = append(code, byte(vm.OpExit))

	return vm.Chunk{Code: code, Pool: pool}
}
