// Command objpropdump decodes an ObjectProperty blob against a registry
// and prints the resulting value tree as JSON. It is a thin consumer of
// the deserializer package, grounded on hailam-genfile/cmd/cli/main.go's
// composition-root style (flags parsed up front, a single Run closure
// over the already-constructed collaborators).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finchtower/objprop/deserializer"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/internal/pool"
	"github.com/finchtower/objprop/registryio"
)

// binPreamble is the higher-layer marker spec.md §6 assigns to "this blob
// is non-shallow, with a leading stateful-flags word" — it is stripped
// here, before Feed ever sees the buffer.
var binPreamble = []byte("BINd")

func main() {
	var registryPath, inputPath string

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Decode an ObjectProperty blob and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, registryPath, inputPath)
		},
	}
	dumpCmd.Flags().StringVar(&registryPath, "registry", "", "path to the type registry (JSON, optionally compressed)")
	dumpCmd.Flags().StringVar(&inputPath, "input", "", "path to the ObjectProperty blob to decode")
	dumpCmd.MarkFlagRequired("registry")
	dumpCmd.MarkFlagRequired("input")

	root := &cobra.Command{
		Use:   "objpropdump",
		Short: "Decode ObjectProperty blobs against a registry",
	}
	root.AddCommand(dumpCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, registryPath, inputPath string) error {
	types, err := registryio.Load(registryPath)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var opts []deserializer.Option
	if bytes.HasPrefix(data, binPreamble) {
		data = data[len(binPreamble):]
		opts = append(opts, deserializer.WithShallow(false), deserializer.WithFlags(format.STATEFUL_FLAGS))
	}

	dopts, err := deserializer.NewOptions(opts...)
	if err != nil {
		return fmt.Errorf("building options: %w", err)
	}

	d := deserializer.New(dopts, types)
	if err := d.Feed(data, pool.NewScratchBuffer(0)); err != nil {
		return fmt.Errorf("feeding data: %w", err)
	}

	v, err := d.Deserialize()
	if err != nil {
		return fmt.Errorf("decoding object: %w", err)
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
