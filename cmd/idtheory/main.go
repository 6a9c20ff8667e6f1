// Command idtheory generates identifiers from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theory-cloud/idtheory"
)

var (
	count   int
	verbose bool

	gen *idtheory.Generator
)

var rootCmd = &cobra.Command{
	Use:           "idtheory",
	Short:         "Generate UUIDs, object identifiers, and ULIDs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log := zap.NewNop()
		if verbose {
			var err error
			if log, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
		}
		gen = idtheory.New(idtheory.WithLogger(log))
		return nil
	},
}

var v3Cmd = &cobra.Command{
	Use:   "v3 <namespace> <name>",
	Short: "Derive a version 3 (MD5 name-based) UUID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := gen.NewV3(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var v5Cmd = &cobra.Command{
	Use:   "v5 <namespace> <name>",
	Short: "Derive a version 5 (SHA-1 name-based) UUID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := gen.NewV5(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var v4Cmd = &cobra.Command{
	Use:   "v4",
	Short: "Generate random version 4 UUIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, gen.NewV4)
	},
}

var oidCmd = &cobra.Command{
	Use:   "oid",
	Short: "Generate 24-character object identifiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, gen.NewObjectID)
	},
}

var prefixedCmd = &cobra.Command{
	Use:   "prefixed <namespace>",
	Short: "Generate checksum-prefixed object identifiers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, func() string { return gen.NewPrefixedID(args[0]) })
	},
}

var ulidCmd = &cobra.Command{
	Use:   "ulid",
	Short: "Generate lexicographically sortable ULIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(cmd, gen.NewULID)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <candidate>",
	Short: "Check a string against the canonical UUID shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !idtheory.IsValidUUID(args[0]) {
			return fmt.Errorf("invalid UUID shape: %q", args[0])
		}
		version, _ := idtheory.Version(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "valid (version %d)\n", version)
		return nil
	},
}

func emit(cmd *cobra.Command, next func() string) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	for range count {
		fmt.Fprintln(cmd.OutOrStdout(), next())
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&count, "count", "n", 1, "number of identifiers to generate")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation diagnostics")
	rootCmd.AddCommand(v3Cmd, v4Cmd, v5Cmd, oidCmd, prefixedCmd, ulidCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "idtheory: %v\n", err)
		os.Exit(1)
	}
}
