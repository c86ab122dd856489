package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/google/cel-go/cel"
	"github.com/spf13/cobra"

	"github.com/zero-day-ai/enums"
	"github.com/zero-day-ai/enums/celenum"
	"github.com/zero-day-ai/enums/definition"
	"github.com/zero-day-ai/enums/types"
)

// app holds the state shared by all subcommands.
type app struct {
	out     io.Writer
	errOut  io.Writer
	defs    string
	verbose bool

	logger  *slog.Logger
	catalog *enums.Catalog
}

// newRootCmd creates the base command when called without any subcommands.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "enumdemo",
		Short:         "Convert between enum values and their canonical names",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.demo()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.defs, "defs", "", "load enumerations from an enums.yaml file or directory")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newTypesCmd(),
		a.newListCmd(),
		a.newNameCmd(),
		a.newParseCmd(),
		a.newEvalCmd(),
		a.newMoveCmd(),
	)

	return root
}

func (a *app) setup() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	a.catalog = enums.NewCatalog()
	a.catalog.Register(types.ColorTable)
	a.catalog.Register(types.DirectionTable)

	if a.defs == "" {
		return nil
	}

	f, err := definition.Load(a.defs)
	if err != nil {
		return err
	}
	if err := f.Register(a.catalog, enums.WithLogger(a.logger)); err != nil {
		return err
	}
	a.logger.Debug("loaded enum definitions", "path", a.defs, "count", len(f.Enums))
	return nil
}

// demo prints the color names, round-trips "Green" and prints the direction
// names.
func (a *app) demo() error {
	for name := range types.ColorTable.Names() {
		fmt.Fprintln(a.out, name)
	}

	index := slices.Index(types.Colors(), "Green")
	if c, ok := types.ParseColor("Green"); ok && c == types.Color(index) {
		fmt.Fprintln(a.out, "Success!!!")
	}

	for name := range types.DirectionTable.Names() {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

func (a *app) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered enum types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.catalog.TypeNames() {
				e, _ := a.catalog.Get(name)
				fmt.Fprintf(a.out, "%s\t%d\n", name, e.Len())
			}
			return nil
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list TYPE",
		Short: "Print the names of an enum type in ordinal order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			for i, name := range e.Strings() {
				fmt.Fprintf(a.out, "%d\t%s\n", i, name)
			}
			return nil
		},
	}
}

func (a *app) newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name TYPE ORDINAL",
		Short: "Print the canonical name of an ordinal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			ordinal, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid ordinal %q: %w", args[1], err)
			}
			name, err := e.NameOf(ordinal)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, name)
			return nil
		},
	}
}

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TYPE NAME",
		Short: "Print the ordinal of a canonical name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			ordinal, ok := e.OrdinalOf(args[1])
			if !ok {
				return enums.NewNotFoundError("parse", e.TypeName()).WithContext(map[string]any{
					"name": strconv.Quote(args[1]),
				})
			}
			fmt.Fprintln(a.out, ordinal)
			return nil
		},
	}
}

func (a *app) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a CEL expression with the enum functions available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cel.NewEnv(celenum.Library(a.catalog))
			if err != nil {
				return err
			}
			ast, iss := env.Compile(args[0])
			if iss.Err() != nil {
				return iss.Err()
			}
			prg, err := env.Program(ast)
			if err != nil {
				return err
			}
			out, _, err := prg.Eval(map[string]any{})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out.Value())
			return nil
		},
	}
}

func (a *app) newMoveCmd() *cobra.Command {
	dir := types.Up
	flag := types.NewFlag(types.DirectionTable, &dir)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Print a direction and its opposite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "%s -> %s\n", dir, dir.Opposite())
			return nil
		},
	}
	cmd.Flags().Var(flag, "direction", "direction to move "+flag.Allowed())
	return cmd
}
