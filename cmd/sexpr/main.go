package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jpschroeder/sexpr"
)

const exampleSource = "(let a 1 b 1 (print (eq a b)))"

// rootEnv holds the flag values shared by all commands.
type rootEnv struct {
	expr     string
	logLevel string
}

func rootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:   "sexpr",
		Short: "Evaluate an S-expression and report the result on stderr.",
		Long: `
Evaluates a single expression built from add, mult, div, eq, let and print.
Without --expr the built-in example program is evaluated.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          env.runRoot,
	}

	cmd.PersistentFlags().StringVar(&env.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVarP(&env.expr, "expr", "e", exampleSource, "Expression to evaluate")
	cmd.AddCommand(replCmd(env))

	return cmd
}

func (e *rootEnv) newInterpreter(cmd *cobra.Command) (*sexpr.Interpreter, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.logLevel)); err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", e.logLevel)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return sexpr.New(sexpr.WithOutput(cmd.ErrOrStderr()), sexpr.WithLogger(logger)), nil
}

func (e *rootEnv) runRoot(cmd *cobra.Command, args []string) error {
	in, err := e.newInterpreter(cmd)
	if err != nil {
		return err
	}

	res, err := in.Evaluate(e.expr)
	if err != nil {
		return errors.Wrapf(err, "evaluating %q", e.expr)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s => %s\n", e.expr, sexpr.Print(res))
	return nil
}

func main() {
	cmd := rootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(1)
	}
}
