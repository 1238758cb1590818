package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jpschroeder/sexpr"
)

const (
	historyFile = ".sexpr_history"
	prompt      = "user=> "
)

func replCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions line by line, evaluating each and printing its result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := root.newInterpreter(cmd)
			if err != nil {
				return err
			}
			if isInputRedirected(cmd.InOrStdin()) {
				return readEvalPrintLines(in, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return readEvalPrintLoop(in, cmd.OutOrStdout())
		},
	}
}

// readEvalPrint evaluates one line and renders either its value or the error.
func readEvalPrint(in *sexpr.Interpreter, line string) string {
	val, err := in.Evaluate(line)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return sexpr.Print(val)
}

func readEvalPrintLines(in *sexpr.Interpreter, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintln(w, readEvalPrint(in, line))
	}
	return scanner.Err()
}

func readEvalPrintLoop(in *sexpr.Interpreter, w io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		fmt.Fprintln(w, readEvalPrint(in, line))
	}
}

func isInputRedirected(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	fi, err := f.Stat()
	if err != nil {
		return true
	}
	return (fi.Mode() & os.ModeCharDevice) == 0
}
