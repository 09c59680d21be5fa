package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/render"
	"github.com/ukaji3/sheetwise-go/pkg/sheetwise/session"
)

const sessionHelp = `Commands:
  open [path]      load a spreadsheet (prompts when no path is given)
  column <name>    analyse a column
  chart bar|pie    switch the chart kind
  export           export the table to PDF
  table [n]        print the first n rows
  columns          list columns
  history          show the action history
  help             show this help
  quit             leave the session`

func (a *app) sessionCmd() *cobra.Command {
	var chartOut string
	cmd := &cobra.Command{
		Use:   "session [file]",
		Short: "Start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(a.in)
			dialog := session.NewPromptDialog(in, a.out)
			ctrl := a.newController(dialog, dialog, chartOut, true)

			s := &repl{app: a, ctrl: ctrl, in: in}
			if len(args) == 1 {
				s.exec(cmd.Context(), "open "+args[0])
			}
			return s.run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&chartOut, "chart-out", "sheetwise-chart.png", "PNG file the chart is drawn to (empty disables charts)")
	return cmd
}

// repl reads commands line by line and drives the controller.
type repl struct {
	app  *app
	ctrl *session.Controller
	in   *bufio.Reader
}

func (s *repl) run(ctx context.Context) error {
	out := s.app.out
	fmt.Fprintln(out, `sheetwise session. Type "help" for commands.`)
	for {
		fmt.Fprint(out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if quit := s.exec(ctx, strings.TrimSpace(line)); quit {
			return nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
// Command failures are already recorded in the history, so they are shown
// and the session continues.
func (s *repl) exec(ctx context.Context, line string) bool {
	out := s.app.out
	if line == "" {
		return false
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	before := len(s.ctrl.History())
	switch strings.ToLower(name) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(out, sessionHelp)
		return false
	case "open":
		if arg == "" {
			_ = s.ctrl.LoadFile(ctx)
		} else {
			_ = s.ctrl.LoadPath(ctx, arg)
		}
	case "column", "col":
		if res, err := s.ctrl.SelectColumn(ctx, arg); res != nil && err == nil {
			_ = printAnalysis(out, res)
		}
	case "chart":
		kind, err := render.ParseChartKind(arg)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return false
		}
		_ = s.ctrl.ChangeChartType(ctx, kind)
	case "export":
		_, _ = s.ctrl.ExportPDF(ctx)
	case "table":
		table := s.ctrl.Table()
		if table == nil {
			fmt.Fprintln(out, "No file loaded.")
			return false
		}
		limit := defaultLimit
		if arg != "" {
			if _, err := fmt.Sscanf(arg, "%d", &limit); err != nil {
				fmt.Fprintf(out, "Error: invalid row count %q\n", arg)
				return false
			}
		}
		_ = printTable(out, table, limit)
		return false
	case "columns":
		table := s.ctrl.Table()
		if table == nil {
			fmt.Fprintln(out, "No file loaded.")
			return false
		}
		_ = printColumns(out, table, s.app.cfg.Classifier.Sample)
		return false
	case "history":
		printHistory(out, s.ctrl.History())
		return false
	default:
		fmt.Fprintf(out, "Unknown command %q. Type \"help\" for commands.\n", name)
		return false
	}

	// Echo what the action recorded, oldest first.
	entries := s.ctrl.History()
	for i := len(entries) - before - 1; i >= 0; i-- {
		fmt.Fprintln(out, entries[i].Message)
	}
	return false
}
