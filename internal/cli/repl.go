package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const (
	replPrompt      = "calc> "
	historyFileName = ".calc_history"
)

func newReplCmd(o *options) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if historyFile == "" {
				historyFile = defaultHistoryFile()
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          replPrompt,
				HistoryFile:     historyFile,
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
				Stdin:           io.NopCloser(cmd.InOrStdin()),
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = rl.Close() }()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Safe calculator. Type .help for commands, .quit to exit")

			sess := &replSession{engine: o.engine(), out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if quit := sess.handle(line); quit {
					return nil
				}
			}
		},
	}

	cmd.Flags().StringVar(&historyFile, "history-file", "", "readline history file (default ~/"+historyFileName+")")

	return cmd
}

type replSession struct {
	engine *calc.Engine
	out    io.Writer
	errOut io.Writer
	last   *float64
}

// handle processes one input line and reports whether the session should end.
func (s *replSession) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		switch strings.ToLower(line) {
		case ".quit", ".exit":
			return true
		case ".help":
			printReplHelp(s.out)
		case ".last":
			if s.last == nil {
				_, _ = fmt.Fprintln(s.errOut, "no result yet")
			} else {
				_, _ = fmt.Fprintln(s.out, formatNumber(*s.last))
			}
		default:
			_, _ = fmt.Fprintf(s.errOut, "unknown command %s, try .help\n", line)
		}
		return false
	}

	v, err := s.engine.Evaluate(line)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "error: %s [%s]\n", err, calc.KindOf(err))
		return false
	}
	s.last = &v
	_, _ = fmt.Fprintln(s.out, formatNumber(v))
	return false
}

func printReplHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, `Enter an expression using numbers, + - * /, parentheses and spaces.
  .last   print the previous result
  .help   show this help
  .quit   exit (also .exit or Ctrl-D)`)
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}
