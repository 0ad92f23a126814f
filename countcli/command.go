package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/fjl/countonme/internal/calc"
	"github.com/fjl/countonme/internal/config"
)

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "countcli",
		Usage:     "Four-function calculator",
		ArgsUsage: "[key...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultPath(userConfigDir()),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print events as JSON lines",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if cmd.Bool("debug") {
				cfg.LogLevel = "debug"
			}
			s := newSession(cfg, stdout, stderr, cmd.Bool("json"))
			if cmd.NArg() > 0 {
				return s.pressLine(cmd.Args().Slice())
			}
			return s.run(ctx, stdin)
		},
	}
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// session connects an accumulator to the terminal.
type session struct {
	acc    *calc.Accumulator
	out    io.Writer
	errOut io.Writer
	enc    *json.Encoder // set in JSON mode
	werr   error
}

func newSession(cfg *config.Config, stdout, stderr io.Writer, jsonMode bool) *session {
	s := &session{out: stdout, errOut: stderr}
	if jsonMode {
		s.enc = json.NewEncoder(stdout)
	}
	opts := cfg.AccumulatorOptions(cfg.Logger(stderr))
	opts = append(opts, calc.WithNotify(s.handleEvent))
	s.acc = calc.New(opts...)
	return s
}

// run presses the keys of each input line until EOF.
func (s *session) run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		keys := strings.Fields(sc.Text())
		if len(keys) == 0 {
			continue
		}
		if err := s.pressLine(keys); err != nil {
			return err
		}
	}
	return sc.Err()
}

// pressLine presses keys in order and then shows the display. Calculator
// errors are reported but don't stop the session.
func (s *session) pressLine(keys []string) error {
	for _, k := range keys {
		s.acc.Press(k)
	}
	if s.enc == nil {
		s.printf(s.out, "%s\n", s.acc.Text())
	}
	return s.werr
}

func (s *session) handleEvent(ev calc.Event) {
	if s.enc != nil {
		if err := calc.WriteEvent(s.enc, ev); err != nil && s.werr == nil {
			s.werr = err
		}
		return
	}
	if ev, ok := ev.(*calc.Failed); ok {
		s.printf(s.errOut, "error: %v\n", ev.Err)
	}
}

func (s *session) printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil && s.werr == nil {
		s.werr = err
	}
}
