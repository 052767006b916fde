// Package x_shell is a line-oriented command interpreter over a string trie.
package x_shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/shlex"
	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
	"github.com/rskv-p/strie/constant"
	"github.com/rskv-p/strie/pkg/x_log"
	"github.com/rskv-p/strie/pkg/x_trie"
	"github.com/rskv-p/strie/recover"
)

//---------------------
// Shell
//---------------------

// Shell executes commands against a trie and writes replies to out.
type Shell struct {
	trie    *x_trie.Trie[string]
	out     io.Writer
	prompt  string
	log     zerolog.Logger
	session string
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the prompt printed before each line. Empty disables it.
func WithPrompt(p string) Option {
	return func(s *Shell) { s.prompt = p }
}

// WithLogger replaces the shell logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) { s.log = l }
}

// New creates a shell bound to trie.
func New(trie *x_trie.Trie[string], out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		trie:    trie,
		out:     out,
		session: nuid.Next(),
		log:     x_log.New("shell"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session", s.session).Logger()
	return s
}

// Session returns the id tagging this shell's log lines.
func (s *Shell) Session() string { return s.session }

//---------------------
// Commands
//---------------------

type command struct {
	args  int // exact argument count, -1 for any
	usage string
	run   func(s *Shell, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"set":     {2, "set <key> <value>", (*Shell).cmdSet},
		"get":     {1, "get <key>", (*Shell).cmdGet},
		"del":     {1, "del <key>", (*Shell).cmdDel},
		"len":     {0, "len", (*Shell).cmdLen},
		"stats":   {0, "stats", (*Shell).cmdStats},
		"dump":    {0, "dump", (*Shell).cmdDump},
		"walk":    {0, "walk", (*Shell).cmdWalk},
		"release": {0, "release", (*Shell).cmdRelease},
		"help":    {0, "help", (*Shell).cmdHelp},
		"quit":    {0, "quit", (*Shell).cmdQuit},
		"exit":    {0, "exit", (*Shell).cmdQuit},
	}
}

// Exec runs a single command line. Blank lines and lines starting
// with # are ignored.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", constant.ErrBadArgs, err)
	}
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", constant.ErrUnknownCommand, fields[0])
	}
	if cmd.args >= 0 && len(args) != cmd.args {
		return fmt.Errorf("%w: usage: %s", constant.ErrBadArgs, cmd.usage)
	}
	s.log.Debug().Str("cmd", name).Strs("args", args).Msg("exec")
	return cmd.run(s, args)
}

// Run reads commands from in until EOF, quit, or ctx is done.
// Command errors are reported to out and do not stop the loop. A panic
// outside command execution is logged and ends the session.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.log.Info().Msg("session started")
	defer func() {
		s.log.Info().Int("values", s.trie.Len()).Msg("session ended")
	}()
	defer recover.RecoverWithContext("shell", "run", s.session)

	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		err := recover.RecoverFunc("shell.exec", func() error { return s.Exec(line) })
		switch {
		case err == nil:
		case errors.Is(err, constant.ErrQuit):
			return nil
		default:
			fmt.Fprintf(s.out, "ERR %v\n", err)
			s.log.Warn().Err(err).Str("line", line).Msg("command failed")
		}
	}
}

func (s *Shell) cmdSet(args []string) error {
	s.trie.SetString(args[0], args[1])
	fmt.Fprintln(s.out, "OK")
	return nil
}

func (s *Shell) cmdGet(args []string) error {
	s.reply(s.trie.GetString(args[0]))
	return nil
}

func (s *Shell) cmdDel(args []string) error {
	s.reply(s.trie.DeleteString(args[0]))
	return nil
}

func (s *Shell) reply(v string, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, "(nil)")
		return
	}
	fmt.Fprintln(s.out, v)
}

func (s *Shell) cmdLen([]string) error {
	fmt.Fprintln(s.out, s.trie.Len())
	return nil
}

func (s *Shell) cmdStats([]string) error {
	b, err := json.Marshal(s.trie.Stats())
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(b))
	return nil
}

func (s *Shell) cmdDump([]string) error {
	s.trie.Dump(s.out)
	return nil
}

func (s *Shell) cmdWalk([]string) error {
	s.trie.Walk(func(key []byte, v string) bool {
		fmt.Fprintf(s.out, "%q => %s\n", key, v)
		return true
	})
	return nil
}

func (s *Shell) cmdRelease([]string) error {
	n := s.trie.Len()
	s.trie.Release()
	s.log.Info().Int("released", n).Msg("trie released")
	fmt.Fprintln(s.out, "OK")
	return nil
}

func (s *Shell) cmdHelp([]string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "  %s\n", commands[name].usage)
	}
	return nil
}

func (s *Shell) cmdQuit([]string) error {
	return constant.ErrQuit
}
