package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/nspcc-dev/txdump/cli/decode"
	"github.com/nspcc-dev/txdump/cli/options"
	"github.com/nspcc-dev/txdump/pkg/config"
	"github.com/urfave/cli"
)

const prompt = "\033[32mtxdump>\033[0m " // green prompt

// Shell is an interactive decoding shell.
type Shell struct {
	shell *cli.App
	rl    *readline.Instance
	done  bool
}

// NewCommands returns the 'shell' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:      "shell",
		Usage:     "Start an interactive shell to decode payloads one by one",
		UsageText: "shell [--config-file <file>] [--debug]",
		Description: `Reads commands (decode, types, swap, exit) line by line. Arguments
   are split the way a POSIX shell does it. Configuration given to this command
   is used by every command executed in the shell unless overridden.
`,
		Action: startShell,
		Flags:  options.Common,
	}}
}

func startShell(ctx *cli.Context) error {
	cfg, log, cerr := options.GetEnvironment(ctx)
	if cerr != nil {
		return cerr
	}
	defer func() { _ = log.Sync() }()
	if _, err := cfg.Table(); err != nil {
		return cli.NewExitError(err, 1)
	}

	s, err := New(cfg, &readline.Config{
		Prompt: prompt,
		Stdout: ctx.App.Writer,
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log.Debug("starting shell")
	return s.Run()
}

// New creates a shell using the given base configuration and readline
// settings.
func New(cfg config.Config, rlCfg *readline.Config) (*Shell, error) {
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	s := &Shell{rl: rl}

	app := cli.NewApp()
	app.Name = "txdump"
	app.Usage = "Transaction payload decoding shell"
	app.UsageText = "command [arguments...]"
	app.HideVersion = true
	app.Writer = rl.Stdout()
	app.ErrWriter = rl.Stderr()
	app.Metadata = map[string]interface{}{
		options.ConfigKey:  cfg,
		decode.NoPromptKey: true,
	}
	// Command errors are printed by Run, they're not fatal.
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Commands = append(decode.NewCommands(), cli.Command{
		Name:   "exit",
		Usage:  "Exit the shell",
		Action: s.handleExit,
	})
	s.shell = app
	return s, nil
}

// Run reads commands until 'exit', EOF or interrupt.
func (s *Shell) Run() error {
	defer s.rl.Close()
	for !s.done {
		line, err := s.rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil // OK, stop execution.
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err) // Critical error, stop execution.
		}

		args, err := shellquote.Split(line)
		if err != nil {
			writeErr(s.shell.ErrWriter, fmt.Errorf("failed to parse arguments: %w", err))
			continue // Not a critical error, continue execution.
		}
		if len(args) == 0 {
			continue
		}

		err = s.shell.Run(append([]string{s.shell.Name}, args...))
		if err != nil {
			writeErr(s.shell.ErrWriter, err)
		}
	}
	return nil
}

func (s *Shell) handleExit(*cli.Context) error {
	s.done = true
	return nil
}

func writeErr(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}
