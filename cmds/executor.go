package cmds

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// Executor runs a command line against a set of named commands.
type Executor struct {
	commands map[string]*Command
	// Usage is where PrintUsage writes, os.Stderr if nil
	Usage io.Writer
}

var ErrUnknownCommand = errors.New("unknown command")

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Execute consumes args from the left. Each command takes its arguments, then the remaining
// args are matched against the defined commands plus the subcommands of every command run so far.
func (p *Executor) Execute(args []string) (err error) {
	scope := p.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := scope[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}

		args, err = command.call(args[1:])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(command.Subs) == 0 {
			continue
		}
		scope = maps.Clone(scope)
		for subname, sub := range command.Subs {
			if _, ok := scope[subname]; ok {
				return fmt.Errorf("duplicated sub command: %s %s", name, subname)
			}
			scope[subname] = sub
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}
