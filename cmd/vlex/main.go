// Command vlex tokenizes Vandior source files.
//
//	vlex [-file path]... [dump [-compact] [-spew] | tap]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/vandior/vlex/cmds"
	"github.com/vandior/vlex/debugs"
	"github.com/vandior/vlex/lexconfigs"
	"github.com/vandior/vlex/lexers"
	"github.com/vandior/vlex/logs"
	"github.com/vandior/vlex/modes"
	"github.com/vandior/vlex/tokens"
)

type Module struct {
	dscope.Module
	Lexers lexers.Module
	Debugs debugs.Module
}

func main() {
	cmds.Execute(os.Args[1:])
	if err := checkAction(selected, *files); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var failed bool
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		tokenize lexers.Tokenize,
		jobs lexconfigs.Jobs,
		logger logs.Logger,
		tap debugs.Tap,
	) {
		ctx := context.Background()

		var results []result
		if len(*files) == 0 {
			input, err := readAll(os.Stdin)
			if err != nil {
				logger.Error("read stdin", "error", err)
				failed = true
				return
			}
			buf, err := tokenize(ctx, "<stdin>", input)
			results = append(results, result{
				path:   "<stdin>",
				buffer: buf,
				err:    err,
			})
		} else {
			results = tokenizeFiles(ctx, tokenize, int(jobs), *files)
		}

		buffers := make(map[string]*tokens.Buffer)
		for _, r := range results {
			if r.err != nil {
				failed = true
				continue
			}
			buffers[r.path] = r.buffer
		}

		switch selected {

		case actionDump:
			for _, r := range results {
				if r.err != nil {
					continue
				}
				if err := printResult(os.Stdout, r, dumpOptions); err != nil {
					logger.Error("print", "error", err)
					failed = true
					return
				}
			}

		case actionTap:
			tap(ctx, "tokens", map[string]any{
				"files":  *files,
				"tokens": buffers,
			})

		}
	})

	if failed {
		os.Exit(1)
	}
}
