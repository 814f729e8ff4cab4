package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/vandior/vlex/lexers"
	"github.com/vandior/vlex/syncs"
	"github.com/vandior/vlex/tokens"
)

type result struct {
	path   string
	buffer *tokens.Buffer
	err    error
}

// tokenizeFiles tokenizes paths with at most jobs scans in flight. Results keep the order of paths.
func tokenizeFiles(
	ctx context.Context,
	tokenize lexers.Tokenize,
	jobs int,
	paths []string,
) []result {
	results := make([]result, len(paths))
	sem := syncs.NewSemaphore(max(jobs, 1))
	wg := new(sync.WaitGroup)
	for i, path := range paths {
		results[i].path = path
		if err := sem.Acquire(ctx); err != nil {
			results[i].err = err
			continue
		}
		wg.Go(func() {
			defer sem.Release()
			content, err := os.ReadFile(path)
			if err != nil {
				results[i].err = err
				return
			}
			results[i].buffer, results[i].err = tokenize(ctx, path, string(content))
		})
	}
	wg.Wait()
	return results
}

func readAll(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

type printOptions struct {
	compact bool
	spew    bool
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func printResult(w io.Writer, r result, options printOptions) error {
	if options.spew {
		spewConfig.Fdump(w, r.buffer.Tokens())
		return nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", r.path)
	for _, token := range r.buffer.All() {
		if options.compact {
			sb.WriteString(token.Compact())
		} else {
			sb.WriteString(token.String())
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
