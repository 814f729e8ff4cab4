// Command libvlex builds the C library of the lexer:
//
//	go build -buildmode=c-shared -o libvlex.so ./cmd/libvlex
//
// Every buffer returned by tokenize must be passed to release_tokens exactly once.
package main

/*
#include <stdlib.h>
#include "vlex.h"
*/
import "C"

import (
	"context"
	"sync"

	"github.com/reusee/dscope"
	"github.com/vandior/vlex/configs"
	"github.com/vandior/vlex/lexconfigs"
	"github.com/vandior/vlex/lexers"
	"github.com/vandior/vlex/modes"
)

// scope reads no config files: the library runs inside a host process whose working directory is not ours.
var scope = sync.OnceValue(func() dscope.Scope {
	return dscope.New(
		new(lexers.Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, lexconfigs.Schema)
		},
	)
})

//export tokenize
func tokenize(fileName *C.char, input *C.char) (ret C.vlex_token_buffer) {
	scope().Call(func(
		tokenizeText lexers.Tokenize,
	) {
		buf, err := tokenizeText(
			context.Background(),
			C.GoString(fileName),
			C.GoString(input),
		)
		if err != nil {
			// no error channel exists in the C interface
			panic(err)
		}
		ret = exportBuffer(buf)
		buf.Release()
	})
	return
}

//export release_tokens
func release_tokens(buffer C.vlex_token_buffer) {
	releaseBuffer(buffer)
}

func main() {}
