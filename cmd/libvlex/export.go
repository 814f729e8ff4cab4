package main

/*
#include <stdlib.h>
#include "vlex.h"
*/
import "C"

import (
	"unsafe"

	"github.com/vandior/vlex/tokens"
)

// exportBuffer copies buf into C memory. Every lexeme and file name is a separate allocation.
func exportBuffer(buf *tokens.Buffer) (ret C.vlex_token_buffer) {
	if buf.Cap() == 0 {
		return
	}
	ret.data = (*C.vlex_token)(C.calloc(
		C.size_t(buf.Cap()),
		C.size_t(unsafe.Sizeof(C.vlex_token{})),
	))
	ret.capacity = C.size_t(buf.Cap())
	slots := unsafe.Slice(ret.data, buf.Cap())
	for i, token := range buf.All() {
		slots[i] = C.vlex_token{
			token_type: C.int(token.Type),
			lexeme:     C.CString(token.Lexeme),
			source_location: C.vlex_source_location{
				file_name: C.CString(token.Location.FileName),
				line:      C.size_t(token.Location.Line),
				column:    C.size_t(token.Location.Column),
			},
		}
		ret.size++
	}
	return
}

func releaseBuffer(buffer C.vlex_token_buffer) {
	if buffer.data == nil {
		return
	}
	for _, token := range unsafe.Slice(buffer.data, int(buffer.size)) {
		C.free(unsafe.Pointer(token.lexeme))
		C.free(unsafe.Pointer(token.source_location.file_name))
	}
	C.free(unsafe.Pointer(buffer.data))
}

// importBuffer copies an exported buffer back to Go values.
func importBuffer(buffer C.vlex_token_buffer) (ret []tokens.Token, capacity int) {
	if buffer.data == nil {
		return nil, int(buffer.capacity)
	}
	for _, token := range unsafe.Slice(buffer.data, int(buffer.size)) {
		ret = append(ret, tokens.Token{
			Type:   tokens.Type(token.token_type),
			Lexeme: C.GoString(token.lexeme),
			Location: tokens.Location{
				FileName: C.GoString(token.source_location.file_name),
				Line:     int(token.source_location.line),
				Column:   int(token.source_location.column),
			},
		})
	}
	return ret, int(buffer.capacity)
}

// tokenizeString calls the exported tokenize with C copies of its arguments.
func tokenizeString(fileName string, input string) C.vlex_token_buffer {
	cFileName := C.CString(fileName)
	defer C.free(unsafe.Pointer(cFileName))
	cInput := C.CString(input)
	defer C.free(unsafe.Pointer(cInput))
	return tokenize(cFileName, cInput)
}
