package main

import (
	"errors"

	"github.com/vandior/vlex/cmds"
)

type action uint8

const (
	actionDump action = iota
	actionTap
)

var (
	files = cmds.Collect[string]("-file", "file to tokenize, may be repeated, stdin if none")

	selected    = actionDump
	dumpOptions printOptions
)

func init() {
	cmds.Define("dump", cmds.Func(func() {
		selected = actionDump
	}).With(map[string]*cmds.Command{
		"-compact": cmds.Func(func() {
			dumpOptions.compact = true
		}).Desc("print tokens in compact form"),
		"-spew": cmds.Func(func() {
			dumpOptions.spew = true
		}).Desc("dump tokens with go-spew"),
	}).Desc("print tokens, the default"))

	cmds.Define("tap", cmds.Func(func() {
		selected = actionTap
	}).Desc("open a starlark repl on the tokens"))
}

var errTapNeedsFiles = errors.New("tap reads the repl from stdin, use -file for input")

func checkAction(a action, files []string) error {
	if a == actionTap && len(files) == 0 {
		return errTapNeedsFiles
	}
	return nil
}
