package debugs

import (
	"github.com/reusee/dscope"
	"github.com/vandior/vlex/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
