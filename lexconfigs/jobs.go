package lexconfigs

import (
	"runtime"

	"github.com/vandior/vlex/cmds"
	"github.com/vandior/vlex/configs"
	"github.com/vandior/vlex/logs"
	"github.com/vandior/vlex/vars"
)

// Jobs bounds how many files are tokenized at once.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigExpr() string {
	return "jobs"
}

var jobsFlag = cmds.Var[int]("-jobs", "max number of files tokenized concurrently")

func (Module) Jobs(
	loader configs.Loader,
	logger logs.Logger,
) Jobs {
	configured, err := configs.TryLookup[Jobs](loader)
	if err != nil {
		logger.Warn("ignore jobs config", "error", err)
		configured = 0
	}
	return max(1, vars.FirstNonZero(
		Jobs(*jobsFlag),
		configured,
		Jobs(runtime.GOMAXPROCS(0)),
	))
}
