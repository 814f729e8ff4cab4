package lexconfigs

import (
	"fmt"

	"github.com/vandior/vlex/cmds"
	"github.com/vandior/vlex/configs"
	"github.com/vandior/vlex/logs"
	"github.com/vandior/vlex/vars"
)

// UnmatchedPolicy decides what a scan does at input no lexical rule matches.
type UnmatchedPolicy string

const (
	// abort the whole call
	UnmatchedAbort UnmatchedPolicy = "abort"
	// emit an Unknown token for the rune and continue
	UnmatchedUnknown UnmatchedPolicy = "unknown"
)

var _ configs.Configurable = UnmatchedPolicy("")

func (UnmatchedPolicy) ConfigExpr() string {
	return "unmatched_policy"
}

func (u UnmatchedPolicy) Validate() error {
	switch u {
	case UnmatchedAbort, UnmatchedUnknown:
		return nil
	}
	return fmt.Errorf("bad unmatched policy: %q", string(u))
}

var unmatchedFlag = cmds.Var[string]("-unmatched", "policy for input no rule matches: abort or unknown")

func (Module) UnmatchedPolicy(
	loader configs.Loader,
	logger logs.Logger,
) UnmatchedPolicy {
	configured, err := configs.TryLookup[UnmatchedPolicy](loader)
	if err != nil {
		logger.Warn("ignore unmatched policy config", "error", err)
		configured = ""
	}
	policy := vars.FirstNonZero(
		UnmatchedPolicy(*unmatchedFlag),
		configured,
		UnmatchedAbort,
	)
	if err := policy.Validate(); err != nil {
		logger.Warn("ignore unmatched policy", "error", err)
		return UnmatchedAbort
	}
	return policy
}
