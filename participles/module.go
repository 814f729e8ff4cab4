package participles

import (
	"github.com/reusee/dscope"
	"github.com/vandior/vlex/lexconfigs"
	"github.com/vandior/vlex/lexers"
)

type Module struct {
	dscope.Module
	LexConfigs lexconfigs.Module
}

func (Module) Definition(
	policy lexconfigs.UnmatchedPolicy,
) *Definition {
	return &Definition{
		Options: lexers.Options{
			Unmatched: policy,
		},
	}
}
