package cmds

// Var defines name to set the value from the next argument, and name+"." to reset it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}).Hide())
	return &value
}

// Switch defines name to turn the switch on and "!"+name to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, describe(Func(func() {
		value = true
	}), desc))
	Define("!"+name, Func(func() {
		value = false
	}).Hide())
	return &value
}

// Collect defines name to append the next argument.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}

func describe(cmd *Command, desc []string) *Command {
	if len(desc) > 0 {
		cmd.Desc(desc[0])
	}
	return cmd
}
