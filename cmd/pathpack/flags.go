package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/pflag"
)

// numberPattern is the accepted syntax for numeric option values.
var numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([Ee][+-]?[0-9]+)?$`)

// numberFlag is a float64 flag that may be given only once.
type numberFlag struct {
	name  string
	value float64
	set   bool
}

var _ pflag.Value = (*numberFlag)(nil)

func newNumberFlag(name string, value float64) *numberFlag {
	return &numberFlag{name: name, value: value}
}

func (f *numberFlag) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *numberFlag) Set(s string) error {
	if f.set {
		return fmt.Errorf("%s option already specified", f.name)
	}
	if !numberPattern.MatchString(s) {
		return fmt.Errorf("invalid %s value", f.name)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range, e.g. 1e400
		return fmt.Errorf("invalid %s value", f.name)
	}
	f.value = v
	f.set = true

	return nil
}

func (f *numberFlag) Type() string {
	return "number"
}

func (f *numberFlag) Value() float64 {
	return f.value
}

func addNumberFlag(flags *pflag.FlagSet, f *numberFlag, shorthand, usage string) {
	flags.VarP(f, f.name, shorthand, usage)
}
