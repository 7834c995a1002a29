package flags

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// EnumValue is a cli.Generic restricted to a fixed set of strings. The zero
// selection reads as Default.
type EnumValue struct {
	Enum     []string
	Default  string
	selected string
}

// Set selects value if it is one of Enum.
func (e *EnumValue) Set(value string) error {
	for _, enum := range e.Enum {
		if enum == value {
			e.selected = value
			return nil
		}
	}
	return errors.Errorf("allowed values are %s", strings.Join(e.Enum, ", "))
}

// String returns the selected value.
func (e *EnumValue) String() string {
	if e.selected == "" {
		return e.Default
	}
	return e.selected
}

// NewEnumFlag builds a string flag that only accepts the given values.
func NewEnumFlag(name, usage, defaultValue string, enum ...string) *cli.GenericFlag {
	return &cli.GenericFlag{
		Name:        name,
		Usage:       usage,
		Value:       &EnumValue{Enum: enum, Default: defaultValue},
		DefaultText: defaultValue,
	}
}

// EnumString reads the selection of an enum flag, falling back to its
// default when the flag is not in ctx.
func EnumString(ctx *cli.Context, flag *cli.GenericFlag) string {
	if e, ok := ctx.Generic(flag.Name).(*EnumValue); ok {
		return e.String()
	}
	if e, ok := flag.Value.(*EnumValue); ok {
		return e.Default
	}
	return ""
}
