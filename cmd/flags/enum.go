// Package flags holds flag types shared by the command line tools.
package flags

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var errNotAllowed = errors.New("value not allowed")

// EnumValue is a string flag that only takes one of the choices in Enum. Value is the
// choice used when the flag is not given.
type EnumValue struct {
	Name        string
	Usage       string
	Destination *string
	Enum        []string
	Value       string
}

// Set stores value in Destination if it is one of the choices.
func (e *EnumValue) Set(value string) error {
	if !slices.Contains(e.Enum, value) {
		return errors.Wrapf(errNotAllowed, "--%s=%s, allowed values are %s", e.Name, value, strings.Join(e.Enum, ", "))
	}
	*e.Destination = value
	return nil
}

// String returns the chosen value, or the default before a choice was made.
func (e *EnumValue) String() string {
	if e.Destination != nil && *e.Destination != "" {
		return *e.Destination
	}
	return e.Value
}

// GenericFlag resets Destination to the default and returns a cli flag backed by a copy of e.
// The usage text lists the choices.
func (e EnumValue) GenericFlag() *cli.GenericFlag {
	*e.Destination = e.Value
	v := &e
	return &cli.GenericFlag{
		Name:        e.Name,
		Usage:       e.Usage + " (" + strings.Join(e.Enum, ", ") + ")",
		Destination: v,
		Value:       v,
	}
}
