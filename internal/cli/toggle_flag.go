package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName = "toggle"
	toggleBareValue    = "true"
	longFlagPrefix     = "--"
	argumentTerminator = "--"

	errorToggleLiteralFormat = "%q is not a toggle value; use one of true, false, yes, no, on, off, 1, 0"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// interpretToggleLiteral reports the boolean meaning of input and whether it
// is a recognized literal. An empty input means true.
func interpretToggleLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return true, true
	}
	parsed, known := toggleLiterals[normalized]
	return parsed, known
}

// toggleValue is a bool flag value that also accepts yes/no and on/off.
type toggleValue bool

func (value *toggleValue) Set(input string) error {
	parsed, known := interpretToggleLiteral(input)
	if !known {
		return fmt.Errorf(errorToggleLiteralFormat, input)
	}
	*value = toggleValue(parsed)
	return nil
}

func (value *toggleValue) String() string {
	return strconv.FormatBool(bool(*value))
}

func (value *toggleValue) Type() string {
	return toggleFlagTypeName
}

// toggleSet records the long names of the toggle flags registered on the root
// command and its subcommands.
type toggleSet map[string]struct{}

// register adds a toggle defaulting to false. It may be given bare (--copy),
// with "=" (--copy=no), or followed by a literal (--copy no).
func (toggles toggleSet) register(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	*target = false
	flag := flagSet.VarPF((*toggleValue)(target), name, "", usage)
	flag.NoOptDefVal = toggleBareValue
	toggles[name] = struct{}{}
}

// attachLiterals rewrites "--toggle literal" as "--toggle=literal". Anything
// that is not a literal stays separate, so `structree --copy ./src` still
// renders ./src. Arguments after "--" are always positional.
func (toggles toggleSet) attachLiterals(arguments []string) []string {
	attached := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == argumentTerminator {
			return append(attached, arguments[index:]...)
		}
		if toggles.isBareToggle(argument) && index+1 < len(arguments) {
			literal := arguments[index+1]
			if _, known := interpretToggleLiteral(literal); known && strings.TrimSpace(literal) != "" {
				attached = append(attached, argument+"="+literal)
				index++
				continue
			}
		}
		attached = append(attached, argument)
	}
	return attached
}

func (toggles toggleSet) isBareToggle(argument string) bool {
	name, isLongFlag := strings.CutPrefix(argument, longFlagPrefix)
	if !isLongFlag || strings.Contains(name, "=") {
		return false
	}
	_, registered := toggles[name]
	return registered
}
