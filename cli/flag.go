package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// Format selects how list output is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
)

var formats = []Format{FormatTable, FormatPlain, FormatJSON}

type formatFlag struct {
	value Format
}

func newFormatFlag() *formatFlag {
	return &formatFlag{value: FormatTable}
}

// String implements pflag.Value.
func (f *formatFlag) String() string {
	return string(f.value)
}

func (f *formatFlag) Set(value string) error {
	if !lo.Contains(formats, Format(value)) {
		return fmt.Errorf("invalid format %q (expected table, plain or json)", value)
	}
	f.value = Format(value)
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

func (f *formatFlag) Format() Format {
	return f.value
}

var _ pflag.Value = &formatFlag{}
