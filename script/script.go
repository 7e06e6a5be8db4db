// Package script describes workbooks as TOML command lists and dispatches
// each command to the workbook facade through a Registry.
//
// A script looks like:
//
//	creator = "Finance"
//	title   = "Monthly ledger"
//
//	[output]
//	file = "ledger.xlsx"
//
//	[[command]]
//	op      = "headers"
//	row     = 1
//	headers = [["DATE", 12], ["NAME", 25], "NOTE"]
//
//	[[command]]
//	op     = "number_format"
//	range  = "C2:C20"
//	format = "currency"
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoOutput indicates a script without an output file name.
var ErrNoOutput = errors.New("output.file is required")

// Script is a decoded TOML script.
type Script struct {
	Creator  string    `toml:"creator"`
	Title    string    `toml:"title"`
	Output   Output    `toml:"output"`
	Commands []Command `toml:"command"`
}

// Output names the file a script produces.
type Output struct {
	File   string `toml:"file"`
	Prefix string `toml:"prefix"`
	// Dir, when set, replaces the uploads directory probing.
	Dir string `toml:"dir"`
}

// Command is one step of a script. Which fields matter depends on Op.
type Command struct {
	Op string `toml:"op"`

	Cell    string  `toml:"cell"`
	Range   string  `toml:"range"`
	Value   any     `toml:"value"`
	Style   string  `toml:"style"`
	Outline any     `toml:"outline"`
	Desc    string  `toml:"desc"`
	Format  string  `toml:"format"`
	Size    float64 `toml:"size"`

	Row    int       `toml:"row"`
	From   int       `toml:"from"`
	To     int       `toml:"to"`
	Height float64   `toml:"height"`
	Start  string    `toml:"start"`
	Widths []float64 `toml:"widths"`

	// Headers holds "label" strings or ["label", width] pairs.
	Headers []any `toml:"headers"`

	Index   int    `toml:"index"`
	Name    string `toml:"name"`
	Path    string `toml:"path"`
	OffsetX *int   `toml:"offset_x"`
	OffsetY *int   `toml:"offset_y"`

	Creator string `toml:"creator"`
	Title   string `toml:"title"`
}

// Load reads and validates the script at path.
func Load(path string) (*Script, error) {
	var s Script
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// Parse decodes and validates a script held in memory.
func Parse(data string) (*Script, error) {
	var s Script
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the parts of a script that do not depend on the registry.
func (s *Script) Validate() error {
	if strings.TrimSpace(s.Output.File) == "" {
		return ErrNoOutput
	}
	for i, cmd := range s.Commands {
		if strings.TrimSpace(cmd.Op) == "" {
			return fmt.Errorf("command %d: missing op", i)
		}
	}
	return nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}
