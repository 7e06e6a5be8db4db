package processor

import (
	"errors"
	"fmt"

	"github.com/orayew2002/excel-adapter/script"
	"github.com/orayew2002/excel-adapter/workbook"
	"github.com/rs/zerolog"
)

// ErrUnknownOp is returned for a command no registered handler accepts.
var ErrUnknownOp = errors.New("unknown op")

// Processor applies script commands to a fresh workbook through a registry.
type Processor struct {
	registry *script.Registry
	opts     workbook.Options
	log      zerolog.Logger
}

// New creates a Processor with the given registry and workbook options.
func New(registry *script.Registry, opts workbook.Options) *Processor {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Processor{registry: registry, opts: opts, log: log}
}

// RunFile loads the script at path and runs it.
func (p *Processor) RunFile(path string) (string, error) {
	s, err := script.Load(path)
	if err != nil {
		return "", err
	}
	return p.Run(s)
}

// Run builds the workbook described by s, saves it and returns the file name.
func (p *Processor) Run(s *script.Script) (string, error) {
	opts := p.opts
	if opts.OutputDir == "" {
		opts.OutputDir = s.Output.Dir
	}

	wb, err := p.build(s, opts)
	if err != nil {
		return "", err
	}
	defer wb.Close()

	name, err := wb.Save(s.Output.File, s.Output.Prefix)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", s.Output.File, err)
	}

	p.log.Info().Str("file", name).Int("commands", len(s.Commands)).Msg("workbook written")
	return name, nil
}

// Render builds the workbook described by s and returns it as xlsx bytes
// without touching the filesystem.
func (p *Processor) Render(s *script.Script) ([]byte, error) {
	wb, err := p.build(s, p.opts)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return wb.Bytes()
}

func (p *Processor) build(s *script.Script, opts workbook.Options) (*workbook.Workbook, error) {
	wb := workbook.New(opts)

	if s.Creator != "" || s.Title != "" {
		if err := wb.SetProperties(s.Creator, s.Title); err != nil {
			wb.Close()
			return nil, fmt.Errorf("properties: %w", err)
		}
	}

	for i, cmd := range s.Commands {
		ok, err := p.registry.Process(wb, cmd)
		if err != nil {
			wb.Close()
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
		if !ok {
			wb.Close()
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Op, ErrUnknownOp)
		}
	}

	return wb, nil
}
