package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"

	"github.com/annolab/crowdtask/pkg/logger"
)

// Dispatcher resolves a command name from process arguments and invokes the
// matching handler. One command per invocation; the return value is the
// process exit code.
type Dispatcher struct {
	registry *Registry
	out      io.Writer
	errOut   io.Writer
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

func (d *Dispatcher) Dispatch(args []string) int {
	if len(args) == 0 {
		d.printHelp()
		return 0
	}

	name := strings.ToLower(args[0])
	desc, ok := d.registry.Lookup(name)
	if !ok {
		fmt.Fprintf(d.errOut, "Error: Unknown action %s\n", args[0])
		return 1
	}

	rest := args[1:]

	var err error
	switch {
	case desc.Simple != nil:
		err = desc.Simple(rest)
	case desc.Schema != nil:
		err = d.runSchema(name, desc.Schema, rest)
	}

	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Str("action", name).Msg("command failed")
		return 1
	}
	return 0
}

// runSchema is the two-phase protocol: construct once, obtain the schema
// once, parse the remaining tokens against it, then invoke the same
// instance with the parsed result.
func (d *Dispatcher) runSchema(name string, factory SchemaFactory, args []string) error {
	cmd := factory()
	fs := cmd.Setup()
	fs.Init(name, pflag.ContinueOnError)
	fs.SetOutput(d.errOut)

	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.Run(fs)
}

func (d *Dispatcher) printHelp() {
	t := table.NewWriter()
	t.SetOutputMirror(d.out)
	t.AppendHeader(table.Row{"Action", "Description"})
	for _, name := range d.registry.Names() {
		desc, _ := d.registry.Lookup(name)
		t.AppendRow(table.Row{name, desc.Help})
	}
	t.Render()
}
