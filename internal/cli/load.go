package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// HITGroup is the task specification a load command builds from its parsed
// arguments before handing off to its loader.
type HITGroup struct {
	Title       string
	Description string
	Keywords    string
	Cost        float64
	Bonus       float64
	Duration    int64
	Lifetime    int64
}

// TaskLoader supplies the concrete loading step for a LoadCommand. The
// dispatcher only ever sees fully constructed commands, so there is no
// "abstract" instance to invoke by mistake.
type TaskLoader interface {
	Load(fs *pflag.FlagSet, group HITGroup) error
}

// LoadCommand is the shared schema for the load family of commands: they
// all take the same publishing flags plus a positional plural noun that is
// substituted into the title and description templates.
type LoadCommand struct {
	loader TaskLoader

	title       string
	description string
	keywords    string
	cost        float64
	bonus       float64
	duration    int64
	lifetime    int64
}

func NewLoadCommand(loader TaskLoader) *LoadCommand {
	return &LoadCommand{loader: loader}
}

func (c *LoadCommand) Setup() *pflag.FlagSet {
	fs := pflag.NewFlagSet("load", pflag.ContinueOnError)
	fs.StringVar(&c.title, "title", "Image annotation of {c}", "HIT title; {c} expands to the plural noun")
	fs.StringVar(&c.description, "description", "Draw boxes around {c} in this image.", "HIT description; {c} expands to the plural noun")
	fs.Float64VarP(&c.cost, "cost", "c", 0.02, "reward per assignment in dollars")
	fs.Int64Var(&c.duration, "duration", 600, "assignment duration in seconds")
	fs.Int64Var(&c.lifetime, "lifetime", 1209600, "HIT lifetime in seconds")
	fs.StringVar(&c.keywords, "keywords", "", "comma separated search keywords")
	fs.Float64VarP(&c.bonus, "bonus", "b", 0.00, "bonus per assignment in dollars")
	return fs
}

func (c *LoadCommand) Run(fs *pflag.FlagSet) error {
	if c.loader == nil {
		panic("cli: LoadCommand constructed without a TaskLoader")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: %s [flags] <plural noun>", fs.Name())
	}

	plural := fs.Arg(0)
	group := HITGroup{
		Title:       strings.ReplaceAll(c.title, "{c}", plural),
		Description: strings.ReplaceAll(c.description, "{c}", plural),
		Keywords:    c.keywords,
		Cost:        c.cost,
		Bonus:       c.bonus,
		Duration:    c.duration,
		Lifetime:    c.lifetime,
	}
	return c.loader.Load(fs, group)
}
