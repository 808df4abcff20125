// Package commands holds the project command implementations registered
// through the cli framework: init when no project configuration exists,
// otherwise progress, publish, compensate, and setupdb.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/annolab/crowdtask/internal/cli"
	"github.com/annolab/crowdtask/internal/mturk"
	"github.com/annolab/crowdtask/internal/store"
)

// Requester is the slice of the marketplace façade these commands use.
type Requester interface {
	CreateHIT(ctx context.Context, spec mturk.HITSpec) (mturk.HITReceipt, error)
	Accept(ctx context.Context, assignmentID, feedback string) error
	Bonus(ctx context.Context, workerID, assignmentID string, amount float64, feedback string) error
	Balance(ctx context.Context) (float64, error)
}

// JobStore is the slice of the project database these commands use.
type JobStore interface {
	Setup(ctx context.Context) error
	Unpublished(ctx context.Context) ([]store.Unit, error)
	MarkPublished(ctx context.Context, unitID int64, hitID, hitTypeID string) error
	Counts(ctx context.Context) (published, pending int, err error)
	PendingAssignments(ctx context.Context) ([]store.PendingAssignment, error)
	MarkPaid(ctx context.Context, assignmentID string) error
}

// Set bundles the collaborators the project commands share.
type Set struct {
	Requester Requester
	Store     JobStore
	Out       io.Writer
}

func NewSet(requester Requester, jobs JobStore) *Set {
	return &Set{Requester: requester, Store: jobs, Out: os.Stdout}
}

// Populate registers the available commands. With no project configuration
// (set == nil) only init is offered; with configuration the full project
// set is offered instead. The two sets never merge.
func Populate(reg *cli.Registry, set *Set) {
	if set == nil {
		reg.RegisterSimple("init", "Start a new project", InitProject)
		return
	}

	reg.RegisterSimple("progress", "Report job status", set.Progress)
	reg.RegisterSchema("publish", "Launch work", func() cli.SchemaCommand {
		return cli.NewLoadCommand(&publishLoader{set: set})
	})
	reg.RegisterSimple("compensate", "Pay workers", set.Compensate)
	reg.RegisterSimple("setupdb", "Setup the database", set.SetupDB)
}
