package commands

import (
	"context"
	"fmt"

	"github.com/annolab/crowdtask/pkg/logger"
)

// Compensate approves every recorded assignment awaiting payment, grants
// its bonus when one is owed, and marks it settled.
func (s *Set) Compensate(args []string) error {
	ctx := context.Background()
	log := logger.Get()

	pending, err := s.Store.PendingAssignments(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(s.Out, "Nobody to pay.")
		return nil
	}

	for _, a := range pending {
		if err := s.Requester.Accept(ctx, a.AssignmentID, ""); err != nil {
			return fmt.Errorf("failed to approve assignment %q: %w", a.AssignmentID, err)
		}
		if a.Bonus > 0 {
			if err := s.Requester.Bonus(ctx, a.WorkerID, a.AssignmentID, a.Bonus, "Thanks for your work!"); err != nil {
				return fmt.Errorf("failed to bonus worker %q: %w", a.WorkerID, err)
			}
		}
		if err := s.Store.MarkPaid(ctx, a.AssignmentID); err != nil {
			return err
		}
		log.Info().Str("assignment_id", a.AssignmentID).Str("worker_id", a.WorkerID).Msg("paid worker")
	}

	fmt.Fprintf(s.Out, "Paid %d workers.\n", len(pending))
	return nil
}
