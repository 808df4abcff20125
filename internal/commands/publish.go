package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/annolab/crowdtask/internal/cli"
	"github.com/annolab/crowdtask/internal/mturk"
	"github.com/annolab/crowdtask/pkg/logger"
)

// publishLoader creates one HIT per unpublished unit and records the
// service-assigned identifiers.
type publishLoader struct {
	set *Set
}

func (l *publishLoader) Load(fs *pflag.FlagSet, group cli.HITGroup) error {
	ctx := context.Background()
	log := logger.Get()

	units, err := l.set.Store.Unpublished(ctx)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		fmt.Fprintln(l.set.Out, "Nothing to publish.")
		return nil
	}

	for _, unit := range units {
		receipt, err := l.set.Requester.CreateHIT(ctx, mturk.HITSpec{
			Title:       group.Title,
			Description: group.Description,
			Page:        unit.Slug,
			Amount:      group.Cost,
			Duration:    group.Duration,
			Lifetime:    group.Lifetime,
			Keywords:    group.Keywords,
		})
		if err != nil {
			return fmt.Errorf("failed to publish unit %q: %w", unit.Slug, err)
		}
		if err := l.set.Store.MarkPublished(ctx, unit.ID, receipt.HITID, receipt.HITTypeID); err != nil {
			return err
		}
		log.Info().Str("slug", unit.Slug).Str("hit_id", receipt.HITID).Msg("published unit")
	}

	fmt.Fprintf(l.set.Out, "Published %d units at $%0.2f each.\n", len(units), group.Cost)
	return nil
}
