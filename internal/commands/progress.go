package commands

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Progress reports how many units are published versus waiting, and the
// available account balance.
func (s *Set) Progress(args []string) error {
	ctx := context.Background()

	published, pending, err := s.Store.Counts(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(s.Out)
	t.AppendHeader(table.Row{"State", "Units"})
	t.AppendRow(table.Row{"published", published})
	t.AppendRow(table.Row{"pending", pending})
	t.Render()

	balance, err := s.Requester.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Available balance: $%0.2f\n", balance)
	return nil
}
