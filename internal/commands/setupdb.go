package commands

import (
	"context"
	"fmt"
)

// SetupDB creates the project database schema.
func (s *Set) SetupDB(args []string) error {
	if err := s.Store.Setup(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(s.Out, "Database ready.")
	return nil
}
