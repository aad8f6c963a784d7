package watch

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/oneiro/pkg/store"
)

// Watch tails store changes and reports which collection moved, until the
// context is cancelled. Useful when another process shares the diary.
type Watch struct {
	Persistence store.Persistence
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	fmt.Println("watching for changes, ctrl-c to stop")
	for ev := range events {
		fmt.Printf("%s changed\n", ev.Collection)
	}
	return nil
}
