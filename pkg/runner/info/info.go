package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("ONEIRO_CONFIG_PATH"); override != "" {
		fmt.Println("ONEIRO_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("ONEIRO_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}

	fmt.Printf("Collections:\n")
	fmt.Printf("  dreams: %d\n", len(s.Dreams()))
	fmt.Printf("  trash: %d\n", len(s.Trashed()))
	fmt.Printf("  categories: %d\n", len(s.Categories()))

	return nil
}
