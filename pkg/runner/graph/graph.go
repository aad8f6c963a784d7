package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/graph"
	"tableflip.dev/oneiro/pkg/printers"
	"tableflip.dev/oneiro/pkg/store"
)

type Graph struct {
	JSON        bool
	Filters     graph.Filters
	Persistence store.Persistence
}

func (n *Graph) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not graph, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}
	g := graph.Build(s.Dreams(), n.Filters)

	if n.JSON {
		b, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Graph(g)
	return nil
}
