// Package export holds the interchange runners: write the diary to a file,
// read one back in without clobbering existing dreams.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/oneiro/pkg/diary"
	"tableflip.dev/oneiro/pkg/export"
	"tableflip.dev/oneiro/pkg/store"
)

type Export struct {
	JSON        bool
	Path        string
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}
	return emit(n.JSON, n.run(s))
}

func (n *Export) run(s *diary.Service) export.Result {
	data, err := export.Marshal(s.Dreams(), s.Trashed())
	if err != nil {
		return export.Errorf("encode export: %v", err)
	}

	path := n.Path
	if path == "" {
		path = export.Filename(time.Now())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return export.Errorf("write export: %v", err)
	}

	return export.OK(path, len(s.Dreams()), len(s.Trashed()))
}

type Import struct {
	JSON        bool
	Path        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	s, err := diary.Load(n.Persistence)
	if err != nil {
		return err
	}
	return emit(n.JSON, n.run(s))
}

func (n *Import) run(s *diary.Service) export.Result {
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return export.Errorf("read import: %v", err)
	}

	f, err := export.Parse(data)
	if err != nil {
		return export.Errorf("%v", err)
	}

	m := export.Merge(f, s.HasID)
	if err := s.Import(m.Dreams, m.TrashedDreams); err != nil {
		return export.Errorf("%v", err)
	}

	r := export.OK(n.Path, len(m.Dreams), len(m.TrashedDreams))
	r.Remapped = len(m.Remapped)
	return r
}

func emit(asJSON bool, r export.Result) error {
	if asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	if err := r.Err(); err != nil {
		return err
	}
	if r.Remapped > 0 {
		fmt.Printf("%s: %d dreams (%d trashed) via %s, %d ids remapped\n",
			r.Status, r.Dreams, r.Trashed, r.Path, r.Remapped)
		return nil
	}
	fmt.Printf("%s: %d dreams (%d trashed) via %s\n",
		r.Status, r.Dreams, r.Trashed, r.Path)
	return nil
}
