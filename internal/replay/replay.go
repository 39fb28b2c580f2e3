// Package replay drives a scene through recorded UI events without a
// terminal, one Dispatcher per script.
package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ensigniasec/arrange/internal/codec"
	"github.com/ensigniasec/arrange/internal/gesture"
	"github.com/ensigniasec/arrange/internal/scene"
	"github.com/ensigniasec/arrange/internal/validate"
)

// ErrInvalidScript wraps script load and validation failures.
var ErrInvalidScript = errors.New("invalid script")

const defaultParallelism = 4

// Script is a recorded sequence of UI events.
type Script struct {
	Name   string          `json:"name,omitempty" yaml:"name,omitempty"`
	Events []gesture.Event `json:"events" yaml:"events" validate:"dive"`
}

// Result is the outcome of replaying one script.
type Result struct {
	Script  string       `json:"script"`
	Applied int          `json:"applied"`
	Changed int          `json:"changed"`
	Scene   *scene.Scene `json:"scene"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	var sc Script
	if err := codec.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScript, path, err)
	}
	if err := validate.Struct(sc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScript, path, err)
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return &sc, nil
}

// Run replays sc against a copy of base. base is never modified.
func Run(base *scene.Scene, sc *Script) (Result, error) {
	s := base.Clone()
	d := gesture.NewDispatcher(s)
	res := Result{Script: sc.Name, Scene: s}
	for i, ev := range sc.Events {
		changed, err := d.Apply(ev)
		if err != nil {
			return res, fmt.Errorf("%s: event %d: %w", sc.Name, i, err)
		}
		res.Applied++
		if changed {
			res.Changed++
		}
	}
	// A script that stops mid-gesture behaves like the surface losing focus.
	if _, err := d.Apply(gesture.Event{Kind: gesture.Blur}); err != nil {
		return res, err
	}
	logrus.Debugf("replay: %s applied %d events, %d changed the scene", sc.Name, res.Applied, res.Changed)
	return res, nil
}

// RunAll loads and replays every script path against its own copy of base,
// at most parallel at a time. Results keep the order of paths.
func RunAll(ctx context.Context, base *scene.Scene, paths []string, parallel int) ([]Result, error) {
	if parallel <= 0 {
		parallel = defaultParallelism
	}
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sc, err := LoadScript(path)
			if err != nil {
				return err
			}
			res, err := Run(base, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
