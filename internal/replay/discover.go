package replay

import (
	"context"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/arrange/internal/codec"
)

// Discover expands roots into script files. Files are kept as given;
// directories are walked for .json, .yaml and .yml files, skipping hidden
// directories. Walked results are sorted for a stable replay order.
func Discover(ctx context.Context, roots []string) ([]string, error) {
	var out []string
	for _, root := range roots {
		expanded, err := codec.ExpandTilde(root)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, expanded)
			continue
		}
		found, err := walk(ctx, expanded)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func walk(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.DefaultConfig
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.Debugf("replay: skipping %s: %v", path, err)
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if codec.IsSupported(path) {
			// fastwalk calls back from several goroutines.
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
