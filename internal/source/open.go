package source

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/infinite/internal/config"
)

// Open builds the source described by cfg. The returned closer releases any
// resources the source holds and is never nil.
func Open(ctx context.Context, cfg config.Source) (Source, io.Closer, error) {
	switch cfg.Kind {
	case config.SourceSynthetic:
		return NewSynthetic(cfg.Limit), nopCloser{}, nil
	case config.SourceFile:
		src, err := NewLines(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return src, nopCloser{}, nil
	case config.SourceSQLite:
		src, err := OpenSQLite(ctx, cfg.Path, cfg.Table, cfg.Column)
		if err != nil {
			return nil, nil, err
		}
		return src, src, nil
	default:
		return nil, nil, fmt.Errorf("unknown source kind: %q", cfg.Kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
