package watch

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-articlegen/pkg/editor"
)

// SessionReloader returns a change callback that refetches the session's
// current template. Changes before any template is loaded are ignored.
func SessionReloader(session *editor.Session, timeout time.Duration) func(string) error {
	return func(string) error {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		_, err := session.Reload(ctx)
		if errors.Is(err, editor.ErrNoTemplate) || errors.Is(err, editor.ErrLoadSuperseded) {
			return nil
		}
		return err
	}
}
