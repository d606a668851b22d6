package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/shapeboard/pkg/observability"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Placing shapes...")
	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	if !strings.Contains(out.String(), "Placing shapes...") {
		t.Errorf("spinner output %q missing message", out.String())
	}
	if s.Cancelled() {
		t.Error("Cancelled() = true after a plain Stop")
	}
}

func TestSpinnerParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &syncBuffer{}, "waiting")
	s.Start()
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after parent cancellation")
	}
	if !s.Cancelled() {
		t.Error("Cancelled() = false after parent cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(nil, &syncBuffer{}, "x")
	s.Stop() // before Start
	s.Stop()

	s = newSpinner(context.Background(), &syncBuffer{}, "x")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestFollowStages(t *testing.T) {
	defer observability.Reset()

	s := newSpinner(context.Background(), &syncBuffer{}, "Loading...")
	restore := followStages(s)

	ctx := context.Background()
	observability.Pipeline().OnResolveStart(ctx, 3, true)
	if got := s.Message(); got != "Placing 3 shapes (random)..." {
		t.Errorf("after resolve start, message = %q", got)
	}
	observability.Pipeline().OnRenderStart(ctx, []string{"svg", "png"})
	if got := s.Message(); got != "Rendering svg, png..." {
		t.Errorf("after render start, message = %q", got)
	}

	restore()
	observability.Pipeline().OnRenderStart(ctx, []string{"pdf"})
	if got := s.Message(); got != "Rendering svg, png..." {
		t.Errorf("hooks still routed after restore: %q", got)
	}
}
