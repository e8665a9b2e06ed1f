package rewriter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dcastel/transcript-flow/internal/logger"
)

// fakeChat echoes pages back with a marker, optionally failing on a
// chosen call.
type fakeChat struct {
	calls    int
	failOn   int // 1-based call number to fail on, 0 = never
	emptyOn  int // 1-based call number to answer empty on, 0 = never
	received []string
}

func (f *fakeChat) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.received = append(f.received, user)
	if f.failOn != 0 && f.calls == f.failOn {
		return "", ErrServiceUnavailable
	}
	if f.emptyOn != 0 && f.calls == f.emptyOn {
		return "", nil
	}
	return "edited: " + user, nil
}

func TestRewriteOrderPreserved(t *testing.T) {
	chat := &fakeChat{}
	r := New(chat, 0, logger.New("error"))

	pages := []string{"page one", "page two", "page three"}
	got, err := r.Rewrite(context.Background(), pages, "instructions")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	if len(got) != len(pages) {
		t.Fatalf("got %d outputs, want %d", len(got), len(pages))
	}
	for i, p := range pages {
		if got[i] != "edited: "+p {
			t.Errorf("output %d = %q, want %q", i, got[i], "edited: "+p)
		}
	}
	for i, p := range pages {
		if chat.received[i] != p {
			t.Errorf("call %d received %q, want %q", i, chat.received[i], p)
		}
	}
}

func TestRewriteEmptyPages(t *testing.T) {
	r := New(&fakeChat{}, 0, logger.New("error"))
	got, err := r.Rewrite(context.Background(), nil, "instructions")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != nil {
		t.Errorf("Rewrite(nil pages) = %v, want nil", got)
	}
}

func TestRewriteAllOrNothing(t *testing.T) {
	chat := &fakeChat{failOn: 2}
	r := New(chat, 0, logger.New("error"))

	got, err := r.Rewrite(context.Background(), []string{"a", "b", "c"}, "i")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("Rewrite() error = %v, want ErrServiceUnavailable", err)
	}
	if got != nil {
		t.Errorf("Rewrite() returned partial results on failure: %v", got)
	}
	if chat.calls != 2 {
		t.Errorf("chat called %d times after failure on call 2, want 2", chat.calls)
	}
}

func TestRewriteEmptyResponse(t *testing.T) {
	chat := &fakeChat{emptyOn: 1}
	r := New(chat, 0, logger.New("error"))

	got, err := r.Rewrite(context.Background(), []string{"a"}, "i")
	if !errors.Is(err, ErrNoOutput) {
		t.Fatalf("Rewrite() error = %v, want ErrNoOutput", err)
	}
	if got != nil {
		t.Errorf("Rewrite() = %v, want nil", got)
	}
}

func TestRewriteManyPages(t *testing.T) {
	chat := &fakeChat{}
	r := New(chat, 0, logger.New("error"))

	var pages []string
	for i := 0; i < 25; i++ {
		pages = append(pages, fmt.Sprintf("page-%02d", i))
	}

	got, err := r.Rewrite(context.Background(), pages, "i")
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if len(got) != 25 {
		t.Fatalf("got %d outputs, want 25", len(got))
	}
	for i, out := range got {
		if !strings.HasSuffix(out, fmt.Sprintf("page-%02d", i)) {
			t.Errorf("output %d out of order: %q", i, out)
		}
	}
}
