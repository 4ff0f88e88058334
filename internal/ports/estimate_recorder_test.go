package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/guildandgrove/website/internal/domain"
)

type stubRecorder struct {
	recordErr error
	closeErr  error
	sources   []string
	closed    bool
}

func (s *stubRecorder) RecordEstimate(ctx context.Context, source string, est domain.Estimate) error {
	s.sources = append(s.sources, source)
	return s.recordErr
}

func (s *stubRecorder) Close(ctx context.Context) error {
	s.closed = true
	return s.closeErr
}

func TestRecorders_RecordEstimate_CallsAll(t *testing.T) {
	errFirst := errors.New("first")
	a := &stubRecorder{recordErr: errFirst}
	b := &stubRecorder{recordErr: errors.New("second")}
	c := &stubRecorder{}

	err := Recorders{a, b, c}.RecordEstimate(context.Background(), SourceAPI, domain.Estimate{})

	if !errors.Is(err, errFirst) {
		t.Errorf("expected first error, got %v", err)
	}
	for i, r := range []*stubRecorder{a, b, c} {
		if len(r.sources) != 1 || r.sources[0] != SourceAPI {
			t.Errorf("recorder %d: expected one %q record, got %v", i, SourceAPI, r.sources)
		}
	}
}

func TestRecorders_Close(t *testing.T) {
	a := &stubRecorder{}
	b := &stubRecorder{closeErr: errors.New("flush failed")}

	if err := (Recorders{a, b}).Close(context.Background()); err == nil {
		t.Error("expected close error")
	}
	if !a.closed || !b.closed {
		t.Error("expected every recorder to be closed")
	}
}

func TestRecorders_Empty(t *testing.T) {
	var rs Recorders
	if err := rs.RecordEstimate(context.Background(), SourceCLI, domain.Estimate{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := rs.Close(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
