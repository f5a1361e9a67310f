package assertions_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/blobkzg/testing/assertions"
	"github.com/sirupsen/logrus/hooks/test"
)

type recorder struct {
	msgs []string
}

func (r *recorder) logf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func TestEqual(t *testing.T) {
	r := &recorder{}
	assertions.Equal(r.logf, 42, 42)
	if len(r.msgs) != 0 {
		t.Fatalf("unexpected failure: %v", r.msgs)
	}
	assertions.Equal(r.logf, 42, 41, "custom %s", "message")
	if len(r.msgs) != 1 || !strings.Contains(r.msgs[0], "custom message") {
		t.Fatalf("expected custom failure message, got %v", r.msgs)
	}
}

func TestDeepEqual_ReportsDiff(t *testing.T) {
	r := &recorder{}
	assertions.DeepEqual(r.logf, []byte{1, 2}, []byte{1, 3})
	if len(r.msgs) != 1 || !strings.Contains(r.msgs[0], "diff") {
		t.Fatalf("expected diff in failure message, got %v", r.msgs)
	}
}

func TestErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	r := &recorder{}
	assertions.ErrorIs(r.logf, errors.Wrap(sentinel, "wrapped"), sentinel)
	if len(r.msgs) != 0 {
		t.Fatalf("unexpected failure: %v", r.msgs)
	}
	assertions.ErrorIs(r.logf, errors.New("other"), sentinel)
	if len(r.msgs) != 1 {
		t.Fatalf("expected one failure, got %v", r.msgs)
	}
}

func TestNotNil_TypedNilPointer(t *testing.T) {
	r := &recorder{}
	var p *int
	assertions.NotNil(r.logf, p)
	if len(r.msgs) != 1 {
		t.Fatalf("typed nil pointer should fail NotNil, got %v", r.msgs)
	}
}

func TestLogsContain(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.WithField("blockRoot", "0xabcd").Info("Validated blob sidecar")
	r := &recorder{}
	assertions.LogsContain(r.logf, hook, "Validated blob", true)
	assertions.LogsContain(r.logf, hook, "0xabcd", true)
	assertions.LogsContain(r.logf, hook, "Rejected", false)
	if len(r.msgs) != 0 {
		t.Fatalf("unexpected failure: %v", r.msgs)
	}
	assertions.LogsContain(r.logf, hook, "Rejected", true)
	if len(r.msgs) != 1 {
		t.Fatalf("expected missing log to be reported, got %v", r.msgs)
	}
}
