package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an Application whose stdout and stderr are captured
// and whose configuration discovery starts in dir. Standard input is empty.
func SetupAppTest(t *testing.T, dir string) (*Application, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApplication(stdout, stderr)
	testApp.WorkDir = dir
	testApp.Stdin = strings.NewReader("")

	t.Cleanup(func() {
		if os.Getenv("STYLEGRID_TEST_LOGS") == "true" {
			t.Logf("--- stdout for %s ---\n%s", t.Name(), stdout.String())
			t.Logf("--- stderr for %s ---\n%s", t.Name(), stderr.String())
		}
	})

	return testApp, stdout, stderr
}
