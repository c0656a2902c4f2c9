package actor

import (
	"testing"
	"time"

	"github.com/yungbote/ticketdesk/internal/ticket"
)

const testTimeout = 5 * time.Second

func testDraft() ticket.Draft {
	return ticket.Draft{
		Title:       ticket.MustTitle("A title"),
		Description: ticket.MustDescription("A description"),
	}
}

// blockCommand parks the worker until release is closed, so tests can fill
// the mailbox deterministically.
type blockCommand struct {
	started chan struct{}
	release chan struct{}
}

func newBlockCommand() blockCommand {
	return blockCommand{started: make(chan struct{}), release: make(chan struct{})}
}

func (c blockCommand) run(*ticket.Store) bool {
	close(c.started)
	<-c.release
	return true
}
func (blockCommand) kind() string { return "block" }

type panicCommand struct{}

func (panicCommand) run(*ticket.Store) bool { panic("boom") }
func (panicCommand) kind() string          { return "panic" }

func requireReceive[T any](t *testing.T, ch <-chan T, msg string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(testTimeout):
		t.Fatalf("timed out after %v: %s", testTimeout, msg)
	}
	panic("unreachable")
}

func requireClosed(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(testTimeout):
		t.Fatalf("timed out after %v: %s", testTimeout, msg)
	}
}

// parkWorker submits a blocking command and waits until the worker holds it.
func parkWorker(t *testing.T, c *Client) blockCommand {
	t.Helper()
	block := newBlockCommand()
	if err := c.box.submit(block); err != nil {
		t.Fatalf("submit block: %v", err)
	}
	requireClosed(t, block.started, "worker picking up block command")
	return block
}
