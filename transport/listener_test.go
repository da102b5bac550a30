// Tests for listener bind and the accept loop.
// License: Apache-2.0

package transport

import (
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenInvalidPortIsBindError(t *testing.T) {
	_, err := Listen(-1)
	require.Error(t, err)

	var bindErr *BindError
	assert.True(t, errors.As(err, &bindErr))
	assert.Equal(t, -1, bindErr.Port)
}

func TestAcceptLoopDispatchesEachConnectionOnce(t *testing.T) {
	l, err := Listen(0)
	require.NoError(t, err)

	conns := make(chan net.Conn, 16)
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		l.AcceptLoop(func(c net.Conn) bool {
			conns <- c
			return true
		})
	}()

	const dials = 5
	for i := 0; i < dials; i++ {
		c, err := net.Dial("tcp", l.Addr().String())
		require.NoError(t, err)
		defer c.Close()
	}

	for i := 0; i < dials; i++ {
		select {
		case c := <-conns:
			c.Close()
		case <-time.After(2 * time.Second):
			t.Fatalf("connection %d never dispatched", i)
		}
	}

	require.NoError(t, l.Close())
	select {
	case <-loopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("accept loop did not exit after Close")
	}
	assert.Empty(t, conns, "no connection may be dispatched twice")
}

func TestAcceptLoopClosesRefusedConnections(t *testing.T) {
	l, err := Listen(0)
	require.NoError(t, err)
	defer l.Close()

	go l.AcceptLoop(func(c net.Conn) bool { return false })

	c, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	defer c.Close()

	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = c.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF, "refused connection must be closed unserved")
}
