package database

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPinger struct {
	mu      sync.Mutex
	results []error
	calls   int
}

func (p *scriptedPinger) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.calls < len(p.results) {
		err = p.results[p.calls]
	}
	p.calls++
	return err
}

func (p *scriptedPinger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

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

func TestWatchLogsTransitionsOnly(t *testing.T) {
	down := errors.New("connection refused")
	pinger := &scriptedPinger{results: []error{nil, down, down, nil, nil}}

	var out syncBuffer
	logger := zerolog.New(&out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Watch(ctx, pinger, &logger, time.Millisecond, time.Second)
		close(done)
	}()

	require.Eventually(t, func() bool { return pinger.count() >= 5 }, 2*time.Second, time.Millisecond)
	cancel()
	<-done

	logs := out.String()
	assert.Equal(t, 1, strings.Count(logs, "database health check failed"))
	assert.Equal(t, 1, strings.Count(logs, "database health check recovered"))
}

func TestWatchStopsOnCancel(t *testing.T) {
	logger := zerolog.Nop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Watch(ctx, &scriptedPinger{}, &logger, time.Hour, time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	subtree, err := LoadMigrations()
	require.NoError(t, err)

	body, err := fs.ReadFile(subtree, "001_create_zoos.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS zoos")
	assert.Contains(t, string(body), "name VARCHAR(128) NOT NULL")
}
