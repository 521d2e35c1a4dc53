package relay

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu       sync.Mutex
	frames   []interface{}
	writeErr error
	closed   bool
}

func (f *fakeChannel) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.frames = append(f.frames, v)
	return nil
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	ch := &fakeChannel{}

	_, ok := reg.Lookup(1)
	require.False(t, ok)

	reg.Register(1, ch)
	got, ok := reg.Lookup(1)
	require.True(t, ok)
	require.Same(t, ch, got.(*fakeChannel))
}

func TestRegisterReplacesPreviousChannel(t *testing.T) {
	reg := NewRegistry()
	c1 := &fakeChannel{}
	c2 := &fakeChannel{}

	reg.Register(1, c1)
	reg.Register(1, c2)

	got, ok := reg.Lookup(1)
	require.True(t, ok)
	require.Same(t, c2, got.(*fakeChannel))
}

func TestUnregisterIgnoresStaleChannel(t *testing.T) {
	reg := NewRegistry()
	c1 := &fakeChannel{}
	c2 := &fakeChannel{}

	reg.Register(1, c1)
	reg.Register(1, c2)

	// The old connection disconnects after the replacement registered.
	reg.Unregister(1, c1)

	got, ok := reg.Lookup(1)
	require.True(t, ok, "stale unregister must not clear the live channel")
	require.Same(t, c2, got.(*fakeChannel))
}

func TestUnregisterRemovesCurrentChannel(t *testing.T) {
	reg := NewRegistry()
	ch := &fakeChannel{}

	reg.Register(1, ch)
	reg.Unregister(1, ch)

	_, ok := reg.Lookup(1)
	require.False(t, ok)

	// Idempotent
	reg.Unregister(1, ch)
	_, ok = reg.Lookup(1)
	require.False(t, ok)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			ch := &fakeChannel{}
			reg.Register(userID, ch)
			reg.Lookup(userID)
			reg.Unregister(userID, ch)
		}(uint(i % 10))
	}
	wg.Wait()
}
