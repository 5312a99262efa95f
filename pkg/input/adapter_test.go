package input

import (
	"sync"
	"testing"
)

func newListening() *Adapter {
	a := NewAdapter("KeyQ", "KeyA", "ArrowUp", "ArrowDown")
	a.Listen()
	return a
}

func TestAdapter_KeyDownUp(t *testing.T) {
	a := newListening()

	if !a.KeyDown("KeyQ") {
		t.Fatal("KeyDown(KeyQ) not applied")
	}
	if !a.Pressed("KeyQ") {
		t.Error("KeyQ should be pressed")
	}
	if a.Pressed("KeyA") {
		t.Error("KeyA should not be pressed")
	}

	if !a.KeyUp("KeyQ") {
		t.Fatal("KeyUp(KeyQ) not applied")
	}
	if a.Pressed("KeyQ") {
		t.Error("KeyQ should be released")
	}
}

func TestAdapter_IgnoresUnrecognizedKeys(t *testing.T) {
	a := newListening()

	tests := []string{"KeyW", "Space", "", "arrowup"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if a.KeyDown(key) {
				t.Errorf("KeyDown(%q) applied", key)
			}
			if a.Pressed(key) {
				t.Errorf("Pressed(%q) = true", key)
			}
			if _, ok := a.Snapshot()[key]; ok {
				t.Errorf("Snapshot() contains %q", key)
			}
		})
	}

	if len(a.Snapshot()) != 4 {
		t.Errorf("snapshot has %d keys, expected 4", len(a.Snapshot()))
	}
}

func TestAdapter_IdempotentEvents(t *testing.T) {
	a := newListening()

	a.KeyDown("ArrowDown")
	a.KeyDown("ArrowDown")
	if !a.Pressed("ArrowDown") {
		t.Error("repeated KeyDown should keep key pressed")
	}

	a.KeyUp("ArrowDown")
	a.KeyUp("ArrowDown")
	if a.Pressed("ArrowDown") {
		t.Error("repeated KeyUp should keep key released")
	}
}

func TestAdapter_LastEventWins(t *testing.T) {
	a := newListening()

	// Press and release between two reads: only the last state is seen
	a.KeyDown("KeyA")
	a.KeyUp("KeyA")
	if a.Pressed("KeyA") {
		t.Error("press+release should read as released")
	}
}

func TestAdapter_ListenStop(t *testing.T) {
	a := NewAdapter("KeyQ")

	if a.Listening() {
		t.Error("new adapter should not be listening")
	}
	if a.KeyDown("KeyQ") {
		t.Error("event applied before Listen()")
	}

	a.Listen()
	a.KeyDown("KeyQ")
	a.Stop()

	if a.Listening() {
		t.Error("adapter still listening after Stop()")
	}
	if a.Pressed("KeyQ") {
		t.Error("Stop() should release held keys")
	}
	if a.KeyDown("KeyQ") {
		t.Error("event applied after Stop()")
	}
}

func TestAdapter_ConcurrentEvents(t *testing.T) {
	a := newListening()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			a.KeyDown("ArrowUp")
			a.KeyUp("ArrowUp")
		}()
		go func() {
			defer wg.Done()
			_ = a.Pressed("ArrowUp")
		}()
	}
	wg.Wait()

	if a.Pressed("ArrowUp") {
		t.Error("ArrowUp should end released")
	}
}
