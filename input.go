package hyper

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is the set of currently held keys. It is an explicit value
// passed into each update step rather than ambient global state: the tick
// loop drains key transitions into it once per tick, and everything
// downstream only reads it.
type InputState struct {
	held map[ebiten.Key]bool
}

func NewInputState() *InputState {
	return &InputState{held: make(map[ebiten.Key]bool)}
}

// Set records a key transition.
func (in *InputState) Set(key ebiten.Key, down bool) {
	in.held[key] = down
}

// Held reports whether a key is currently down.
func (in *InputState) Held(key ebiten.Key) bool {
	return in.held[key]
}

// Drain polls the pending key transitions since the previous tick and folds
// them into the state, emitting EventKeyDown/EventKeyUp for each. It never
// blocks; a tick with no transitions leaves the state untouched.
func (in *InputState) Drain(emitter *EventEmitter) {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		in.Set(key, true)
		emitter.Emit(EventKeyDown, EventKeyData{Key: key, Down: true})
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		in.Set(key, false)
		emitter.Emit(EventKeyUp, EventKeyData{Key: key, Down: false})
	}
}
