package hyper

import "github.com/hajimehoshi/ebiten/v2"

type EventType string

const (
	EventKeyDown EventType = "keydown"
	EventKeyUp   EventType = "keyup"
	EventReset   EventType = "reset"
	EventPause   EventType = "pause"
	EventQuit    EventType = "quit"
)

type EventKeyData struct {
	Key  ebiten.Key
	Down bool
}
