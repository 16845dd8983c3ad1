package area

import (
	"fmt"
	"strings"
)

// InvalidID is the area ID reported when the pointer is outside every area.
const InvalidID = -1

// Vec is a 2D position.
type Vec struct {
	X, Y float32
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec { return Vec{X: r.X, Y: r.Y} }

// Contains reports whether p lies in [X, X+W) × [Y, Y+H).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Normalize maps an area-space position to [0, 1] along each axis.
// A degenerate rectangle maps everything to the origin.
func (r Rect) Normalize(local Vec) Vec {
	if r.W == 0 || r.H == 0 {
		return Vec{}
	}
	return Vec{X: local.X / r.W, Y: local.Y / r.H}
}

// Denormalize maps a normalized position back to screen space.
func (r Rect) Denormalize(n Vec) Vec {
	return Vec{X: r.X + n.X*r.W, Y: r.Y + n.Y*r.H}
}

// Button identifies a pointer button.
type Button uint8

// Pointer buttons.
const (
	Left Button = iota
	Right
	Middle

	// ButtonCount is the number of tracked buttons.
	ButtonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

// ButtonSet is a bit set of held buttons.
type ButtonSet uint8

// Buttons builds a set from individual buttons.
func Buttons(bs ...Button) ButtonSet {
	var s ButtonSet
	for _, b := range bs {
		s |= 1 << b
	}
	return s
}

// Has reports whether b is in the set.
func (s ButtonSet) Has(b Button) bool {
	return s&(1<<b) != 0
}

// Modifier is a bit set of keyboard modifiers held during a pointer event.
type Modifier uint8

// Keyboard modifiers.
const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
)

// Has reports whether every modifier in m is held.
func (s Modifier) Has(m Modifier) bool {
	return s&m == m
}

func (s Modifier) String() string {
	var parts []string
	if s.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if s.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if s.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Info describes the pointer relative to the area under it.
type Info struct {
	// ID is the area under the pointer, or InvalidID.
	ID int

	// Screen is the pointer position in host coordinates.
	Screen Vec

	// Local is the position relative to the area's top-left corner.
	Local Vec

	// Normalized is Local divided by the area size.
	Normalized Vec

	// Bounds is the area rectangle; zero when ID is InvalidID.
	Bounds Rect

	// Mods are the keyboard modifiers held at the time of the event.
	Mods Modifier
}

// Valid reports whether the pointer was inside an area.
func (i Info) Valid() bool {
	return i.ID != InvalidID
}

func (i Info) String() string {
	return fmt.Sprintf("(id=%d screen=%v local=%v norm=%v bounds=%v mods=%v)",
		i.ID, i.Screen, i.Local, i.Normalized, i.Bounds, i.Mods)
}

func invalidInfo() Info {
	return Info{ID: InvalidID}
}

// State is the pointer state polled by the host for one frame.
type State struct {
	Pos     Vec
	Buttons ButtonSet
	Scroll  float32
	Mods    Modifier
}

// Listener receives pointer events from a Handler.
type Listener interface {
	OnHover(info Info)
	OnDown(info Info, b Button)
	OnUp(info Info, b Button, down Info)
	OnDrag(info Info, b Button, down Info)
	OnScroll(info Info, delta float32)
}

// Funcs adapts a set of optional callbacks to the Listener interface.
// Nil callbacks are skipped.
type Funcs struct {
	Hover  func(info Info)
	Down   func(info Info, b Button)
	Up     func(info Info, b Button, down Info)
	Drag   func(info Info, b Button, down Info)
	Scroll func(info Info, delta float32)
}

func (f Funcs) OnHover(info Info) {
	if f.Hover != nil {
		f.Hover(info)
	}
}

func (f Funcs) OnDown(info Info, b Button) {
	if f.Down != nil {
		f.Down(info, b)
	}
}

func (f Funcs) OnUp(info Info, b Button, down Info) {
	if f.Up != nil {
		f.Up(info, b, down)
	}
}

func (f Funcs) OnDrag(info Info, b Button, down Info) {
	if f.Drag != nil {
		f.Drag(info, b, down)
	}
}

func (f Funcs) OnScroll(info Info, delta float32) {
	if f.Scroll != nil {
		f.Scroll(info, delta)
	}
}
