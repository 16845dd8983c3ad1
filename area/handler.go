package area

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
)

// Errors returned by Handler area registration.
var (
	// ErrInvalidID is returned when registering an area with InvalidID.
	ErrInvalidID = errors.New("area: invalid area id")

	// ErrDuplicateID is returned when an area ID is already registered.
	ErrDuplicateID = errors.New("area: duplicate area id")

	// ErrUnknownID is returned when an area ID is not registered.
	ErrUnknownID = errors.New("area: unknown area id")
)

// scrollEpsilon is the smallest scroll delta reported as a scroll event.
const scrollEpsilon = 1e-6

// Area is a registered rectangle.
type Area struct {
	ID     int
	Bounds Rect
}

// Handler dispatches pointer events for a set of areas.
// The zero value is not usable; create one with NewHandler.
type Handler struct {
	areas     []Area
	listeners []Listener

	lastPos Vec
	held    ButtonSet
	down    [ButtonCount]Info
}

// NewHandler creates a Handler with no areas.
func NewHandler() *Handler {
	h := &Handler{lastPos: Vec{X: -1, Y: -1}}
	for i := range h.down {
		h.down[i] = invalidInfo()
	}
	return h
}

// Add registers an area. When areas overlap, the one added first wins.
func (h *Handler) Add(id int, bounds Rect) error {
	if id == InvalidID {
		return ErrInvalidID
	}
	if h.index(id) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	h.areas = append(h.areas, Area{ID: id, Bounds: bounds})
	return nil
}

// SetBounds moves or resizes a registered area.
func (h *Handler) SetBounds(id int, bounds Rect) error {
	i := h.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	h.areas[i].Bounds = bounds
	return nil
}

// Remove unregisters an area and reports whether it existed.
func (h *Handler) Remove(id int) bool {
	i := h.index(id)
	if i < 0 {
		return false
	}
	h.areas = append(h.areas[:i], h.areas[i+1:]...)
	return true
}

// Areas returns the registered areas in priority order.
func (h *Handler) Areas() []Area {
	out := make([]Area, len(h.areas))
	copy(out, h.areas)
	return out
}

// Subscribe adds a listener. Listeners are notified in subscription order.
func (h *Handler) Subscribe(l Listener) {
	if l != nil {
		h.listeners = append(h.listeners, l)
	}
}

// Locate describes the pointer at screen position p.
func (h *Handler) Locate(p Vec) Info {
	for _, a := range h.areas {
		if !a.Bounds.Contains(p) {
			continue
		}
		local := p.Sub(a.Bounds.Pos())
		return Info{
			ID:         a.ID,
			Screen:     p,
			Local:      local,
			Normalized: a.Bounds.Normalize(local),
			Bounds:     a.Bounds,
		}
	}
	info := invalidInfo()
	info.Screen = p
	return info
}

// Update processes one frame of pointer state and notifies listeners.
func (h *Handler) Update(s State) {
	now := h.Locate(s.Pos)
	now.Mods = s.Mods
	moved := s.Pos != h.lastPos
	log := logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)

	if moved {
		if debug && now.Valid() {
			log.Debug("area: hover", "info", now)
		}
		for _, l := range h.listeners {
			l.OnHover(now)
		}
	}

	if math32.Abs(s.Scroll) > scrollEpsilon {
		if debug && now.Valid() {
			log.Debug("area: scroll", "info", now, "delta", s.Scroll)
		}
		for _, l := range h.listeners {
			l.OnScroll(now, s.Scroll)
		}
	}

	for b := Button(0); b < ButtonCount; b++ {
		wasHeld := h.held.Has(b)
		isHeld := s.Buttons.Has(b)

		if isHeld && !wasHeld {
			if debug && now.Valid() {
				log.Debug("area: down", "info", now, "button", b)
			}
			for _, l := range h.listeners {
				l.OnDown(now, b)
			}
			h.down[b] = now
		}

		if !isHeld && wasHeld {
			if debug && now.Valid() {
				log.Debug("area: up", "info", now, "button", b, "down", h.down[b])
			}
			for _, l := range h.listeners {
				l.OnUp(now, b, h.down[b])
			}
			h.down[b] = invalidInfo()
		}

		if isHeld && moved {
			if debug && now.Valid() {
				log.Debug("area: drag", "info", now, "button", b, "down", h.down[b])
			}
			for _, l := range h.listeners {
				l.OnDrag(now, b, h.down[b])
			}
		}
	}

	h.held = s.Buttons
	h.lastPos = s.Pos
}

// Held returns the buttons held as of the last Update.
func (h *Handler) Held() ButtonSet {
	return h.held
}

func (h *Handler) index(id int) int {
	for i, a := range h.areas {
		if a.ID == id {
			return i
		}
	}
	return -1
}
