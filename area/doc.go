// Package area turns polled pointer state into pointer events scoped to
// rectangular screen areas.
//
// A host registers areas with a Handler and calls Update once per frame
// with the current pointer position, held buttons, scroll delta and
// keyboard modifiers. The Handler derives press and release edges from the
// previous frame and notifies its listeners:
//
//   - OnHover when the pointer moved
//   - OnScroll when the scroll delta is non-zero
//   - OnDown, OnUp and OnDrag per button, in that order
//
// Every event carries an Info describing the area under the pointer, with
// the pointer position in screen, area and normalized area space. Up and
// drag events also carry the Info captured when the button went down.
//
// Handler is not safe for concurrent use; call it from the host's frame loop.
package area
