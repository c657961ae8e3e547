package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
)

// sourcePager marks the _NET_ACTIVE_WINDOW request as coming from a pager,
// which window managers honour without focus-stealing prevention.
const sourcePager = 2

// Activate maps the window and asks the window manager to activate it. When
// the request cannot be delivered it raises and focuses the window directly.
func (c *Client) Activate(h model.Handle) error {
	w := xproto.Window(h)

	if _, err := xproto.GetWindowAttributes(c.conn, w).Reply(); err != nil {
		return &platform.ActivationError{Handle: h, Err: err}
	}

	if err := xproto.MapWindowChecked(c.conn, w).Check(); err != nil {
		return &platform.ActivationError{Handle: h, Err: errors.Wrap(err, "map window")}
	}

	if err := c.requestActive(w); err == nil {
		return nil
	}

	if err := xproto.ConfigureWindowChecked(c.conn, w, xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove}).Check(); err != nil {
		return &platform.ActivationError{Handle: h, Err: errors.Wrap(err, "raise window")}
	}
	if err := xproto.SetInputFocusChecked(c.conn, xproto.InputFocusPointerRoot, w,
		xproto.TimeCurrentTime).Check(); err != nil {
		return &platform.ActivationError{Handle: h, Err: errors.Wrap(err, "set input focus")}
	}
	return nil
}

// requestActive sends the EWMH _NET_ACTIVE_WINDOW client message to the root.
func (c *Client) requestActive(w xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.atoms[atomActiveWindow],
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourcePager, xproto.TimeCurrentTime, 0, 0, 0}),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	return errors.Wrap(
		xproto.SendEventChecked(c.conn, false, c.root, mask, string(ev.Bytes())).Check(),
		"send _NET_ACTIVE_WINDOW",
	)
}
