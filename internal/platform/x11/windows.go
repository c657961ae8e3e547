package x11

import (
	"math"

	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/mj1618/winswitch/internal/model"
	"github.com/mj1618/winswitch/internal/platform"
	"github.com/mj1618/winswitch/internal/platform/procinfo"
)

var errNoPID = errors.New("window has no _NET_WM_PID")

// Enumerate lists the windows managed by the window manager, taken from
// _NET_CLIENT_LIST in mapping order. Without an EWMH window manager it falls
// back to the viewable children of the root window.
func (c *Client) Enumerate() ([]platform.RawWindow, error) {
	reply, err := c.getProperty(c.root, c.atoms[atomClientList], xproto.AtomWindow, math.MaxUint32)
	if err != nil {
		return nil, &platform.QueryError{Op: atomClientList, Err: err}
	}

	var handles []model.Handle
	if reply.Format == 32 && reply.ValueLen > 0 {
		handles = decodeWindowList(reply.Value)
	} else {
		handles, err = c.rootChildren()
		if err != nil {
			return nil, &platform.QueryError{Op: "QueryTree", Err: err}
		}
	}

	windows := make([]platform.RawWindow, 0, len(handles))
	for _, h := range handles {
		windows = append(windows, platform.RawWindow{Handle: h, Title: c.windowTitle(xproto.Window(h))})
	}
	return windows, nil
}

func (c *Client) rootChildren() ([]model.Handle, error) {
	tree, err := xproto.QueryTree(c.conn, c.root).Reply()
	if err != nil {
		return nil, err
	}
	var handles []model.Handle
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.conn, w).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		handles = append(handles, model.Handle(w))
	}
	return handles, nil
}

// windowTitle prefers the UTF-8 _NET_WM_NAME and falls back to WM_NAME.
// A window that vanished mid-enumeration yields an empty title.
func (c *Client) windowTitle(w xproto.Window) string {
	reply, err := c.getProperty(w, c.atoms[atomWMName], c.atoms[atomUTF8String], maxTitleLen)
	if err == nil && len(reply.Value) > 0 {
		return decodeUTF8(reply.Value)
	}

	reply, err = c.getProperty(w, xproto.AtomWmName, xproto.AtomString, maxTitleLen)
	if err == nil && len(reply.Value) > 0 {
		return decodeLatin1(reply.Value)
	}
	return ""
}

// WindowPID reads _NET_WM_PID from the window.
func (c *Client) WindowPID(h model.Handle) (int, error) {
	reply, err := c.getProperty(xproto.Window(h), c.atoms[atomWMPID], xproto.AtomCardinal, 1)
	if err != nil {
		return 0, &platform.ResolutionError{Handle: h, Err: err}
	}
	pid, ok := decodeCardinal(reply.Value)
	if !ok || pid == 0 {
		return 0, &platform.ResolutionError{Handle: h, Err: errNoPID}
	}
	return int(pid), nil
}

// Executable resolves pid through the process table. X11 offers no better
// source; the PID is only meaningful when the client runs on this host.
func (c *Client) Executable(pid int) (string, bool) {
	return procinfo.Executable(pid)
}
