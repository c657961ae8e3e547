package x11

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

const (
	atomClientList   = "_NET_CLIENT_LIST"
	atomActiveWindow = "_NET_ACTIVE_WINDOW"
	atomWMName       = "_NET_WM_NAME"
	atomWMPID        = "_NET_WM_PID"
	atomUTF8String   = "UTF8_STRING"
)

// maxTitleLen bounds title reads, in 32-bit units.
const maxTitleLen = 1024

// Client is an X11 connection with the EWMH atoms it needs interned.
// xgb connections are safe for concurrent use, so one Client serves the
// enumerator, the resolver and the activation worker.
type Client struct {
	conn  *xgb.Conn
	root  xproto.Window
	atoms map[string]xproto.Atom
}

// Dial connects to the display named by $DISPLAY, or to display if set.
func Dial(display string) (*Client, error) {
	var (
		conn *xgb.Conn
		err  error
	)
	if display == "" {
		conn, err = xgb.NewConn()
	} else {
		conn, err = xgb.NewConnDisplay(display)
	}
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}

	setup := xproto.Setup(conn)
	client := &Client{
		conn:  conn,
		root:  setup.DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom),
	}

	for _, name := range []string{atomClientList, atomActiveWindow, atomWMName, atomWMPID, atomUTF8String} {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "intern atom %s", name)
		}
		client.atoms[name] = reply.Atom
	}

	return client, nil
}

// Close closes the display connection.
func (c *Client) Close() error {
	c.conn.Close()
	return nil
}

func (c *Client) getProperty(window xproto.Window, atom, atomType xproto.Atom, length uint32) (*xproto.GetPropertyReply, error) {
	return xproto.GetProperty(c.conn, false, window, atom, atomType, 0, length).Reply()
}
