// Package x11 implements window enumeration, owner lookup and activation for
// X11 sessions through the EWMH root window properties. It talks the X
// protocol directly and does not shell out to xdotool or wmctrl.
package x11
