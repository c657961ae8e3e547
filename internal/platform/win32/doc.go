// Package win32 provides window enumeration and activation through user32.
package win32
