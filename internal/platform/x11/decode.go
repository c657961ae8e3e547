package x11

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"github.com/mj1618/winswitch/internal/model"
)

// decodeWindowList decodes a 32-bit WINDOW[] property value.
func decodeWindowList(value []byte) []model.Handle {
	handles := make([]model.Handle, 0, len(value)/4)
	for i := 0; i+4 <= len(value); i += 4 {
		if w := binary.LittleEndian.Uint32(value[i:]); w != 0 {
			handles = append(handles, model.Handle(w))
		}
	}
	return handles
}

// decodeCardinal decodes a single 32-bit CARDINAL property value.
func decodeCardinal(value []byte) (uint32, bool) {
	if len(value) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(value), true
}

// decodeUTF8 decodes a UTF8_STRING property, dropping NUL padding.
func decodeUTF8(value []byte) string {
	s := strings.TrimRight(string(value), "\x00")
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	return s
}

// decodeLatin1 decodes a STRING property, which ICCCM defines as ISO-8859-1.
func decodeLatin1(value []byte) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, c := range value {
		if c == 0 {
			break
		}
		b.WriteRune(rune(c))
	}
	return b.String()
}
