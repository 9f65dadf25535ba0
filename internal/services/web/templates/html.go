package templates

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// text writes escaped text content.
func (h *html) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes name="value" with the value escaped, preceded by a space.
func (h *html) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *html) intAttr(name string, value int) {
	h.attr(name, strconv.Itoa(value))
}
