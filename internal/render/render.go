// Package render draws an llrb tree as text.
//
// The tree is laid out sideways in key order, smallest key on the
// first line, each node indented by its depth. Red links are drawn
// with "==", black links with "--".
package render

import (
	"fmt"
	"io"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/AlonMell/redblackst/internal/llrb"
)

const indent = "    "

// Walker is the read-only view of a tree the renderer needs.
type Walker[K, V any] interface {
	Walk(fn func(llrb.NodeView[K, V]) bool)
	Size() int
	Height() int
	BlackHeight() int
}

// Text writes one line per node of t to w.
func Text[K, V any](w io.Writer, t Walker[K, V]) error {
	var err error
	t.Walk(func(nv llrb.NodeView[K, V]) bool {
		_, err = io.WriteString(w, Line(nv)+"\n")
		return err == nil
	})
	return err
}

// Line formats a single node the way Text does.
func Line[K, V any](nv llrb.NodeView[K, V]) string {
	if nv.Depth == 0 {
		return fmt.Sprint(nv.Key)
	}
	link := "-- "
	if nv.Red {
		link = "== "
	}
	return strings.Repeat(indent, nv.Depth-1) + link + fmt.Sprint(nv.Key)
}

// Summary writes the size and shape of t as a single line.
func Summary[K, V any](w io.Writer, t Walker[K, V]) error {
	_, err := fmt.Fprintf(w, "size:%s height:%d blackheight:%d\n",
		humanize.Comma(int64(t.Size())), t.Height(), t.BlackHeight())
	return err
}
