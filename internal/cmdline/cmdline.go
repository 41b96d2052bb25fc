// Package cmdline renders argument lists as a single display string.
//
// The rendering joins arguments with one space and does no quoting, so an
// argument that contains spaces or shell metacharacters is shown verbatim.
// It is meant for log lines, not for feeding back to a shell.
package cmdline

import "github.com/xdg/nom/internal/buffer"

// Render appends the display form of args to sb, followed by a NUL
// terminator.
func Render(args *buffer.Args, sb *buffer.Builder) {
	for i, arg := range args.All() {
		if i != 0 {
			sb.AppendByte(' ')
		}
		sb.AppendString(arg)
	}
	sb.AppendNull()
}

// String returns the display form of args without the terminator.
func String(args *buffer.Args) string {
	var sb buffer.Builder
	defer sb.Release()
	Render(args, &sb)
	return sb.CString()
}
