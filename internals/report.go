package internals

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	colorGray  = "\033[1;90m"
	colorRed   = "\033[1;31m"
	colorReset = "\033[0m"
)

// Render formats err for a terminal: the position header, the offending line
// between its neighbours, a caret under the offending token and the message.
// Errors without a position fall back to a single line.
func Render(err *Error, source string) string {
	lines := strings.Split(source, "\n")
	row := err.Token.Row
	if row <= 0 || row > len(lines) {
		return fmt.Sprintf("%s%s%s%s: %s", colorGray, err.Position(), colorReset, err.Kind, err.Msg)
	}

	first, last := max(row-1, 1), min(row+1, len(lines))
	width := len(fmt.Sprint(last))

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s%s%s\n\n", colorGray, strings.TrimSuffix(err.Position(), " "), colorReset))

	for r := first; r <= last; r++ {
		lineContent := strings.ReplaceAll(strings.TrimRight(lines[r-1], "\r"), "\t", " ")
		out.WriteString(fmt.Sprintf("%*d    %s\n", width, r, lineContent))

		if r == row {
			totalSpaces := width + 4 + err.Token.Col - 1
			repeat := utf8.RuneCountInString(err.Token.Text)
			if repeat == 0 {
				repeat = 1
			}
			out.WriteString(strings.Repeat(" ", totalSpaces))
			out.WriteString(colorRed + strings.Repeat("^", repeat) + colorReset + "\n")
		}
	}

	out.WriteString(fmt.Sprintf("%s: %s", err.Kind, err.Msg))
	return out.String()
}
