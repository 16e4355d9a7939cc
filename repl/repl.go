package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BojanStipic/micko-peg/compiler"
	"github.com/BojanStipic/micko-peg/internals"
)

const PROMPT = `>>> `

const replName = "<repl>"

// Start checks every non-empty line read from in as a complete program.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		err := compiler.Check(replName, line)
		if err == nil {
			io.WriteString(out, "ok\n")
			continue
		}

		var compileErr *internals.Error
		if errors.As(err, &compileErr) {
			io.WriteString(out, internals.Render(compileErr, line))
		} else {
			io.WriteString(out, err.Error())
		}
		io.WriteString(out, "\n")
	}
}
