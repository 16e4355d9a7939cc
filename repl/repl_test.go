package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestStart(t *testing.T) {
	input := strings.Join([]string{
		"int main(){ return; }",
		"",
		"int f(){ return; }",
		"int main(){ x = 1; return; }",
	}, "\n")

	var out bytes.Buffer
	Start(strings.NewReader(input), &out)

	output := PROMPT + "ok\n" +
		PROMPT +
		PROMPT + "\033[1;90m<repl>: \033[0mSemantic error: undefined reference to `main`\n" +
		PROMPT + "\033[1;90m<repl>:1:13:\033[0m\n\n" +
		"1    int main(){ x = 1; return; }\n" +
		"                 \033[1;31m^\033[0m\n" +
		"Semantic error: `x` undeclared\n" +
		PROMPT

	if diff := deep.Equal(out.String(), output); diff != nil {
		t.Error(diff)
	}
}
