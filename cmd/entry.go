package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BojanStipic/micko-peg/compiler"
	"github.com/BojanStipic/micko-peg/internals"
	"github.com/BojanStipic/micko-peg/lexer"
	"github.com/BojanStipic/micko-peg/parser"
	"github.com/BojanStipic/micko-peg/repl"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	stdinName = "<stdin>"
)

type (
	CommandFunc func(args []string) int

	FlagInfo struct {
		Name        string
		Description string
	}

	CommandInfo struct {
		Description string
		Function    CommandFunc
		Flags       []FlagInfo
	}
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var commands map[string]CommandInfo

var fileFlag = FlagInfo{
	Name:        "-f",
	Description: "program file path, the program is read from stdin when omitted",
}

func init() {
	commands = map[string]CommandInfo{
		"check": {
			Description: "Parses and semantically checks a miniC program, silent on success",
			Function:    Check,
			Flags: []FlagInfo{
				fileFlag,
				{
					Name:        "-v",
					Description: "print the tokens, the syntax tree and the global symbols",
				},
			},
		},
		"tokens": {
			Description: "Prints the token stream of a miniC program",
			Function:    Tokens,
			Flags:       []FlagInfo{fileFlag},
		},
		"ast": {
			Description: "Prints the syntax tree of a miniC program",
			Function:    Ast,
			Flags:       []FlagInfo{fileFlag},
		},
		"repl": {
			Description: "Checks each line typed as a whole program",
			Function:    Repl,
			Flags:       []FlagInfo{},
		},
		"help": {
			Description: "Prints the usage of all commands",
			Function:    Help,
			Flags:       []FlagInfo{},
		},
	}
}

type options struct {
	path    string
	verbose bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f":
			if i+1 >= len(args) || len(args[i+1]) == 0 {
				return opts, errors.New("provide the filepath after the -f flag")
			}
			i++
			opts.path = args[i]
		case "-v":
			opts.verbose = true
		default:
			return opts, fmt.Errorf("unknown flag %v", args[i])
		}
	}
	return opts, nil
}

// readProgram returns the display name and content of the program to work on.
func readProgram(opts options) (string, string, error) {
	if opts.path == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", err
		}
		return stdinName, string(content), nil
	}

	content, err := os.ReadFile(opts.path)
	if err != nil {
		return "", "", err
	}
	return filepath.Base(opts.path), string(content), nil
}

func load(args []string) (string, string, options, int) {
	opts, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return "", "", opts, exitUsage
	}

	name, content, err := readProgram(opts)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return "", "", opts, exitError
	}
	return name, content, opts, exitOK
}

// report prints err with a source snippet when it carries a position.
func report(err error, source string) int {
	var compileErr *internals.Error
	if errors.As(err, &compileErr) {
		fmt.Fprintln(stderr, internals.Render(compileErr, source))
	} else {
		fmt.Fprintln(stderr, "ERROR:", err)
	}
	return exitError
}

func Check(args []string) int {
	name, content, opts, code := load(args)
	if code != exitOK {
		return code
	}

	if opts.verbose {
		for _, tok := range lexer.NewLexer(name, content).Tokenize() {
			fmt.Fprintln(stdout, tok)
		}
	}

	program, symbols, err := compiler.Analyze(name, content)
	if opts.verbose && program != nil {
		fmt.Fprint(stdout, program)
	}
	if err != nil {
		return report(err, content)
	}

	if opts.verbose {
		for _, sym := range symbols {
			fmt.Fprintln(stdout, sym)
		}
	}
	return exitOK
}

func Tokens(args []string) int {
	name, content, _, code := load(args)
	if code != exitOK {
		return code
	}

	for _, tok := range lexer.NewLexer(name, content).Tokenize() {
		fmt.Fprintln(stdout, tok)
	}
	return exitOK
}

func Ast(args []string) int {
	name, content, _, code := load(args)
	if code != exitOK {
		return code
	}

	program, err := parser.NewParser(lexer.NewLexer(name, content), name).Parse()
	if err != nil {
		return report(err, content)
	}
	fmt.Fprint(stdout, program)
	return exitOK
}

func Repl(args []string) int {
	repl.Start(stdin, stdout)
	return exitOK
}

func Help(args []string) int {
	if len(args) < 1 {
		// show the whole help catalog
		printResult := "\n\033[1;35mSupported Commands:\033[0m\n\n"

		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			printResult += describe(name, commands[name], "  ")
		}

		fmt.Fprintln(stdout, printResult)
		return exitOK
	}

	// print the help of the specified commands
	cmdName := args[0]

	// check if command is supported or not
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintln(stderr, "ERROR: provided command, isn't supported")
		return exitUsage
	}

	printResult := fmt.Sprintf("\n\033[1;35mCommand:\033[0m \033[1;36m%v\033[0m\n", cmdName)
	printResult += fmt.Sprintf("\033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", cmd.Description)

	if len(cmd.Flags) > 0 {
		printResult += fmt.Sprintln("\033[1;37mFlags:\033[0m")
		for _, flag := range cmd.Flags {
			printResult += fmt.Sprintf("  \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", flag.Name, flag.Description)
		}
	} else {
		printResult += "\033[0;37m(No flags available)\033[0m\n"
	}

	fmt.Fprintln(stdout, printResult)
	return exitOK
}

func describe(name string, cmd CommandInfo, indent string) string {
	printResult := fmt.Sprintf("%s\033[1;36m%v\033[0m\n", indent, name)
	printResult += fmt.Sprintf("%s  \033[1;37mDescription:\033[0m \033[0;37m%v\033[0m\n", indent, cmd.Description)

	if len(cmd.Flags) > 0 {
		printResult += indent + "  \033[1;37mFlags:\033[0m\n"
		for _, flag := range cmd.Flags {
			printResult += fmt.Sprintf("%s    \033[1;33m%v\033[0m - \033[0;37m%v\033[0m\n", indent, flag.Name, flag.Description)
		}
	}
	return printResult + "\n"
}

// Execute runs the command named by os.Args and returns the exit code.
func Execute() int {
	return run(os.Args[1:])
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "ERROR: at least provide command name to kick off the cli")
		return exitUsage
	}

	name := args[0]

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "ERROR: unknown command %v, check help for manual.\n", name)
		return exitUsage
	}

	return cmd.Function(args[1:])
}
