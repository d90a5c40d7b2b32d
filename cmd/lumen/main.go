// Command lumen is the entry point for the Lumen interpreter. It
// supports three modes of operation:
//
//  1. REPL mode (no arguments): interactive read-eval-print loop over
//     stdin/stdout, environment persisting across lines.
//  2. File mode (one argument): read the named source file and run it
//     as a single program, halting on the first diagnostic.
//  3. Server mode (`lumen server <port>`): a TCP REPL, one independent
//     session per connection.
package main

import (
	"net"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/lexer"
	"github.com/lumen-lang/lumen/parser"
	"github.com/lumen-lang/lumen/repl"
)

const (
	version = "v0.1.0"
	author  = "lumen-lang"
	license = "MIT"
	prompt  = "lumen >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
 ██▓    █    ██  ███▄ ▄███▓▓█████  ███▄    █
▓██▒    ██  ▓██▒▓██▒▀█▀ ██▒▓█   ▀  ██ ▀█   █
▒██░   ▓██  ▒██░▓██    ▓██░▒███   ▓██  ▀█ ██▒
▒██░   ▓▓█  ░██░▒██    ▒██ ▒▓█  ▄ ▓██▒  ▐▌██▒
░██████▒▒▒█████▓ ▒██▒   ░██▒░▒████▒▒██░   ▓██░
░ ▒░▓  ░░▒▓▒ ▒ ▒ ░ ▒░   ░  ░░░ ▒░ ░░ ▒░   ▒ ▒
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) <= 1 {
		repler := repl.NewRepl(banner, version, author, line, license, prompt)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "usage error: missing port. usage: lumen server <port>")
			os.Exit(1)
		}
		startServer(os.Args[2])
	default:
		if len(os.Args) > 2 || strings.HasPrefix(arg, "-") {
			redColor.Fprintln(os.Stderr, "usage error: lumen [file] | lumen server <port>")
			os.Exit(2)
		}
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("Lumen - a small statically-typed interpreted language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumen                 Start interactive REPL mode")
	yellowColor.Println("  lumen <path-to-file>  Execute a Lumen source file")
	yellowColor.Println("  lumen server <port>   Start a REPL server on the given port")
	yellowColor.Println("  lumen --help          Display this help message")
	yellowColor.Println("  lumen --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("Lumen %s (%s license, %s)\n", version, license, author)
}

// runFile reads srcPath and runs its contents as a single program. Any
// diagnostic halts execution immediately and exits non-zero, matching
// file mode's "interpreter halts on error" contract.
func runFile(srcPath string) {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", srcPath, err)
		os.Exit(1)
	}

	source := lexer.Normalize(string(content))

	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	l := lexer.New(source)
	tokens := l.Scan()
	if len(l.Errors()) > 0 {
		for _, d := range l.Errors() {
			redColor.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(1)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, d := range p.Errors() {
			redColor.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(os.Stdout)
	if d := evaluator.Run(stmts); d != nil {
		redColor.Fprintln(os.Stderr, d.Error())
		os.Exit(1)
	}
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("lumen REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
