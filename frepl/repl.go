package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/fsa"
	"github.com/npillmayer/fsa/dfa"
	"github.com/npillmayer/fsa/eilenberg"
	"github.com/npillmayer/fsa/regex"
)

func tracer() tracing.Trace {
	return tracing.Select("fsa.repl")
}

// main() starts an interactive CLI ("F.REPL"), where users may enter regular
// expressions and test words against them. An expression may be given on the
// command line; otherwise use the `regex` or `load` commands.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to FREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	// set up REPL
	repl, err := readline.New("frepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	input := strings.Join(flag.Args(), " ")
	if input = strings.TrimSpace(input); input != "" {
		if err := intp.compile(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	expr    regex.Expr
	machine *fsa.Automaton
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single command, given on a line by itself.
func (intp *Intp) Execute(line string) (bool, error) {
	args := strings.Fields(line)
	cmd := args[0]
	switch cmd {
	case "bye", "quit":
		return true, nil
	case "help":
		intp.help()
	case "regex":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: regex <expression>")
		}
		return false, intp.compile(strings.Join(args[1:], " "))
	case "load":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: load <json-file>")
		}
		return false, intp.loadJSON(args[1])
	case "print":
		if intp.expr == nil {
			return false, fmt.Errorf("no expression loaded")
		}
		pterm.Info.Println(intp.expr.String())
	case "machine":
		if intp.machine == nil {
			return false, fmt.Errorf("no expression loaded")
		}
		pterm.Info.Println(intp.machine.String())
		intp.machine.Dump() // details visible with -trace Debug
	case "accept":
		if intp.machine == nil {
			return false, fmt.Errorf("no expression loaded")
		}
		word := "" // a bare `accept` tests the empty word
		if len(args) > 1 {
			word = args[1]
		}
		if eilenberg.Accepts(intp.machine, word) {
			pterm.Info.Printf("accepts %q\n", word)
		} else {
			pterm.Info.Printf("rejects %q\n", word)
		}
	case "demo":
		return false, demo()
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	return false, nil
}

func (intp *Intp) help() {
	pterm.Info.Println("regex <expr>    parse an infix regular expression")
	pterm.Info.Println("load <file>     load an expression in JSON form")
	pterm.Info.Println("print           print the loaded expression")
	pterm.Info.Println("machine         show the Eilenberg machine")
	pterm.Info.Println("accept [word]   test a word for acceptance")
	pterm.Info.Println("demo            prune and minimize a sample DFA")
	pterm.Info.Println("bye             quit")
}

func (intp *Intp) compile(input string) error {
	expr, err := regex.Parse(input)
	if err != nil {
		return err
	}
	return intp.use(expr)
}

func (intp *Intp) loadJSON(filename string) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	expr, err := regex.Decode(data)
	if err != nil {
		return err
	}
	return intp.use(expr)
}

func (intp *Intp) use(expr regex.Expr) error {
	machine, err := eilenberg.FromExpr(expr)
	if err != nil {
		return err
	}
	intp.expr = expr
	intp.machine = machine
	pterm.Info.Printf("%s => machine with %d states\n", expr, machine.StateCount)
	return nil
}

// demo walks a 5-state machine with one unreachable and two equivalent
// states through pruning and minimization.
func demo() error {
	d, err := dfa.New([]rune("abc"), 5,
		[][]fsa.Edge{
			{{To: 1, Label: 'a'}, {To: 3, Label: 'b'}},
			{{To: 4, Label: 'c'}},
			{{To: 1, Label: 'b'}},
			{{To: 4, Label: 'c'}},
			{},
		},
		0, []int{4})
	if err != nil {
		return err
	}
	pterm.Info.Printf("input:     %v\n", d)
	pruned := d.Prune()
	pterm.Info.Printf("pruned:    %v\n", pruned)
	minimized := pruned.Minimize()
	pterm.Info.Printf("minimized: %v\n", minimized)
	for _, word := range []string{"ac", "bc", "abc"} {
		pterm.Info.Printf("accepts(%q) = %v = %v\n", word, d.Accepts(word),
			minimized.Accepts(word))
	}
	return nil
}
