package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/chartparse/cfgtext"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse sentences interactively",
	Long: `Start an interactive session. Every line entered is parsed as a sentence.
Lines starting with ':' are commands:

  :rules        list the rules of the grammar
  :load <file>  switch to another grammar file
  :trace        toggle printing rule applications instead of trees
  :quit         end the session`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Intp is our interpreter object.
type Intp struct {
	grammar *cfgtext.Grammar
	repl    *readline.Instance
	trace   bool
}

func runREPL(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar()
	if err != nil {
		return err
	}
	repl, err := readline.New("cykp> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{grammar: g, repl: repl}
	pterm.Info.Println("Welcome to cykp") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")   // inform user how to stop the CLI
	intp.REPL()
	return nil
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
		quit, err := intp.Eval(line)
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

// Eval executes a command or parses a sentence.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		trees, err := parseSentence(intp.grammar, line)
		if err != nil {
			return false, err
		}
		if len(trees) == 0 {
			return false, fmt.Errorf("no derivation")
		}
		printTrees(trees, intp.grammar.Vocabulary, intp.trace)
		return false, nil
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":rules":
		printRules(intp.grammar.Vocabulary, intp.grammar.Grammar)
	case ":trace":
		intp.trace = !intp.trace
	case ":load":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :load <file>")
		}
		grammarFile = args[1]
		g, err := loadGrammar()
		if err != nil {
			return false, err
		}
		intp.grammar = g
		pterm.Info.Println(fmt.Sprintf("loaded %d rules from %s", len(g.Rules()), grammarFile))
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}
