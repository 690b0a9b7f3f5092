/*
Quadgen translates a small C-like source file into three-address-code
quadruples, driven by an LR(1) grammar read from a grammar file.

Usage:

	quadgen [flags] SOURCE GRAMMAR

The flags are:

	-c, --cache FILE
		Load ACTION/GOTO tables from FILE instead of building them from
		GRAMMAR. If FILE cannot be opened, the tables are built and written
		to FILE. If --save-cache is also given, FILE is not read; the tables
		are rebuilt and written to the --save-cache file.

	-s, --save-cache FILE
		After building tables from GRAMMAR, write them to FILE for reuse
		with --cache on a later run.

	-t, --print-tables
		Print the assembled ACTION/GOTO tables before translating.

	-f, --print-first
		Print the computed FIRST sets before translating.

	-r, --print-tree
		Print the parse tree before translating.

	-i, --interactive
		After translating SOURCE, start a REPL for inspecting the variable
		table and quadruple list.

	--config FILE
		Load default flag values from a TOML config file (default
		.quadgen.toml; a missing file is ignored); explicit flags still win.

	-o, --log FILE
		Write diagnostic output to FILE instead of stderr.

Exits non-zero on any fatal error (malformed grammar, grammar conflict,
syntax error, redeclaration, undeclared use, or I/O failure).
*/
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/cishoon/quadtranslator/internal/quadgen/firstset"
	"github.com/cishoon/quadtranslator/internal/quadgen/grammar"
	"github.com/cishoon/quadtranslator/internal/quadgen/lex"
	"github.com/cishoon/quadtranslator/internal/quadgen/parse"
	"github.com/cishoon/quadtranslator/internal/quadgen/qgerrors"
	"github.com/cishoon/quadtranslator/internal/quadgen/tablecache"
	"github.com/cishoon/quadtranslator/internal/quadgen/translate"
	"github.com/cishoon/quadtranslator/internal/quadgen/types"
	"github.com/cishoon/quadtranslator/internal/quadgenconfig"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitFatalError
)

var (
	returnCode int = ExitSuccess

	flagCachePath   = pflag.StringP("cache", "c", "", "Load ACTION/GOTO tables from this file instead of building them")
	flagSaveCache   = pflag.StringP("save-cache", "s", "", "Save built ACTION/GOTO tables to this file")
	flagPrintTables = pflag.BoolP("print-tables", "t", false, "Print the ACTION/GOTO tables before translating")
	flagPrintFirst  = pflag.BoolP("print-first", "f", false, "Print the FIRST sets before translating")
	flagPrintTree   = pflag.BoolP("print-tree", "r", false, "Print the parse tree before translating")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive REPL after translating")
	flagConfig      = pflag.String("config", ".quadgen.toml", "Load default flag values from a TOML config file")
	flagLogPath     = pflag.StringP("log", "o", "", "Write diagnostic output to this file instead of stderr")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	cfg, err := quadgenconfig.Load(*flagConfig)
	if err != nil {
		fail(ExitFatalError, err)
		return
	}
	applyConfigDefaults(cfg)

	var sourcePath, grammarPath string
	switch pflag.NArg() {
	case 1:
		if cfg.DefaultGram == "" {
			fmt.Fprintln(os.Stderr, "Usage: quadgen [flags] SOURCE GRAMMAR (or configure default_grammar)")
			returnCode = ExitUsageError
			return
		}
		sourcePath, grammarPath = pflag.Arg(0), cfg.DefaultGram
	case 2:
		sourcePath, grammarPath = pflag.Arg(0), pflag.Arg(1)
	default:
		fmt.Fprintln(os.Stderr, "Usage: quadgen [flags] SOURCE GRAMMAR")
		returnCode = ExitUsageError
		return
	}

	logOut, err := openLog(*flagLogPath)
	if err != nil {
		fail(ExitFatalError, err)
		return
	}
	defer logOut.Close()

	if err := run(sourcePath, grammarPath, logOut); err != nil {
		fail(ExitFatalError, err)
		return
	}
}

func applyConfigDefaults(cfg quadgenconfig.Config) {
	set := pflag.CommandLine.Changed
	if !set("cache") && *flagCachePath == "" {
		*flagCachePath = cfg.CachePath
	}
	if !set("print-tables") && !*flagPrintTables {
		*flagPrintTables = cfg.PrintTables
	}
	if !set("print-first") && !*flagPrintFirst {
		*flagPrintFirst = cfg.PrintFirst
	}
	if !set("print-tree") && !*flagPrintTree {
		*flagPrintTree = cfg.PrintTree
	}
	if !set("log") && *flagLogPath == "" {
		*flagLogPath = cfg.LogPath
	}
}

func openLog(path string) (*os.File, error) {
	if path == "" {
		return os.Stderr, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, qgerrors.WrapIOError(err, "open log file %q", path)
	}
	return f, nil
}

func run(sourcePath, grammarPath string, log *os.File) error {
	srcBytes, err := os.ReadFile(sourcePath)
	if err != nil {
		return qgerrors.WrapIOError(err, "read source file %q", sourcePath)
	}

	grammarFile, err := os.Open(grammarPath)
	if err != nil {
		return qgerrors.WrapIOError(err, "open grammar file %q", grammarPath)
	}
	defer grammarFile.Close()

	g, err := grammar.Load(grammarFile)
	if err != nil {
		return err
	}

	tables, err := resolveTables(g)
	if err != nil {
		return err
	}

	if *flagPrintFirst {
		first := firstset.Compute(g)
		for _, sym := range g.NonTerminals() {
			fmt.Fprintf(log, "FIRST(%s) = %s\n", sym, first.Of(sym).StringOrdered())
		}
	}
	if *flagPrintTables {
		fmt.Fprintln(log, tables.String())
	}

	lexer := lex.New(string(srcBytes))
	driver := parse.NewDriver(tables, g.EndSymbol().Literal)

	tree, err := driver.Parse(lexer)
	if err != nil {
		return err
	}
	if *flagPrintTree {
		fmt.Fprintln(log, tree.String())
	}

	tr := translate.New()
	vars, quads, err := tr.Translate(tree)
	if err != nil {
		return err
	}

	pterm.DefaultSection.WithWriter(os.Stdout).Println("Variable table")
	for _, name := range vars.Names() {
		meta := vars[name]
		pterm.Info.WithWriter(os.Stdout).Printfln("%s: (%s, %s)", name, meta.Type, meta.Init)
	}

	pterm.DefaultSection.WithWriter(os.Stdout).Println("Quadruples")
	for i, q := range quads {
		pterm.Info.WithWriter(os.Stdout).Printfln("%d\t%s", i, q)
	}

	if *flagInteractive {
		return runREPL(vars, quads)
	}
	return nil
}

// resolveTables builds tables from g, unless --cache names a readable
// table-cache file, in which case it loads them instead. When both --cache
// and --save-cache are given, the cache is not read: the tables are built
// and written to the --save-cache path.
func resolveTables(g grammar.Grammar) (parse.Table, error) {
	if *flagCachePath != "" && *flagSaveCache == "" {
		if f, err := os.Open(*flagCachePath); err == nil {
			defer f.Close()
			return tablecache.Load(f, g.Augmented())
		}
	}

	tables, err := parse.BuildTables(g)
	if err != nil {
		return parse.Table{}, err
	}

	savePath := *flagSaveCache
	if savePath == "" && *flagCachePath != "" {
		savePath = *flagCachePath
	}
	if savePath != "" {
		out, err := os.Create(savePath)
		if err != nil {
			return parse.Table{}, qgerrors.WrapIOError(err, "create table cache %q", savePath)
		}
		defer out.Close()
		if err := tablecache.Save(out, tables); err != nil {
			return parse.Table{}, err
		}
	}

	return tables, nil
}

// runREPL starts an interactive session for inspecting the already-computed
// variable table and quadruple list.
func runREPL(vars translate.VarTable, quads types.QuadList) error {
	rl, err := readline.New("quadgen> ")
	if err != nil {
		return qgerrors.WrapIOError(err, "start interactive session")
	}
	defer rl.Close()

	pterm.Info.Println("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		switch line {
		case "vars":
			for _, name := range vars.Names() {
				meta := vars[name]
				pterm.Info.Printfln("%s: (%s, %s)", name, meta.Type, meta.Init)
			}
		case "quads":
			pterm.Info.Println(quads.String())
		case "":
			// ignore blank lines
		default:
			pterm.Error.Printfln("unrecognized command %q (try \"vars\" or \"quads\")", line)
		}
	}
}

func fail(code int, err error) {
	fmt.Fprintf(os.Stderr, "quadgen: %s\n", qgerrors.Message(err))
	returnCode = code
}
