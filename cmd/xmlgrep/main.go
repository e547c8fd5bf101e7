package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/xlab/treeprint"

	"github.com/jacoelho/laxml"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

var errNoMatch = errors.New("no element matches the query")

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlgrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pathExpr := fs.String("path", "", "slash-separated element path with optional ?key=value predicates")
	contentOnly := fs.Bool("content", false, "print concatenated text content instead of the subtree")
	all := fs.Bool("all", false, "print every match instead of the first")
	watch := fs.Bool("watch", false, "keep running and re-evaluate the query when the file changes")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s --path <query> [--content] [--all] [--watch] <document.xml>\n\n", os.Args[0]),
			writeln(stderr, "Queries a permissively parsed XML document."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *pathExpr == "" {
		if err := writeln(stderr, "error: --path is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one XML file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	xmlPath := remaining[0]

	if err := query(xmlPath, *pathExpr, *contentOnly, *all, stdout); err != nil {
		if errors.Is(err, errNoMatch) {
			if writeErr := writef(stderr, "%s: no match for %s\n", xmlPath, *pathExpr); writeErr != nil {
				return 1
			}
			if !*watch {
				return 1
			}
		} else {
			if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
				return 1
			}
			if !*watch {
				return 1
			}
		}
	}

	if !*watch {
		return 0
	}
	return watchLoop(xmlPath, *pathExpr, *contentOnly, *all, stdout, stderr)
}

// query parses the document permissively and prints the first or all
// elements matching the path expression.
func query(xmlPath, expr string, contentOnly, all bool, stdout io.Writer) error {
	f, err := os.Open(xmlPath)
	if err != nil {
		return err
	}
	root, parseErr := laxml.ParseReader(f)
	closeErr := f.Close()
	if parseErr != nil {
		return fmt.Errorf("parse %s: %w", xmlPath, parseErr)
	}
	if closeErr != nil {
		return closeErr
	}
	defer laxml.Destroy(root)

	match := root.Find(expr)
	if match == nil {
		return errNoMatch
	}
	for match != nil {
		if err := printMatch(stdout, match, contentOnly); err != nil {
			return err
		}
		if !all {
			break
		}
		match = laxml.FindNext(match, expr)
	}
	return nil
}

func printMatch(w io.Writer, e *laxml.Element, contentOnly bool) error {
	if contentOnly {
		text, ok := e.Content()
		if !ok {
			return writeln(w)
		}
		return writeln(w, text)
	}
	return writef(w, "%s", renderTree(e))
}

// renderTree draws the matched element and its subtree.
func renderTree(e *laxml.Element) string {
	tree := treeprint.New()
	if e.FirstChild() == nil {
		tree.AddNode(label(e))
	} else {
		addChildren(tree.AddBranch(label(e)), e)
	}
	return tree.String()
}

func label(e *laxml.Element) string {
	if !e.HasKey() {
		return fmt.Sprintf("%q", e.Value())
	}
	s := e.Key()
	for a := e.FirstAttribute(); a != nil; a = a.Next() {
		if a.HasValue() {
			s += fmt.Sprintf(" %s=%q", a.Key(), a.Value())
		} else {
			s += " " + a.Key()
		}
	}
	return s
}

func addChildren(branch treeprint.Tree, e *laxml.Element) {
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		if c.FirstChild() == nil {
			branch.AddNode(label(c))
		} else {
			addChildren(branch.AddBranch(label(c)), c)
		}
	}
}

// watchLoop re-runs the query whenever the document is rewritten.
func watchLoop(xmlPath, expr string, contentOnly, all bool, stdout, stderr io.Writer) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = writef(stderr, "error starting watcher: %v\n", err)
		return 1
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			_ = writef(stderr, "error closing watcher: %v\n", err)
		}
	}()
	if err := watcher.Add(xmlPath); err != nil {
		_ = writef(stderr, "error watching %s: %v\n", xmlPath, err)
		return 1
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := query(xmlPath, expr, contentOnly, all, stdout); err != nil {
				if errors.Is(err, errNoMatch) {
					_ = writef(stderr, "%s: no match for %s\n", xmlPath, expr)
				} else {
					_ = writef(stderr, "error: %v\n", err)
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			_ = writef(stderr, "watch error: %v\n", watchErr)
		}
	}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
