package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/cours-de-grec/stems"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.FgHiBlack)
)

func printSummary(w io.Writer, sum *stems.Summary) {
	if sum == nil {
		return
	}
	width := 0
	for _, p := range sum.Partitions {
		width = max(width, runewidth.StringWidth(p.File))
	}
	for _, p := range sum.Partitions {
		name := runewidth.FillRight(p.File, width)
		if p.Err != nil {
			failColor.Fprint(w, "FAIL")
			fmt.Fprintf(w, " %s  %s\n", name, p.Err)
			continue
		}
		okColor.Fprint(w, "ok  ")
		fmt.Fprintf(w, " %s  ", name)
		dimColor.Fprintf(w, "class %s, %d entries, %d skipped, %d stems compared\n",
			p.Class, p.Entries, p.Skipped(), p.Compared)
	}
	fmt.Fprintf(w, "%d entries derived, %d skipped, %d stems compared\n",
		sum.Entries(), sum.Skipped(), sum.Compared())
}

func printRoots(w io.Writer, c stems.VerbClass, r stems.Roots) {
	dimColor.Fprintf(w, "class %s: root1 %s, root1b %s, root1c %s\n", c, r.Root1, r.Root1b, r.Root1c)
}

// printStems writes one aligned line per stem in principal-part order.
func printStems(w io.Writer, set stems.StemSet) {
	width := 0
	for _, ns := range set.Ordered() {
		width = max(width, runewidth.StringWidth(ns.Name.Description()))
	}
	for _, ns := range set.Ordered() {
		fmt.Fprintf(w, "%-3s %s  %s\n", ns.Name, runewidth.FillRight(ns.Name.Description(), width), ns.Stem)
	}
}
