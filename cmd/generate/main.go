// Command generate renders the multi-field container types Array2..ArrayN,
// their views, iterators and selectors.
//
//	go generate ./...
package main

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// maxFields must match retsu.MaxFields.
const maxFields = 6

//go:embed templates/*.tmpl
var templates embed.FS

type field struct {
	K int    // 1-based position
	I int    // 0-based buffer index
	T string // type parameter
	V string // value parameter
}

type arity struct {
	N      int
	Fields []field

	TP, TA, Ptrs, Params, Args, Inits, Cols, Nils    string
	Bases, ArrayAt, ViewAt, IterAt, Loads, TupleArgs string
	Finds, Ks, KList, Columns                        string
}

func newArity(n int) arity {
	a := arity{N: n}
	var tp, ptrs, params, args, inits, cols, nils, bases []string
	var arrayAt, viewAt, iterAt, loads, tupleArgs, finds, ks, columns []string
	for k := 1; k <= n; k++ {
		f := field{K: k, I: k - 1, T: fmt.Sprintf("T%d", k), V: fmt.Sprintf("v%d", k)}
		a.Fields = append(a.Fields, f)
		tp = append(tp, f.T)
		ptrs = append(ptrs, "*"+f.T)
		params = append(params, f.V+" "+f.T)
		args = append(args, f.V)
		inits = append(inits, fmt.Sprintf("init%d func(*%s)", k, f.T))
		cols = append(cols, fmt.Sprintf("newColumn[%s]()", f.T))
		nils = append(nils, "nil")
		bases = append(bases, fmt.Sprintf("a.base(%d)", f.I))
		arrayAt = append(arrayAt, fmt.Sprintf("at[%s](a.base(%d), i)", f.T, f.I))
		viewAt = append(viewAt, fmt.Sprintf("at[%s](v.p[%d], i)", f.T, f.I))
		iterAt = append(iterAt, fmt.Sprintf("at[%s](it.p[%d], it.i)", f.T, f.I))
		loads = append(loads, fmt.Sprintf("*r.F%d", k))
		tupleArgs = append(tupleArgs, fmt.Sprintf("t.V%d", k))
		finds = append(finds, fmt.Sprintf("s.find(SpecOf[%s]())", f.T))
		ks = append(ks, fmt.Sprintf("k%d", k))
		columns = append(columns, fmt.Sprintf("s.column(k%d, SpecOf[%s]())", k, f.T))
	}
	a.TA = strings.Join(tp, ", ")
	a.TP = a.TA + " any"
	a.Ptrs = strings.Join(ptrs, ", ")
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	a.Inits = strings.Join(inits, ", ")
	a.Cols = strings.Join(cols, ", ")
	a.Nils = strings.Join(nils, ", ")
	a.Bases = strings.Join(bases, ", ")
	a.ArrayAt = strings.Join(arrayAt, ", ")
	a.ViewAt = strings.Join(viewAt, ", ")
	a.IterAt = strings.Join(iterAt, ", ")
	a.Loads = strings.Join(loads, ", ")
	a.TupleArgs = strings.Join(tupleArgs, ", ")
	a.Finds = strings.Join(finds, ", ")
	a.KList = strings.Join(ks, ", ")
	a.Ks = a.KList + " int"
	a.Columns = strings.Join(columns, ", ")
	return a
}

func main() {
	for _, name := range []string{"array", "view", "select"} {
		if err := render(name, name+"_generated.go"); err != nil {
			log.Fatal(err)
		}
	}
}

func render(name, out string) error {
	head, err := templates.ReadFile("templates/" + name + ".head.tmpl")
	if err != nil {
		return err
	}
	body, err := templates.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return err
	}
	tmpl, err := template.New(name).Parse(string(body))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	buf.Write(head)
	for n := 2; n <= maxFields; n++ {
		if err := tmpl.Execute(&buf, newArity(n)); err != nil {
			return fmt.Errorf("%s arity %d: %w", name, n, err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}
	return os.WriteFile(out, src, 0o644)
}
