// Package config loads straight-line program definitions for the CLI.
//
// A program file names its parameters, the assignment list and the
// returned variable:
//
//	name: poly
//	params: [x, y]
//	body:
//	  - {lhs: x2, op: pow, args: [x, "2"]}
//	  - {lhs: s, op: add, args: [x, y]}
//	  - {lhs: sx, op: sin, args: [s]}
//	  - {lhs: out, op: add, args: [x2, sx]}
//	return: out
//
// An argument that parses as a number is a literal; anything else
// references a parameter or an earlier assignment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tangent-ml/tangent/internal/rules"
	"github.com/tangent-ml/tangent/internal/transform"
)

// Program is the on-disk form of a straight-line function.
type Program struct {
	Name   string      `yaml:"name"`
	Params []string    `yaml:"params"`
	Body   []Statement `yaml:"body"`
	Return string      `yaml:"return"`
}

// Statement is one assignment of the body.
type Statement struct {
	LHS  string   `yaml:"lhs"`
	Op   string   `yaml:"op"`
	Args []string `yaml:"args"`
}

// Load reads and parses a program file.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("load program %s: %w", path, err)
	}
	return &p, nil
}

// IR converts the on-disk form into the transformer's statement list.
// Structural validation (bindings, arity, rule coverage) happens in the
// transformer, not here.
func (p *Program) IR() transform.Program {
	body := make([]transform.Stmt, 0, len(p.Body)+1)
	for _, st := range p.Body {
		args := make([]transform.Operand, len(st.Args))
		for i, a := range st.Args {
			if v, err := strconv.ParseFloat(a, 64); err == nil {
				args[i] = transform.Lit(v)
			} else {
				args[i] = transform.Var(a)
			}
		}
		body = append(body, transform.Assign{LHS: st.LHS, Op: rules.OpID(st.Op), Args: args})
	}
	body = append(body, transform.Return{Var: p.Return})

	return transform.Program{Name: p.Name, Params: p.Params, Body: body}
}
