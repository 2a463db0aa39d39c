// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/pointavl/avl"
	"github.com/cybrota/pointavl/point"
)

// treeCommand is one line typed into the explore prompt.
type treeCommand struct {
	Verb  string
	Point point.Point
}

// verbs taking a point; the others take nothing
var pointVerbs = map[string]bool{"insert": true, "erase": true, "find": true}

var plainVerbs = map[string]bool{"clear": true, "check": true}

// parseCommand reads "insert 1 2", "erase 1,2", `find "1, 2"` or "clear".
func parseCommand(line string) (treeCommand, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return treeCommand{}, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(args) == 0 {
		return treeCommand{}, fmt.Errorf("no command provided")
	}

	verb := strings.ToLower(args[0])
	switch {
	case plainVerbs[verb]:
		if len(args) != 1 {
			return treeCommand{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return treeCommand{Verb: verb}, nil
	case pointVerbs[verb]:
		p, err := parsePoint(args[1:])
		if err != nil {
			return treeCommand{}, fmt.Errorf("%s: %v", verb, err)
		}
		return treeCommand{Verb: verb, Point: p}, nil
	}
	return treeCommand{}, fmt.Errorf("unknown command %q", args[0])
}

// parsePoint accepts "x y" as two words or "x,y" as one or two words.
func parsePoint(args []string) (point.Point, error) {
	var fields []string
	for _, arg := range args {
		fields = append(fields, strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' })...)
	}
	if len(fields) != 2 {
		return point.Point{}, fmt.Errorf("expected two coordinates, got %d", len(fields))
	}

	var xy [2]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return point.Point{}, fmt.Errorf("%q is not a number", f)
		}
		xy[i] = v
	}
	return point.FromPair(xy), nil
}

// apply runs cmd against tree and describes the outcome.
func apply(tree *avl.Tree, cmd treeCommand) (string, error) {
	switch cmd.Verb {
	case "insert":
		if !tree.Insert(cmd.Point) {
			return "", fmt.Errorf("%s not inserted: an equal or equidistant point is stored", cmd.Point)
		}
		return fmt.Sprintf("inserted %s", cmd.Point), nil
	case "erase":
		if !tree.Erase(cmd.Point) {
			return "", fmt.Errorf("%s not found", cmd.Point)
		}
		return fmt.Sprintf("erased %s", cmd.Point), nil
	case "find":
		it := tree.Find(cmd.Point)
		if it.Done() {
			return "", fmt.Errorf("%s not found", cmd.Point)
		}
		return fmt.Sprintf("found %s", *it.Value()), nil
	case "clear":
		n := tree.Len()
		tree.Clear()
		return fmt.Sprintf("cleared %d points", n), nil
	case "check":
		if err := tree.Check(); err != nil {
			return "", err
		}
		return fmt.Sprintf("tree is balanced: %d points, height %d", tree.Len(), tree.Height()), nil
	}
	return "", fmt.Errorf("unknown command %q", cmd.Verb)
}
