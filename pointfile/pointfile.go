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

// Package pointfile reads coordinate pairs from text, one pair per line.
//
// The two numbers of a line are separated by a comma, white space or both:
//
//	31.7749, 35.2016
//	31.7686 35.2128
//
// Blank lines and lines starting with '#' are skipped.
package pointfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// ErrMalformed is wrapped by errors about lines that are not a pair of
// numbers.
var ErrMalformed = errors.New("malformed coordinate line")

// tracer writes to trace with key 'pointavl'
func tracer() tracing.Trace {
	return tracing.Select("pointavl")
}

// Load reads every pair from the file at path.
func Load(path string) ([][2]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("coordinate file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	pairs, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded %d coordinate pairs from %s", len(pairs), path)
	return pairs, nil
}

// Read reads every pair from r.
func Read(r io.Reader) ([][2]float64, error) {
	var pairs [][2]float64

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pair, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pairs = append(pairs, pair)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parseLine(line string) ([2]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return [2]float64{}, fmt.Errorf("%w: %q has %d values, expected 2", ErrMalformed, line, len(fields))
	}

	var pair [2]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return [2]float64{}, fmt.Errorf("%w: %q is not a number", ErrMalformed, field)
		}
		pair[i] = v
	}
	return pair, nil
}
