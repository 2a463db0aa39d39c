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

// Package bench times insertion and search of the same points in a stack,
// the AVL tree and a hash set.
package bench

import (
	"context"
	"io"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/pointavl/avl"
	"github.com/cybrota/pointavl/point"
	"github.com/cybrota/pointavl/pointset"
	"github.com/cybrota/pointavl/scan"
	"github.com/cybrota/pointavl/stack"
)

// DefaultTarget is the point searched for unless Options say otherwise.
var DefaultTarget = point.Point{X: 31.81428051893798, Y: 35.18577781093502}

// tracer writes to trace with key 'pointavl'
func tracer() tracing.Trace {
	return tracing.Select("pointavl")
}

type Options struct {
	Target point.Point // the zero point selects DefaultTarget
	Order  point.Order // nil selects point.DefaultOrder
	Repeat int         // runs per stage, the mean is reported
	// Progress receives a progress bar over the stages; nil disables it
	Progress io.Writer
}

// Result is the mean duration of one operation on one container.
type Result struct {
	Container string
	Operation string
	Mean      time.Duration
	Found     bool // search stages only
}

type Report struct {
	Points  int
	Target  point.Point
	Results []Result
}

type stage struct {
	container string
	operation string
	search    bool
	run       func() bool
}

// containers built by the insert stages and searched by later stages
type fixture struct {
	pairs [][2]float64
	opts  Options
	stack *stack.Stack
	tree  *avl.Tree
	set   *pointset.Set
}

func (f *fixture) stages() []stage {
	target := f.opts.Target
	return []stage{
		{"stack", "insert", false, func() bool {
			f.stack = stack.New()
			for _, pair := range f.pairs {
				f.stack.Push(point.FromPair(pair))
			}
			return false
		}},
		{"stack", "linear search", true, func() bool {
			_, found := scan.FindPoint(f.stack.All(), target)
			return found
		}},
		{"avl", "insert", false, func() bool {
			f.tree = avl.New(f.opts.Order)
			for _, pair := range f.pairs {
				f.tree.Insert(point.FromPair(pair))
			}
			return false
		}},
		{"avl", "find", true, func() bool {
			return !f.tree.Find(target).Done()
		}},
		{"avl", "linear search", true, func() bool {
			_, found := scan.FindPoint(f.tree.All(), target)
			return found
		}},
		{"set", "insert", false, func() bool {
			f.set = pointset.New(len(f.pairs))
			for _, pair := range f.pairs {
				f.set.Insert(point.FromPair(pair))
			}
			return false
		}},
		{"set", "find", true, func() bool {
			return f.set.Contains(target)
		}},
		{"set", "linear search", true, func() bool {
			_, found := scan.FindPoint(f.set.All(), target)
			return found
		}},
	}
}

// Run builds every container from pairs and times each stage. The context is
// checked between stages.
func Run(ctx context.Context, pairs [][2]float64, opts Options) (*Report, error) {
	if opts.Repeat <= 0 {
		opts.Repeat = 1
	}
	if opts.Order == nil {
		opts.Order = point.DefaultOrder
	}
	if opts.Target == (point.Point{}) {
		opts.Target = DefaultTarget
	}

	f := &fixture{pairs: pairs, opts: opts}
	stages := f.stages()

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(stages),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("Benchmarking..."),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	report := &Report{
		Points:  len(pairs),
		Target:  opts.Target,
		Results: make([]Result, 0, len(stages)),
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bar != nil {
			bar.Describe(st.container + " " + st.operation)
		}

		found := false
		start := time.Now()
		for i := 0; i < opts.Repeat; i++ {
			found = st.run()
		}
		mean := time.Since(start) / time.Duration(opts.Repeat)

		tracer().Debugf("%s %s: %v over %d runs", st.container, st.operation, mean, opts.Repeat)
		report.Results = append(report.Results, Result{
			Container: st.container,
			Operation: st.operation,
			Mean:      mean,
			Found:     st.search && found,
		})
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return report, nil
}
