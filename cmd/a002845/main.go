/**
 * Copyright 2024 a002845 authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

// Command a002845 prints successive terms of A002845, one line per term,
// with wall-clock and memory columns. The memory column is the live heap
// (runtime.MemStats.Alloc) in MB after a forced GC; it is not the
// process's resident set size. It is a thin driver: all the hard
// engineering lives in the tower and enumerator packages.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/l0vest0rm/a002845/enumerator"
	"github.com/l0vest0rm/a002845/internal/diag"
)

func main() {
	maxTerms := flag.Int("max", 0, "stop after this many terms (0 = unbounded)")
	verbose := flag.Bool("v", false, "log per-term diagnostics to stderr")
	flag.Parse()

	run(*maxTerms, *verbose)
}

func run(maxTerms int, verbose bool) {
	start := time.Now()
	seq := enumerator.New().Sequence()

	for n := 1; maxTerms == 0 || n <= maxTerms; n++ {
		a, err := seq.Next()
		if err != nil {
			diag.Fatal(err, "a002845: failed to compute term")
		}

		runtime.GC()
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)
		memMB := float64(mem.Alloc) / (1024 * 1024)

		fmt.Printf("a(%d) = %-20d %s %12.2f\n", n, a, formatElapsed(time.Since(start)), memMB)

		diag.Verbosef(verbose, "a(%d): %s distinct values, heap %s", n, humanize.Comma(int64(a)), humanize.Bytes(mem.Alloc))
	}
}

// formatElapsed renders d as h:mm:ss.ff.
func formatElapsed(d time.Duration) string {
	total := d.Seconds()
	h := int(total) / 3600
	m := (int(total) % 3600) / 60
	s := total - float64(h*3600+m*60)
	return fmt.Sprintf("%d:%02d:%05.2f", h, m, s)
}
