// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to measure how block-sorting preconditioning affects
// multiple compression back-ends. Individual implementations are referred to
// as codecs, and every codec has a preconditioned twin with a "+bwt" suffix.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-formats fl,xz         \
//		-tests   ratio,encRate \
//		-codecs  std,std+bwt   \
//		-files   repeats.bin   \
//		-levels  6             \
//		-sizes   1e5,1e6
//
//
//	BENCHMARK: fl:ratio
//		benchmark          std ratio  delta      std+bwt ratio  delta
//		repeats.bin:6:1e5      R.RRx  1.00x              R.RRx  D.DDx
//		...
//
// The delta column of every codec is relative to the first codec listed.
//
// Files that cannot be found in any of the search paths are generated if they
// name one of the synthetic inputs (dna.txt, random.bin, repeats.bin, zeros.bin).
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/blocksort/internal/tool/bench"
	"github.com/dsnet/golib/unitconv"
	"github.com/sirupsen/logrus"
)

const (
	defaultLevels = "6"
	defaultSizes  = "1e4,1e5,1e6"
)

var log = logrus.New()

var (
	fmtToEnum = map[string]bench.Format{
		"fl":     bench.FormatFlate,
		"xz":     bench.FormatXZ,
		"lzma":   bench.FormatLZMA,
		"zstd":   bench.FormatZstd,
		"snappy": bench.FormatSnappy,
	}
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s) // Each raw codec sorts before its preconditioned twin
	return strings.Join(s, ",")
}

func defaultFormats() string {
	var d []int
	for k := range bench.Encoders {
		d = append(d, int(k))
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, bench.Format(v).String())
	}
	return strings.Join(s, ",")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("formats", defaultFormats(), "List of formats to benchmark")
	f1 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f2 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f3 := flag.String("paths", "", "List of paths to search for test files")
	f4 := flag.String("files", strings.Join(bench.SyntheticFiles(), ","), "List of input files to benchmark")
	f5 := flag.String("levels", defaultLevels, "List of compression levels to benchmark")
	f6 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	f7 := flag.String("block", "900k", "Block size of the preconditioned codecs")
	f8 := flag.Bool("v", false, "Log progress to stderr")
	flag.Parse()
	if *f8 {
		log.SetLevel(logrus.DebugLevel)
	}

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var codecs, paths, files []string
	var formats []bench.Format
	var tests, levels, sizes []int
	codecs = sep.Split(*f2, -1)
	if *f3 != "" {
		paths = sep.Split(*f3, -1)
	}
	files = sep.Split(*f4, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := fmtToEnum[s]; !ok {
			log.WithField("format", s).Fatal("invalid format")
		}
		formats = append(formats, fmtToEnum[s])
	}
	for _, s := range sep.Split(*f1, -1) {
		if _, ok := testToEnum[s]; !ok {
			log.WithField("test", s).Fatal("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f5, -1) {
		lvl, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil {
			log.WithField("level", s).Fatal("invalid level")
		}
		levels = append(levels, int(lvl))
	}
	for _, s := range sep.Split(*f6, -1) {
		var size int
		if nf, err := unitconv.ParsePrefix(s, unitconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}
	block, err := unitconv.ParsePrefix(*f7, unitconv.AutoParse)
	if err != nil || block < 1 {
		log.WithField("block", *f7).Fatal("invalid block size")
	}

	ts := time.Now()
	bench.Paths = paths
	bench.BlockSize = int(block)
	runBenchmarks(files, codecs, formats, tests, levels, sizes)
	te := time.Now()
	log.WithField("runtime", te.Sub(ts)).Info("benchmarks done")
}

func runBenchmarks(files, codecs []string, formats []bench.Format, tests, levels, sizes []int) {
	for _, f := range formats {
		// Get lists of encoders and decoders that exist.
		var encs, decs []string
		for _, c := range codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}
		for _, c := range codecs {
			if _, ok := bench.Decoders[f][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range tests {
			var results [][]bench.Result
			var names, codecs []string
			var title, suffix string

			// Check that we can actually do this bench.
			fmt.Printf("BENCHMARK: %v:%s\n", f, enumToTest[t])
			if len(encs) == 0 {
				log.WithField("format", f).Warn("skipped: there are no encoders available")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				log.WithField("format", f).Warn("skipped: there are no decoders available")
				continue
			}
			codecs = encs
			if t == bench.TestDecodeRate {
				codecs = decs
			}

			// Progress ticker.
			var cnt int
			total := len(codecs) * len(files) * len(levels) * len(sizes)
			tick := func() {
				cnt++
				log.WithFields(logrus.Fields{
					"format": f,
					"test":   enumToTest[t],
				}).Debugf("[%6.2f%%] %d of %d", 100.0*float64(cnt)/float64(total), cnt, total)
			}

			// Perform the bench. This may take some time.
			switch t {
			case bench.TestEncodeRate:
				title, suffix = "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(f, codecs, files, levels, sizes, tick)
			case bench.TestDecodeRate:
				title, suffix = "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(f, codecs, files, levels, sizes, tick)
			case bench.TestCompressRatio:
				title, suffix = "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(f, codecs, files, levels, sizes, tick)
			default:
				panic("unknown test")
			}

			// Print all of the results.
			printResults(results, names, codecs, title, suffix)
			fmt.Println()
		}
		fmt.Println()
	}
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
