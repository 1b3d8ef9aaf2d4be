// Command mfcctrain demonstrates the front end and the classifier
// wired together end to end: it extracts MFCC feature vectors from a
// list of labelled WAV files, trains an LVQ-1 network on the mean
// feature vector of each file, and writes an HTML training report.
//
// Usage:
//
//	mfcctrain -report out.html file1.wav:1 file2.wav:2 file3.wav:1 ...
//
// This is an illustrative driver, not a supported CLI surface: flag
// parsing and file I/O glue here are deliberately minimal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/atmafra/poli-sub001/internal/frame"
	"github.com/atmafra/poli-sub001/internal/mfcc"
	"github.com/atmafra/poli-sub001/internal/siglist"
	"github.com/atmafra/poli-sub001/lvq"
	"github.com/atmafra/poli-sub001/lvq/report"
)

const (
	frameWidth   = 256
	frameOverlap = 128
	numFilters   = 20
	deltaMel     = 100.0
	logBasis     = 2.0
	codebooksPer = 1
	epochs       = 30
)

func main() {
	reportPath := flag.String("report", "mfcctrain-report.html", "output HTML report path")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: mfcctrain [-report out.html] file.wav:class ...")
	}

	pipeline := &mfcc.Pipeline{
		Preemphasis:  true,
		PreemphAlpha: 0.95,
		Frame: frame.Options{
			Width:      frameWidth,
			Overlap:    frameOverlap,
			Window:     frame.NewWindow(frame.Hamming),
			FrameKind:  siglist.Complex,
			WindowKind: siglist.Real,
		},
		Filters:  mfcc.FilterBank{DeltaMel: deltaMel, M: numFilters},
		LogBasis: logBasis,
	}

	var set lvq.TrainingSet
	maxClass := 0

	for _, arg := range flag.Args() {
		path, class, err := parseArg(arg)
		if err != nil {
			log.Fatalf("%s: %v", arg, err)
		}

		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open %s: %v", path, err)
		}
		mfccIdx, err := pipeline.Run(f)
		f.Close()
		if err != nil {
			log.Fatalf("extract features from %s: %v", path, err)
		}

		vec, err := meanFeatureVector(mfccIdx)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}

		set = append(set, lvq.TrainingElement{Input: vec, Class: class})
		if class > maxClass {
			maxClass = class
		}
	}

	if len(set) == 0 {
		log.Fatal("no training elements extracted")
	}

	net, err := lvq.NewNetwork("mfcctrain", len(set[0].Input), maxClass, codebooksPer, lvq.GaussianInit(0, 1))
	if err != nil {
		log.Fatalf("new network: %v", err)
	}
	if err := lvq.InitWeights(net, set); err != nil {
		log.Fatalf("init weights: %v", err)
	}

	opts := lvq.Options{
		Algorithm: lvq.LVQ1,
		LRate:     lvq.ExponentialDecay(0.3, 20),
		Metric:    lvq.Euclidean,
		K:         maxClass,
		M:         codebooksPer,
		MaxEpochs: epochs,
	}

	rep := report.NewTrainingReport("mfcctrain", maxClass)
	for epoch := 0; epoch < epochs; epoch++ {
		sweep, err := lvq.TrainSet(net, set, opts, epoch)
		if err != nil {
			log.Fatalf("train epoch %d: %v", epoch, err)
		}
		rep.Record(sweep)
		fmt.Printf("epoch %2d: error rate %.3f, MSE %.4f\n", epoch, sweep.ErrorRate, sweep.MSE)
	}

	out, err := os.Create(*reportPath)
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer out.Close()
	if err := rep.WriteHTML(out); err != nil {
		log.Fatalf("write report: %v", err)
	}
	fmt.Printf("wrote %s\n", *reportPath)
}

// parseArg splits a "path:class" argument.
func parseArg(arg string) (path string, class int, err error) {
	i := strings.LastIndexByte(arg, ':')
	if i < 0 {
		return "", 0, fmt.Errorf("expected path:class, got %q", arg)
	}
	class, err = strconv.Atoi(arg[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid class in %q: %w", arg, err)
	}
	return arg[:i], class, nil
}

// meanFeatureVector averages every frame's MFCC coefficients into a
// single fixed-length vector, one training input per file.
func meanFeatureVector(mfccIdx *siglist.Index) ([]float64, error) {
	entries := mfccIdx.Entries()
	if len(entries) == 0 {
		return nil, fmt.Errorf("mfcc index has no frames")
	}

	dim := entries[0].List.Len()
	sum := make([]float64, dim)
	for _, e := range entries {
		samples := e.List.ComplexSamples()
		if len(samples) != dim {
			return nil, fmt.Errorf("inconsistent MFCC dimension: %d vs %d", len(samples), dim)
		}
		for i, v := range samples {
			sum[i] += real(v)
		}
	}
	for i := range sum {
		sum[i] /= float64(len(entries))
	}
	return sum, nil
}
