// Command standup5x5 finds every unordered set of five five-letter words
// whose twenty-five letters are all distinct, reading candidate words
// from a dictionary file and writing each set found to a solutions file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xR3b0rn/standup5x5/internal/parker"
)

var (
	dictPath string
	outPath  string
	nthreads int
	verbose  int
)

func init() {
	flag.StringVar(&dictPath, "f", "words_alpha.txt", "dictionary file to read candidate words from")
	flag.StringVar(&outPath, "o", "solutions.txt", "file to write found solutions to")
	flag.IntVar(&nthreads, "t", 0, "number of worker goroutines (zero picks a hardware-driven default)")
	flag.IntVar(&verbose, "v", 0, "verbosity level")
}

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := logrus.New()
	if verbose >= 2 {
		logger.SetLevel(logrus.DebugLevel)
	} else if verbose >= 1 {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	result, err := parker.Run(parker.Config{
		DictPath: dictPath,
		OutPath:  outPath,
		Workers:  nthreads,
	})
	if err != nil {
		logger.WithError(err).Fatal("standup5x5: run failed")
	}

	m := result.Metrics
	logger.WithFields(logrus.Fields{
		"workers":          m.Workers,
		"readers":          m.Readers,
		"unique_words":     m.UniqueWords,
		"hash_collisions":  m.HashCollisions,
		"min_search_depth": m.MinSearchDepth,
		"solutions":        m.Solutions,
		"elapsed":          m.Total,
	}).Info("standup5x5: run complete")

	if verbose >= 1 {
		for _, phase := range []string{"file_load", "partition", "solve", "emit"} {
			fields := logrus.Fields{"phase": phase}
			for k, v := range m.Phases[phase] {
				fields[k] = v
			}
			logger.WithFields(fields).Info("standup5x5: phase metrics")
		}
	}

	if verbose >= 2 {
		for i := 0; i < parker.Letters; i++ {
			logger.WithFields(logrus.Fields{
				"bucket":      i,
				"words":       m.BucketLengths[i],
				"tier_offset": m.BucketTierOff[i],
			}).Debug("standup5x5: bucket")
		}
	}

	fmt.Fprintf(os.Stdout, "%d solution(s) written to %s\n", m.Solutions, outPath)
}
