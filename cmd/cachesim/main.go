// Command cachesim replays a request trace against one cache admission/
// eviction policy and reports its hit ratio.
//
// Usage:
//
//	cachesim <tracePath> <policyName> <cacheBytes> [name=value ...]
//
// "seed" is a reserved parameter name: it seeds the policy's random
// source instead of being forwarded to the policy's own SetPar, so a run
// can be reproduced exactly by passing the same seed=N again. It
// defaults to 1 when absent.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/dgraph-io/cachesim"
	"github.com/dgraph-io/cachesim/param"
	"github.com/dgraph-io/cachesim/trace"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: cachesim <tracePath> <policyName> <cacheBytes> [name=value ...]")
		return 1
	}

	tracePath, policyName := args[0], args[1]

	cacheBytes, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil || cacheBytes == 0 {
		fmt.Fprintf(os.Stderr, "cachesim: invalid cacheBytes %q: must be a positive integer\n", args[2])
		return 1
	}

	params, err := param.Parse(args[3:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "cachesim:", err)
		return 1
	}

	seed := uint64(1)
	if s, err := params.Uint64("seed"); err == nil {
		seed = s
	}

	rnd := cachesim.NewRand(int64(seed))
	policy, ok := cachesim.NewPolicy(policyName, rnd)
	if !ok {
		fmt.Fprintf(os.Stderr, "cachesim: unknown policy %q (known: %v)\n", policyName, cachesim.PolicyNames())
		return 1
	}
	policy.SetSize(cacheBytes)

	for _, p := range params.Pairs() {
		if p.Name == "seed" {
			continue
		}
		if err := policy.SetPar(p.Name, p.Value); err != nil {
			fmt.Fprintln(os.Stderr, "cachesim:", err)
		}
	}

	if as, ok := policy.(*cachesim.AdaptSize); ok {
		as.SetOnReconfigure(func(objects int, log2TotalSize, log2StatSize float64) {
			log.Printf("adaptsize: reconfigured over %d objects (log2 total size %.2f, log2 observed size %.2f)",
				objects, log2TotalSize, log2StatSize)
		})
	}

	f, err := os.Open(tracePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cachesim:", errors.Wrap(err, "opening trace"))
		return 1
	}
	defer f.Close()

	log.Printf("running %s over %s (cache size %s)...", policyName, tracePath, humanize.IBytes(cacheBytes))

	var reqs, hits uint64
	r := trace.NewReader(f)
	for {
		id, size, err := r.Next()
		if err != nil {
			break
		}
		reqs++
		req := cachesim.Request{ID: id, Size: size}

		if policy.Lookup(req) {
			hits++
			continue
		}
		if size > cacheBytes {
			log.Printf("oversized object skipped: id=%d size=%s exceeds cache size %s",
				id, humanize.IBytes(size), humanize.IBytes(cacheBytes))
			continue
		}
		policy.Admit(req)
	}

	var hitRatio float64
	if reqs > 0 {
		hitRatio = float64(hits) / float64(reqs)
	}

	fmt.Printf("%s %d %s %d %d %f\n", policyName, cacheBytes, params.Summary(), reqs, hits, hitRatio)
	return 0
}
