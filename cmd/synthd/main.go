/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command synthd is a long-running daemon that periodically re-solves
// and re-executes a goal on a crontab-style schedule, recording
// provenance for each run into a bbolt-backed store.
//
//	synthd -catalog catalog.txt -goal Energy -sources Product -context ctx.json -every "*/5 * * * *"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/exec"
	"github.com/typesynth/typesynth/internal/logging"
	"github.com/typesynth/typesynth/provenance"
	"github.com/typesynth/typesynth/solve"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "catalog source file")
		goal        = flag.String("goal", "", "goal type name")
		sourcesCSV  = flag.String("sources", "", "comma-separated source type names")
		contextFile = flag.String("context", "", "execution context JSON file")
		every       = flag.String("every", "", "crontab-style schedule, e.g. \"*/5 * * * *\"")
		dbFile      = flag.String("db", "synthd.db", "bbolt provenance store path")
		maxDepth    = flag.Int("max-depth", solve.DefaultMaxDepth, "maximum function-application depth")
	)
	flag.BoolVar(&logging.Logging, "v", false, "log each run")
	flag.Parse()

	if *catalogFile == "" || *goal == "" || *contextFile == "" || *every == "" {
		fmt.Fprintln(os.Stderr, "usage: synthd -catalog FILE -goal TYPE -sources TYPE,TYPE,... -context FILE -every CRON")
		os.Exit(2)
	}

	schedule, err := cronexpr.Parse(*every)
	if err != nil {
		log.Fatalf("synthd: parsing -every %q: %v", *every, err)
	}

	catSrc, err := ioutil.ReadFile(*catalogFile)
	if err != nil {
		log.Fatalf("synthd: %v", err)
	}
	cat, err := catalog.Parse(string(catSrc))
	if err != nil {
		log.Fatalf("synthd: parsing %s: %v", *catalogFile, err)
	}

	ctxSrc, err := ioutil.ReadFile(*contextFile)
	if err != nil {
		log.Fatalf("synthd: %v", err)
	}
	var execCtx exec.Context
	if err := json.Unmarshal(ctxSrc, &execCtx); err != nil {
		log.Fatalf("synthd: parsing %s: %v", *contextFile, err)
	}

	var sources []string
	if *sourcesCSV != "" {
		sources = strings.Split(*sourcesCSV, ",")
	}

	store, err := provenance.OpenBoltStore(*dbFile)
	if err != nil {
		log.Fatalf("synthd: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		cancel()
	}()

	runOnce := func() {
		roots, err := solve.Solve(cat, sources, *goal, *maxDepth)
		if err != nil {
			logging.Logf("synthd: solve error: %v", err)
			return
		}
		root, ok := solve.Best(roots)
		if !ok {
			logging.Logf("synthd: no solution for goal %q", *goal)
			return
		}

		runID := time.Now().UTC().Format(time.RFC3339Nano)
		rec := provenance.NewRecorder("https://typesynth.example/")

		result, err := exec.Execute(root, execCtx, exec.WithRecorder(rec), exec.WithGoContext(ctx))
		if err != nil {
			logging.Logf("synthd: exec error: %v", err)
			return
		}
		logging.Logf("synthd: run %s produced %v", runID, result)

		if err := store.Put(runID, rec.Graph); err != nil {
			logging.Logf("synthd: storing provenance for run %s: %v", runID, err)
		}
	}

	for {
		next := schedule.Next(time.Now())
		wait := time.Until(next)
		logging.Logf("synthd: next run at %s (in %s)", next.Format(time.RFC3339), wait)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			runOnce()
		}
	}
}
