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

// Command synthexec executes a previously-solved solution (see
// synthsolve) against a JSON execution context, optionally draining a
// provenance graph.
//
//	synthexec -catalog catalog.txt -solution sol.json -context ctx.json -provenance out.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/exec"
	"github.com/typesynth/typesynth/provenance"
	"github.com/typesynth/typesynth/solve"
)

func main() {
	var (
		catalogFile    = flag.String("catalog", "", "catalog source file")
		solutionFile   = flag.String("solution", "", "serialized solution JSON file")
		contextFile    = flag.String("context", "", "execution context JSON file")
		provenanceFile = flag.String("provenance", "", "optional: write the drained provenance graph here")
	)
	flag.Parse()

	if *catalogFile == "" || *solutionFile == "" || *contextFile == "" {
		fmt.Fprintln(os.Stderr, "usage: synthexec -catalog FILE -solution FILE -context FILE [-provenance out.json]")
		os.Exit(2)
	}

	catSrc, err := ioutil.ReadFile(*catalogFile)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}
	cat, err := catalog.Parse(string(catSrc))
	if err != nil {
		log.Fatalf("synthexec: parsing %s: %v", *catalogFile, err)
	}

	solSrc, err := ioutil.ReadFile(*solutionFile)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}
	root, err := solve.NodeFromJSON(solSrc, cat)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}

	ctxSrc, err := ioutil.ReadFile(*contextFile)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}
	var ctx exec.Context
	if err := json.Unmarshal(ctxSrc, &ctx); err != nil {
		log.Fatalf("synthexec: parsing %s: %v", *contextFile, err)
	}

	var opts []exec.Option
	var rec *provenance.Recorder
	if *provenanceFile != "" {
		rec = provenance.NewRecorder("https://typesynth.example/")
		opts = append(opts, exec.WithRecorder(rec))
	}

	result, err := exec.Execute(root, ctx, opts...)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}

	resultJS, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("synthexec: %v", err)
	}
	fmt.Println(string(resultJS))

	if rec != nil {
		body, err := rec.Graph.ExportJSON(true)
		if err != nil {
			log.Fatalf("synthexec: exporting provenance: %v", err)
		}
		if err := ioutil.WriteFile(*provenanceFile, []byte(body), 0o644); err != nil {
			log.Fatalf("synthexec: writing %s: %v", *provenanceFile, err)
		}
	}
}
