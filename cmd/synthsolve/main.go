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

// Command synthsolve enumerates and ranks compositions of a catalog's
// functions that produce a goal type from a set of source types.
//
//	synthsolve -catalog catalog.txt -goal Energy -sources Product,Fuel
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/solve"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "catalog source file")
		goal        = flag.String("goal", "", "goal type name")
		sourcesCSV  = flag.String("sources", "", "comma-separated source type names")
		maxDepth    = flag.Int("max-depth", solve.DefaultMaxDepth, "maximum function-application depth")
	)
	flag.Parse()

	if *catalogFile == "" || *goal == "" {
		fmt.Fprintln(os.Stderr, "usage: synthsolve -catalog FILE -goal TYPE -sources TYPE,TYPE,... [-max-depth N]")
		os.Exit(2)
	}

	src, err := ioutil.ReadFile(*catalogFile)
	if err != nil {
		log.Fatalf("synthsolve: %v", err)
	}
	cat, err := catalog.Parse(string(src))
	if err != nil {
		log.Fatalf("synthsolve: parsing %s: %v", *catalogFile, err)
	}

	var sources []string
	if *sourcesCSV != "" {
		sources = strings.Split(*sourcesCSV, ",")
	}

	roots, err := solve.Solve(cat, sources, *goal, *maxDepth)
	if err != nil {
		log.Fatalf("synthsolve: %v", err)
	}

	out, err := json.MarshalIndent(roots, "", "  ")
	if err != nil {
		log.Fatalf("synthsolve: %v", err)
	}
	fmt.Println(string(out))
}
