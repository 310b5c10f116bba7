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

// Command catdoc renders a catalog's types and functions as a single
// HTML reference page.
//
//	catdoc -catalog catalog.txt -out catalog.html
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/render"
)

func main() {
	var (
		catalogFile = flag.String("catalog", "", "catalog source file")
		outFile     = flag.String("out", "", "output HTML file")
	)
	flag.Parse()

	if *catalogFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "usage: catdoc -catalog FILE -out FILE.html")
		os.Exit(2)
	}

	src, err := ioutil.ReadFile(*catalogFile)
	if err != nil {
		log.Fatalf("catdoc: %v", err)
	}
	cat, err := catalog.Parse(string(src))
	if err != nil {
		log.Fatalf("catdoc: parsing %s: %v", *catalogFile, err)
	}

	if err := ioutil.WriteFile(*outFile, []byte(render.HTML(cat)), 0o644); err != nil {
		log.Fatalf("catdoc: writing %s: %v", *outFile, err)
	}
}
