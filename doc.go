// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sabdkosh implements the data model of a Nepali dictionary viewer in
// pure Go.
//
// A dictionary dataset is a list of records. Each record has a headword and
// an ordered list of definitions, and each definition has an optional grammar
// label and an ordered list of senses. The JSON form of a dataset is an array
// of records:
//
//	[
//	  {
//	    "word": "घर",
//	    "definitions": [
//	      {"grammar": "ना.", "senses": ["बस्ने ठाउँ", "परिवार"]}
//	    ]
//	  }
//	]
//
// A [Dataset] holds the canonical set: every record, validated and sorted
// once by headword using Nepali collation. The dataset is never modified
// afterwards. Searching (package search) and windowed rendering (package
// window) produce new views over the same records.
package sabdkosh
