// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontest

// Entry is a sample document.
type Entry struct {
	Name CaseName
	Data string
}

// Data is a list of well-formed documents that use only the syntax
// accepted by jsontree (in particular, no \uXXXX escapes).
var Data = []Entry{{
	Name: Name("Person"),
	Data: `{
        "name": "Sujeet kumar",
        "age": 30,
        "scores": [90, 85, 88],
        "address": {
            "state": "Uttar Pradesh",
            "city": "Agra"
        }
    }`,
}, {
	Name: Name("Literals"),
	Data: `[null, true, false, "", 0, -1.5e+10]`,
}, {
	Name: Name("Escapes"),
	Data: `{"quote":"\"","backslash":"\\","slash":"\/","controls":"\b\f\n\r\t"}`,
}, {
	Name: Name("Nested"),
	Data: `{"x":[1,2,{"y":true}],"z":{"a":{"b":{"c":[[],[{}]]}}}}`,
}, {
	Name: Name("Whitespace"),
	Data: " \t\r\n{ \"k\" \n:\t[ 1 , 2 ]\r} \n",
}, {
	Name: Name("Unicode"),
	Data: `{"greeting":"héllo, 世界","emoji":"😀"}`,
}, {
	Name: Name("Empty"),
	Data: `{"object":{},"array":[],"string":""}`,
}}
