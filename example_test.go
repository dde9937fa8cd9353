//go:build !disclose

// example_test.go — runnable end-to-end demonstrations.
//
// Gated to the default build: with the disclose tag the traces carry
// file:line prefixes, which cannot appear in fixed Output blocks.
package trailhound_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/trailhound/trailhound"
)

// Converting a foreign failure at first sight, then annotating it one layer up.
func ExampleConvert() {
	parse := func(text string) (int, error) {
		n, err := strconv.Atoi(text)
		return trailhound.Convert(n, err, "unable to parse string: %s", text)
	}

	_, err := parse("99s")
	err = trailhound.Examine(err, "you've entered an incorrect text string")

	fmt.Println(err)
	fmt.Printf("%+v\n", err)
	// Output:
	// you've entered an incorrect text string
	// 0: you've entered an incorrect text string
	// 1: unable to parse string: 99s
	// 2: strconv.Atoi: parsing "99s": invalid syntax
}

// Treating an absent optional value as a failure with the fixed sentinel.
func ExamplePresent() {
	vector := []int{0, 1, 2, 3}
	get := func(i int) (int, bool) {
		if i < len(vector) {
			return vector[i], true
		}
		return 0, false
	}

	v, ok := get(4)
	_, err := trailhound.Present(v, ok, "index %d is out of range", 4)
	err = trailhound.Examine(err, "Layer 2 failure")
	err = trailhound.Examine(err, "Top level failure")

	fmt.Printf("%+v\n", err)
	// Output:
	// 0: Top level failure
	// 1: Layer 2 failure
	// 2: index 4 is out of range
	// 3: no value present
}

// Synthesizing a failure from a business-rule check with no foreign origin.
func ExampleCustom() {
	reason := "no reason at all"
	err := trailhound.Custom("this just fails because of: %s", reason)
	err = trailhound.Examine(err, "Layer 2 failure")
	err = trailhound.Examine(err, "Top level failure")

	fmt.Println(err)
	fmt.Printf("%+v\n", err)
	// Output:
	// Top level failure
	// 0: Top level failure
	// 1: Layer 2 failure
	// 2: this just fails because of: no reason at all
}

// Annotating a bare error at each layer of a call stack; the original
// sentinel stays reachable through every annotation.
func ExampleHere() {
	level2 := func() error {
		filename := "xuhgd56qhsl"
		return trailhound.Here(fs.ErrNotExist, "failed to open file '%s'", filename)
	}
	level1 := func() error {
		return trailhound.Examine(level2(), "well that's another fine mess")
	}
	level0 := func() error {
		return trailhound.Examine(level1(), "my user interface didn't work")
	}
	run := func() error {
		return trailhound.Examine(level0(), "better tell the end user")
	}

	err := run()
	fmt.Printf("%+v\n", err)
	fmt.Println(errors.Is(err, fs.ErrNotExist))
	// Output:
	// 0: better tell the end user
	// 1: my user interface didn't work
	// 2: well that's another fine mess
	// 3: failed to open file 'xuhgd56qhsl'
	// 4: file does not exist
	// true
}

// Lifting a failure with nothing to add: the foreign rendering becomes the
// origin frame.
func ExampleFrom() {
	_, err := strconv.Atoi("NaN")
	err = trailhound.From(err)

	fmt.Println(trailhound.IsChain(err))
	fmt.Println(err)
	// Output:
	// true
	// strconv.Atoi: parsing "NaN": invalid syntax
}
