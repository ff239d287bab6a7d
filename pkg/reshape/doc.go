/*
Package reshape implements a declarative, JSON-encoded document-reshaping
language: a path engine, a dispatch table of pure rewrite operators, and a
pipeline evaluator with output templating.

# Overview

A reshape pipeline is itself a JSON document — a config — describing:

  - root: where in the input document the pipeline should start working
  - pipeline: an ordered list of operator steps, each a {op, ...params}
    record
  - output: a template assembling the final result from $root/$working
    references

# Quick Start

The primary entry point is Execute:

	input := reshape.FromRaw(decoded)
	config := reshape.FromRaw(decodedConfig)
	result := reshape.Execute(input, config)
	encoded := result.Raw()

# Path Syntax

Dotted field paths address into a document; a `[]` suffix marks a
wildcard segment that lifts the remainder of the path over every element
of an array:

	"users[].profile.name"   // every user's profile.name
	"orders[].items[].sku"   // every item's sku, across every order

# Built-in Operators

  - drop, project, project_and_replace: keep or remove fields by path
  - rename, hoist_map_values: restructure field names and shapes
  - list_to_map, list_to_dynamic_map, promote_list_to_keys: array <-> map
  - truncate_list, aggregate_list: bound or summarize an array
  - prune: strip empty values (null, "", {}, [])
  - set, copy, move: write operations with array-aligned semantics
  - current_timestamp, format_date, parse_date, date_add, date_diff: the
    date engine
  - transform: apply a named pure function (case folding, trimming,
    numeric coercion, length, split/join, abs/round) to one path

# Error Handling

Execute never panics past its own boundary and never returns an error: a
malformed step, an absent path, or a type mismatch degrades that one step
to identity rather than aborting the pipeline (see ReshapeError and
Dispatch). Validate, by contrast, reports structural problems in a config
before it is ever run:

	ok, message := reshape.Validate(config)
	if !ok {
		log.Warn("invalid pipeline: %s", message)
	}

# Testing

Tests build documents with Obj/Arr/Str/Num/Bool/Null and compare results
with Equal, which treats object key order as insignificant:

	got := reshape.Execute(input, config)
	if !reshape.Equal(got, want) {
		t.Fatalf("got %v, want %v", got.Raw(), want.Raw())
	}
*/
package reshape
