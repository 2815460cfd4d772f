/*

Package streamkit -> lazy pull based stream pipelines

Introduction

This module provides stream pipelines in the spirit of the iterator pattern.
A pipeline is built from a source, zero or more intermediate operations and a single terminal operation.
Building the pipeline is cheap and does no work on the elements,
all the element traversal and computation is driven by the terminal operation through the pull protocol.
Because of this a pipeline can describe an infinite sequence,
as long as a short-circuiting operation bounds how much of it is actually consumed.

The pull protocol itself is the two method Iterator interface of this package.
Pulling is the only way values move through a pipeline,
so a downstream Next call is what triggers the upstream computation,
and each element is visited at most once.

The intstream package implements the pipeline over primitive int values,
while the stream package implements it over generic element values.
The two interoperate through the shared Iterator protocol.

A stream value is single use.
After a terminal operation consumed it, the exhausted state is permanent,
and a fresh stream must be built for a fresh traversal.
Streams are not safe for concurrent use, a pipeline belongs to one goroutine.

Resources

https://golang.org/pkg/encoding/json/#Decoder
https://golang.org/pkg/bufio/#Scanner
https://en.wikipedia.org/wiki/Iterator_pattern
https://en.wikipedia.org/wiki/Lazy_evaluation

*/
package streamkit
