/*
Package oset offers ordered sets of unique elements, backed by an in-memory
multiway search tree.

Ordered sets

A multiway search tree operates much like a binary search tree, except that
each node stores a bounded number of sorted elements. A node holding m
elements partitions its subtrees into m+1 sorted ranges, which keeps the tree
shallow for many insertion patterns. The tree underneath this package is
deliberately simple: it never splits or rebalances nodes, so lookup cost
depends on insertion order, and it supports insertion and lookup but no
element removal.

Sets support insertion with duplicate rejection, membership tests, forward
and backward in-order ranges, whole-set deep copy (Clone) and ownership
transfer (Move), and a textual rendering of the ascending element sequence.

The cursor-level protocol (successor/predecessor navigation, structural End
cursors) lives in the mwtree subpackage; this package is the convenient
surface for the common cases.

All operations are single-threaded by contract; sharing a set between
goroutines requires external synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package oset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the oset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrSetNotConstructed is flagged whenever a mutating operation is called on
// a zero-value set; mutation requires a set built by NewSet or NewSetWith.
const ErrSetNotConstructed = SetError("set has not been constructed; use NewSet")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")
