/* Command gridforth evaluates a very small FORTH.

FORTH programs are built from words: builtin primitives and user defined
words are indistinguishable to the caller. Every word operates on a single
stack of ints.

The builtins are

	+ - * /    pop two, push the result (/ truncates and fails on 0)
	DUP        a -- a a
	DROP       a --
	SWAP       a b -- b a
	OVER       a b -- a b a

and ": NAME body ... ;" defines a new word. A definition captures the words
its body names at the time it is read, so redefining one of them later does
not change it; this leaves 5 6 on the stack:

	: foo 5 ;
	: bar foo ;
	: foo 6 ;
	bar foo

Names are case-insensitive; numbers cannot be redefined.

The grid helpers that puzzle solutions walk maps with live in internal/grid.
*/
package main
