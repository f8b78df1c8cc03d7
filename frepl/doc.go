/*
Package main implements FREPL, a demonstration CLI for the fsa module.

FREPL reads commands from an interactive readline prompt. Users may enter a
regular expression (inline or from a JSON file), inspect its syntax tree
and its Eilenberg machine, and test words for acceptance. A canned
demonstration walks a deterministic machine through pruning and
minimization.

   $ frepl '(a|b)*.c'
   frepl> accept abc
   frepl> machine
   frepl> demo

FREPL is a plain I/O wrapper: all semantics live in the library packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main
