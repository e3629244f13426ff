// Package rivercross solves the missionaries-and-cannibals river crossing
// with an iteration-bounded breadth-first search.
//
// Everybody starts on the left bank with a two-seat boat. A crossing
// carries one or two people to the other bank, and missionaries may never
// be outnumbered by cannibals on a bank where any missionary stands.
//
// Under the hood, everything is organized under three subpackages:
//
//	river/   immutable State, legality/goal predicates, fixed-order move generator
//	search/  search Node lifecycle, BFS Engine with open/closed de-duplication, hooks
//	config/  validated run parameters from flags, environment and YAML
//
// and one command:
//
//	cmd/rivercross  solve from the command line, text or JSON output
//
// Quick example, the classic 3+3 start and its first legal crossings:
//
//	{C:3 M:3 | C:0 M:0 boat=left}
//	  ├─ 1C    {C:2 M:3 | C:1 M:0 boat=right}
//	  ├─ 2C    {C:1 M:3 | C:2 M:0 boat=right}
//	  └─ 1C+1M {C:2 M:2 | C:1 M:1 boat=right}
//
//	go get github.com/katalvlaran/rivercross
package rivercross
