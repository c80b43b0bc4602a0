// Package hexroute is the route-optimization core for an 18xx-style
// hexagonal rail-game engine: given a committed board state, it finds the
// set of train routes that maximize a company's revenue.
//
// The hard problem is combinatorial: tens of thousands of legal elementary
// paths through a hex map, billions of unordered conflict-free subsets, and
// a train-to-route assignment that must consider skip-stop express trains
// and non-monotone bonuses. This module solves exactly that, and nothing
// else — no board editing, no rendering, no persistence, no custom game
// rules beyond the bonus/train types it models.
//
// Subpackages, leaves first:
//
//	boardmap/     — Element/TokenSpace identifiers and the read-only Map
//	                connectivity-view interface consumed from collaborators.
//	boardfixture/ — a concrete in-memory hex Map implementation for tests
//	                and examples.
//	conflict/     — sorted, canonically-encoded conflict sets with O(n+m)
//	                intersection.
//	pathbuilder/  — DFS elementary-path enumeration under Criteria.
//	pathstore/    — per-anchor path collection and pairwise joining into
//	                composite paths.
//	combin/       — lazy k-subset (pairwise non-conflicting) iteration.
//	permute/      — k-permutations of train types unique up to type
//	                equality.
//	trainscore/   — TrainType/Bonus value types and the route scorer,
//	                including exhaustive skip-stop subset optimization.
//	optimizer/    — the single public entry point: Optimize(map, company,
//	                trains, bonuses, criteria) -> BestAssignment.
//	config/       — YAML fixture loading for trains/bonuses/criteria.
package hexroute
