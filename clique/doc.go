// Package clique enumerates maximal cliques of a core.Graph with the
// Bron–Kerbosch algorithm and pivoting.
//
// The recursion is replaced by an explicit stack of (subg, cand, branch)
// frames plus the growing clique Q:
//
//   - pivot u ∈ subg maximizes |cand ∩ N(u)|,
//   - branch vertices are cand \ N(u),
//   - for each branch vertex q, Q+q is maximal when subg ∩ N(q) is empty,
//     otherwise the walk descends into cand ∩ N(q).
//
// Self-loops are excluded from N. Directed graphs are read as undirected:
// N(u) is the union of forward and reverse neighbors.
//
// Sets are visited in ascending label order, so the enumeration order is
// deterministic for a given graph.
//
// Complexity: O(3^(V/3)) worst case, the bound on the number of maximal
// cliques.
package clique
