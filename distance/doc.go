// Package distance precomputes the minimum number of minutes between valves
// of a valve.Network by running a breadth-first search from every source.
//
// What
//
//   - Build walks the tunnel graph level by level from each source; every
//     level costs one minute. The first time a valve is reached its depth is
//     recorded as the distance from that source.
//   - Table answers ordered-pair lookups. Pairs that are not connected are
//     simply absent.
//
// Why
//
//	The planners only ever travel between flow-producing valves. Collapsing
//	the tunnel graph into a table of pairwise minutes lets them jump straight
//	to the next useful valve instead of stepping one tunnel at a time.
//
// Complexity (V = valves, E = tunnels, S = sources)
//
//   - Time:   O(S · (V + E))
//   - Memory: O(S · V) for the table
//
// Usage
//
//	tbl, err := distance.Build(net)
//	d, ok := tbl.Between("AA", "JJ")
//
//	// only the sources a planner needs:
//	tbl, err := distance.Build(net, distance.WithSources("AA", "BB"))
//
// Errors
//
//   - ErrNetworkNil      if the network pointer is nil.
//   - ErrSourceNotFound  if WithSources names an unknown valve.
//   - ErrOptionViolation if an option was given an invalid argument.
package distance
