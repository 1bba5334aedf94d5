package petit

// AllParsers enumerates every parser reachable from root, visiting
// each distinct node identity exactly once, via a visited-by-identity
// map that makes the walk cycle-safe.
func AllParsers(root Parser) []Parser {
	seen := map[Node]bool{}
	var order []Parser
	var walk func(n Node)
	walk = func(n Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		order = append(order, wrap(n))
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root.Node)
	return order
}

// Inspect traverses the graph reachable from root in depth-first
// order, calling f for each node. If f returns false, Inspect skips
// that node's children. Cycle-safe via a visited set.
func Inspect(root Parser, f func(Parser) bool) {
	seen := map[Node]bool{}
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		if !f(wrap(n)) {
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root.Node)
}

// Transform returns a disjoint, structurally-equivalent graph rooted
// at f(root.Copy()):
//  1. every reachable node n is copied and replaced by f(n.Copy())
//  2. child pointers in the new graph that still target an original
//     node are rewired to its replacement, repeated to a fixed point
func Transform(root Parser, f func(Parser) Parser) Parser {
	mapping := map[Node]Node{}
	for _, p := range AllParsers(root) {
		mapping[p.Node] = f(wrap(p.Node.Copy())).Node
	}

	newRoot := mapping[root.Node]
	for {
		changed := false
		for _, n := range allReachable(newRoot) {
			for _, child := range n.Children() {
				if replacement, ok := mapping[child]; ok && replacement != child {
					n.Replace(child, replacement)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return wrap(newRoot)
}

func allReachable(root Node) []Node {
	seen := map[Node]bool{}
	var order []Node
	var walk func(n Node)
	walk = func(n Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		order = append(order, n)
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return order
}

// RemoveSetables rewrites every child pointer reachable from root to
// skip chains of Setable indirection, pointing directly at the
// ultimate non-Setable delegate, and returns root's own ultimate
// target. A Setable chain that cycles back to itself is left in
// place rather than followed forever.
func RemoveSetables(root Parser) Parser {
	resolve := func(n Node) Node {
		visited := map[Node]bool{}
		cur := n
		for {
			s := setableOf(cur)
			if s == nil {
				return cur
			}
			if visited[cur] {
				return cur
			}
			visited[cur] = true
			cur = s.delegate
		}
	}

	for _, n := range allReachable(root.Node) {
		for _, child := range n.Children() {
			target := resolve(child)
			if target != child {
				n.Replace(child, target)
			}
		}
	}
	return wrap(resolve(root.Node))
}

// RemoveDuplicates rewrites every child pointer reachable from root
// to point at a single canonical representative among structurally
// equal (Match) subgraphs, reducing the number of distinct node
// identities without changing acceptance on any input.
func RemoveDuplicates(root Parser) Parser {
	var canonical []Node

	findCanonical := func(n Node) Node {
		for _, c := range canonical {
			if c == n {
				return c
			}
			if n.Match(c, map[Node]bool{}) {
				return c
			}
		}
		canonical = append(canonical, n)
		return n
	}

	for _, n := range allReachable(root.Node) {
		for _, child := range n.Children() {
			rep := findCanonical(child)
			if rep != child {
				n.Replace(child, rep)
			}
		}
	}
	return wrap(findCanonical(root.Node))
}
