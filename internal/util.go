package internal

// ReconstructPath rebuilds the path ending at current by following previous
// until it reports no predecessor or start is reached.
func ReconstructPath[NodeType comparable](
	previous func(NodeType) (NodeType, bool),
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := previous(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// CollectAncestors returns roots plus every node reachable from them through
// predecessors. Each node is visited once.
func CollectAncestors[NodeType comparable](
	roots []NodeType,
	predecessors func(NodeType) []NodeType,
) map[NodeType]struct{} {
	seen := make(map[NodeType]struct{}, len(roots))
	stack := make([]NodeType, 0, len(roots))
	for _, root := range roots {
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, prev := range predecessors(node) {
			if _, ok := seen[prev]; ok {
				continue
			}
			seen[prev] = struct{}{}
			stack = append(stack, prev)
		}
	}
	return seen
}
