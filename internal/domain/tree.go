package domain

// TreeNode represents an ontology term in a tree for navigation. Terms
// with multiple parents appear under the first parent that reached them,
// so every term occurs exactly once in the tree.
type TreeNode struct {
	ID         string
	Name       string
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree materializes the subtree rooted at rootID as a navigable tree.
func (o *Ontology) BuildTree(rootID string) (*TreeNode, error) {
	rootTerm, ok := o.Get(rootID)
	if !ok {
		return nil, &LookupError{Label: "root id", ID: rootID}
	}

	root := &TreeNode{ID: rootTerm.ID, Name: rootTerm.Name(), IsExpanded: true}
	visited := map[string]bool{rootID: true}

	queue := []*TreeNode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		term, _ := o.Get(node.ID)
		for _, childID := range term.Children() {
			if visited[childID] {
				continue
			}
			childTerm, ok := o.Get(childID)
			if !ok {
				continue
			}
			visited[childID] = true
			child := &TreeNode{ID: childTerm.ID, Name: childTerm.Name(), Parent: node}
			node.Children = append(node.Children, child)
			queue = append(queue, child)
		}
	}
	return root, nil
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
