package domain

import "testing"

func TestBuildTree_MultiParentAppearsOnce(t *testing.T) {
	onto := diamondOntology(t)

	root, err := onto.BuildTree("A")
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	count := map[string]int{}
	var walk func(*TreeNode)
	walk = func(n *TreeNode) {
		count[n.ID]++
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	for _, id := range []string{"A", "B", "C", "D"} {
		if count[id] != 1 {
			t.Errorf("term %s appears %d times in tree", id, count[id])
		}
	}
}

func TestTreeNode_FlattenRespectsExpansion(t *testing.T) {
	onto := diamondOntology(t)
	root, err := onto.BuildTree("A")
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	// only the root is expanded by default
	flat := root.Flatten()
	if len(flat) != 3 { // A + its direct children B, C
		t.Fatalf("expected 3 visible nodes, got %d", len(flat))
	}

	for _, child := range root.Children {
		child.Expand()
	}
	flat = root.Flatten()
	if len(flat) != 4 {
		t.Errorf("expected 4 visible nodes after expansion, got %d", len(flat))
	}

	root.Toggle()
	if len(root.Flatten()) != 1 {
		t.Error("collapsed root should hide all descendants")
	}
}

func TestTreeNode_Depth(t *testing.T) {
	onto := diamondOntology(t)
	root, _ := onto.BuildTree("A")

	if root.Depth() != 0 {
		t.Errorf("root depth should be 0, got %d", root.Depth())
	}
	if d := root.Children[0].Depth(); d != 1 {
		t.Errorf("child depth should be 1, got %d", d)
	}
}
