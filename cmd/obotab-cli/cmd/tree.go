package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obotab/internal/application"
	"obotab/internal/application/commands"
	"obotab/internal/domain"
	"obotab/internal/logger"
)

var (
	treeRootID string
	treeDepth  int
)

var treeCmd = &cobra.Command{
	Use:   "tree <source>",
	Short: "Display the ontology hierarchy",
	Long: `Display the term hierarchy of an ontology as an indented tree.

Terms with several parents are shown once, under the first parent that
reaches them. Use --depth to limit how deep the tree is rendered.

Examples:
  obotab-cli tree hp.obo
  obotab-cli tree hp.obo -r HP:0000118 -d 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		onto, err := commands.Load(GetResolver(), logger.Get(), args[0])
		if err != nil {
			return err
		}

		rootID := treeRootID
		if rootID == "" {
			rootID, err = domain.ResolveRoot(onto)
			if err != nil {
				return err
			}
		}

		root, err := onto.BuildTree(rootID)
		if err != nil {
			return err
		}

		printTree(root, 0)
		return nil
	},
}

func printTree(node *application.TreeNode, depth int) {
	if node == nil {
		return
	}
	if treeDepth > 0 && depth > treeDepth {
		return
	}

	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s %s\n", indent, node.ID, node.Name)

	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVarP(&treeRootID, "root-id", "r", "", "start the tree at this term")
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "maximum depth to render (0 = unlimited)")
}
