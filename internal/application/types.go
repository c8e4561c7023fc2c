package application

import "obotab/internal/domain"

// Re-export domain types for use by adapters
type (
	Ontology     = domain.Ontology
	Term         = domain.Term
	TreeNode     = domain.TreeNode
	TagStat      = domain.TagStat
	SearchResult = domain.SearchResult
	IndexedTerm  = domain.IndexedTerm
)

// Tags of interest for adapters rendering terms
const (
	TagDef          = domain.TagDef
	TagCategoryID   = domain.TagCategoryID
	TagCategoryName = domain.TagCategoryName
)
