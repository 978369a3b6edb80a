package faculty

import "github.com/fundwit/go-commons/types"

// SeedAttribution marks records coming from the seed list or a bulk import rather than a contributor.
const SeedAttribution = "KLEF"

type Faculty struct {
	ID types.ID `json:"id"`

	Name       string `json:"name"`
	Cabin      string `json:"cabin"`
	Department string `json:"department"`

	ContributedBy string `json:"contributedBy"`
}

// Entry is a directory row as produced by the seed list or the spreadsheet importer.
type Entry struct {
	Name       string `json:"name" yaml:"name"`
	Cabin      string `json:"cabin" yaml:"cabin"`
	Department string `json:"department" yaml:"department"`
}

// Merge carries the fields an approved contribution writes into the directory.
type Merge struct {
	Name          string
	Cabin         string
	Department    string
	ContributedBy string
}

type Query struct {
	Term       string `form:"q" json:"q"`
	Department string `form:"department" json:"department"`
}
