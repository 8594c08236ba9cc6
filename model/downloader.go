package model

import "context"

// Fetcher returns the raw "view all" page of a novel.
type Fetcher interface {
	GetPage(ctx context.Context, novelId int) (string, error)
}

// Assembler turns a scraped novel into a file below outputDir and returns
// the path it wrote.
type Assembler interface {
	Assemble(novel *Novel, outputDir string) (string, error)
}
