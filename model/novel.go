package model

// Episode is one chapter of a novel as found in the source page.
// Title and Body are substrings of the page text, Body is raw markup.
type Episode struct {
	Title string
	Body  string
}

// Novel is the result of scraping one "view all" page. Every string in it
// slices the same page buffer.
type Novel struct {
	Title    string
	Author   string
	Episodes []Episode
}
