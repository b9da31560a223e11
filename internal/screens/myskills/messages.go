package myskills

import "github.com/abhisek/mathskills/internal/page"

// pageLoadedMsg carries the result of one render pass.
type pageLoadedMsg struct {
	Model *page.PageModel
	Err   error
}
