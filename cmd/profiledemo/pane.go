package main

import (
	"fmt"

	profile "github.com/grindlemire/go-profile"
)

var paneTitles = []string{"Posts", "Replies", "Media", "Likes", "Lists"}

// pane is a scrollable list of rows. It remembers the offset the controller
// restores into it.
type pane struct {
	title  string
	rows   []string
	offset float64
}

var (
	_ profile.ContentController = (*pane)(nil)
	_ profile.OffsetReporter    = (*pane)(nil)
)

func newPane(index, rows int) *pane {
	title := fmt.Sprintf("Pane %d", index+1)
	if index < len(paneTitles) {
		title = paneTitles[index]
	}
	p := &pane{title: title}
	for i := 0; i < rows; i++ {
		p.rows = append(p.rows, fmt.Sprintf("%s · item %02d", title, i+1))
	}
	return p
}

func (p *pane) SetContentOffset(y float64) { p.offset = y }

func (p *pane) ContentOffset() float64 { return p.offset }

// prepend adds a row at the top, as a refresh would.
func (p *pane) prepend(row string) {
	p.rows = append([]string{row}, p.rows...)
}

// paneSource serves panes to the controller.
type paneSource struct {
	panes []*pane
}

func (s *paneSource) NumberOfContentControllers() int { return len(s.panes) }

func (s *paneSource) ContentControllerAt(index int) profile.ContentController {
	return s.panes[index]
}

func (s *paneSource) TitleForContentController(index int) string {
	return s.panes[index].title
}
