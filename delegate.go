package profile

// DataSource supplies the content controllers. The Controller holds it but
// does not own it.
type DataSource interface {
	NumberOfContentControllers() int
	ContentControllerAt(index int) ContentController
	TitleForContentController(index int) string
}

// Delegate receives profile notifications. Embed BaseDelegate to implement
// only the callbacks you need.
type Delegate interface {
	DidRequestRefresh(c *Controller)
	DidShowContentController(c *Controller, index int)
	DidSelectAccessoryView(c *Controller, kind AccessoryKind)
	DidDeselectAccessoryView(c *Controller, kind AccessoryKind)
	DidHighlightAccessoryView(c *Controller, kind AccessoryKind)
	DidUnhighlightAccessoryView(c *Controller, kind AccessoryKind)
}

// ContentPresenter swaps the visible content view. It is called on every
// pane switch and reload.
type ContentPresenter interface {
	PresentContent(index int, controller ContentController)
}

// BaseDelegate implements Delegate with no-ops.
type BaseDelegate struct{}

func (BaseDelegate) DidRequestRefresh(*Controller) {}
func (BaseDelegate) DidShowContentController(*Controller, int) {}
func (BaseDelegate) DidSelectAccessoryView(*Controller, AccessoryKind) {}
func (BaseDelegate) DidDeselectAccessoryView(*Controller, AccessoryKind) {}
func (BaseDelegate) DidHighlightAccessoryView(*Controller, AccessoryKind) {}
func (BaseDelegate) DidUnhighlightAccessoryView(*Controller, AccessoryKind) {}

// StaticDataSource serves a fixed list of controllers and titles.
type StaticDataSource struct {
	Controllers []ContentController
	Titles      []string
}

// NumberOfContentControllers implements DataSource.
func (s *StaticDataSource) NumberOfContentControllers() int {
	return len(s.Controllers)
}

// ContentControllerAt implements DataSource.
func (s *StaticDataSource) ContentControllerAt(index int) ContentController {
	return s.Controllers[index]
}

// TitleForContentController implements DataSource.
func (s *StaticDataSource) TitleForContentController(index int) string {
	if index < len(s.Titles) {
		return s.Titles[index]
	}
	return ""
}
