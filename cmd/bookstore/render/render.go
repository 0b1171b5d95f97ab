package render

type Renderer interface {
	RenderBookList(view BookListView) string
}

type BookListView struct {
	Items []BookListItem
}

type BookListItem struct {
	Name  string
	Owner string
	Year  int
}

func (v BookListView) IsEmpty() bool {
	return len(v.Items) == 0
}
