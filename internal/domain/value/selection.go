package value

// Selection указывает товар, выбранный для индивидуальной скидки.
// Ровно два варианта: NoSelection и Selected.
type Selection interface {
	isSelection()
}

type NoSelection struct{}

type Selected struct {
	Article int64
}

func (NoSelection) isSelection() {}
func (Selected) isSelection()    {}

// SelectedArticle возвращает артикул выбранного товара, если он есть.
func SelectedArticle(s Selection) (int64, bool) {
	if sel, ok := s.(Selected); ok {
		return sel.Article, true
	}
	return 0, false
}
