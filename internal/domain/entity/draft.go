package entity

// FormDraft хранит незафиксированные значения формы добавления товара.
// Значения хранятся как введённый текст: пустое поле и мусор отличаются от нуля.
type FormDraft struct {
	Article string `json:"article"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// EmptyDraft возвращает состояние формы после успешного добавления.
func EmptyDraft() FormDraft {
	return FormDraft{Article: "0", Price: "0"}
}
