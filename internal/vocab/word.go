package vocab

// WordItem is one generated vocabulary entry: an English source term, its
// translation into the target language, and an optional phonetic hint.
// Items are never mutated after creation.
type WordItem struct {
	Source   string // English term
	Target   string // translated term
	Phonetic string // optional pronunciation hint, "" if none
}

// WordList is an ordered sequence of word items. Order is meaningful:
// quiz order matches generation order.
type WordList []WordItem

// Targets returns the target-language terms in list order.
func (l WordList) Targets() []string {
	targets := make([]string, len(l))
	for i, item := range l {
		targets[i] = item.Target
	}
	return targets
}
