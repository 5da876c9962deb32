package flashcard

type DeckVisibility string

const (
	DeckVisibilityShared  DeckVisibility = "SHARED"
	DeckVisibilityPrivate DeckVisibility = "PRIVATE"
)

func (v DeckVisibility) IsValid() bool {
	return v == DeckVisibilityShared || v == DeckVisibilityPrivate
}

type CardStatus string

const (
	CardStatusNew     CardStatus = "new"
	CardStatusSeen    CardStatus = "seen"
	CardStatusNotSeen CardStatus = "not_seen"
)
