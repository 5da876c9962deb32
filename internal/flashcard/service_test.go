package flashcard

import (
	"testing"

	"github.com/google/uuid"
)

func TestDueCards(t *testing.T) {
	cardA := &Flashcard{ID: uuid.New()}
	cardB := &Flashcard{ID: uuid.New()}

	t.Run("casa estados com cartões na ordem dos estados", func(t *testing.T) {
		states := []*ReviewState{
			{FlashcardID: cardB.ID},
			{FlashcardID: cardA.ID},
		}

		due := dueCards(states, []*Flashcard{cardA, cardB})
		if len(due) != 2 {
			t.Fatalf("esperava 2 cartões pendentes, obteve %d", len(due))
		}
		if due[0].Card.ID != cardB.ID || due[1].Card.ID != cardA.ID {
			t.Error("ordem dos estados não foi preservada")
		}
	})

	t.Run("estado de cartão removido é descartado", func(t *testing.T) {
		states := []*ReviewState{
			{FlashcardID: cardA.ID},
			{FlashcardID: uuid.New()},
		}

		due := dueCards(states, []*Flashcard{cardA})
		if len(due) != 1 {
			t.Fatalf("esperava 1 cartão pendente, obteve %d", len(due))
		}
		if due[0].Card.ID != cardA.ID {
			t.Error("cartão errado no resultado")
		}
	})

	t.Run("sem estados devolve lista vazia", func(t *testing.T) {
		if due := dueCards(nil, nil); len(due) != 0 {
			t.Errorf("esperava lista vazia, obteve %d", len(due))
		}
	})
}
