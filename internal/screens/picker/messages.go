package picker

import (
	"github.com/google/uuid"

	"github.com/abhisek/oracle/internal/choice"
)

// deckSelectedMsg is sent when a deck is chosen in the deck menu.
type deckSelectedMsg struct {
	Deck choice.Choice
}

// categorySelectedMsg is sent when a category is chosen in the category menu.
type categorySelectedMsg struct {
	Category choice.Choice
}

// revealTickMsg advances the fade-in of the card drawn as id.
type revealTickMsg struct {
	id uuid.UUID
}
