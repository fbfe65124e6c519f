package scoring

import "github.com/minaorangina/cribbage/deck"

var (
	aceOfClubs     = deck.NewCard(deck.Ace, deck.Clubs)
	aceOfDiamonds  = deck.NewCard(deck.Ace, deck.Diamonds)
	aceOfHearts    = deck.NewCard(deck.Ace, deck.Hearts)
	aceOfSpades    = deck.NewCard(deck.Ace, deck.Spades)
	twoOfClubs     = deck.NewCard(deck.Two, deck.Clubs)
	twoOfDiamonds  = deck.NewCard(deck.Two, deck.Diamonds)
	twoOfHearts    = deck.NewCard(deck.Two, deck.Hearts)
	twoOfSpades    = deck.NewCard(deck.Two, deck.Spades)
	threeOfDiamond = deck.NewCard(deck.Three, deck.Diamonds)
	threeOfHearts  = deck.NewCard(deck.Three, deck.Hearts)
	threeOfSpades  = deck.NewCard(deck.Three, deck.Spades)
	threeOfClubs   = deck.NewCard(deck.Three, deck.Clubs)
	fourOfClubs    = deck.NewCard(deck.Four, deck.Clubs)
	fourOfDiamonds = deck.NewCard(deck.Four, deck.Diamonds)
	fourOfHearts   = deck.NewCard(deck.Four, deck.Hearts)
	fourOfSpades   = deck.NewCard(deck.Four, deck.Spades)
	fiveOfClubs    = deck.NewCard(deck.Five, deck.Clubs)
	fiveOfDiamonds = deck.NewCard(deck.Five, deck.Diamonds)
	fiveOfHearts   = deck.NewCard(deck.Five, deck.Hearts)
	fiveOfSpades   = deck.NewCard(deck.Five, deck.Spades)
	sixOfHearts    = deck.NewCard(deck.Six, deck.Hearts)
	sixOfSpades    = deck.NewCard(deck.Six, deck.Spades)
	sevenOfHearts  = deck.NewCard(deck.Seven, deck.Hearts)
	sevenOfSpades  = deck.NewCard(deck.Seven, deck.Spades)
	eightOfClubs   = deck.NewCard(deck.Eight, deck.Clubs)
	eightOfDiamond = deck.NewCard(deck.Eight, deck.Diamonds)
	eightOfHearts  = deck.NewCard(deck.Eight, deck.Hearts)
	eightOfSpades  = deck.NewCard(deck.Eight, deck.Spades)
	nineOfClubs    = deck.NewCard(deck.Nine, deck.Clubs)
	nineOfDiamonds = deck.NewCard(deck.Nine, deck.Diamonds)
	tenOfClubs     = deck.NewCard(deck.Ten, deck.Clubs)
	tenOfDiamonds  = deck.NewCard(deck.Ten, deck.Diamonds)
	tenOfSpades    = deck.NewCard(deck.Ten, deck.Spades)
	jackOfClubs    = deck.NewCard(deck.Jack, deck.Clubs)
	jackOfHearts   = deck.NewCard(deck.Jack, deck.Hearts)
	jackOfSpades   = deck.NewCard(deck.Jack, deck.Spades)
	queenOfSpades  = deck.NewCard(deck.Queen, deck.Spades)
	queenOfHearts  = deck.NewCard(deck.Queen, deck.Hearts)
	kingOfHearts   = deck.NewCard(deck.King, deck.Hearts)
	kingOfSpades   = deck.NewCard(deck.King, deck.Spades)
)

func cards(cs ...deck.Card) []deck.Card {
	return cs
}
