package game

import (
	"fmt"

	"github.com/minaorangina/cribbage/deck"
)

// Result reports what an action did to the game
type Result struct {
	GameOver  bool        `json:"gameOver"`
	RoundOver bool        `json:"roundOver"`
	LegOver   bool        `json:"legOver"`
	Scorer    string      `json:"scorer,omitempty"`
	Points    int         `json:"points"`
	Counts    []HandCount `json:"counts,omitempty"`
	Message   string      `json:"message"`
}

// GiveToKitty moves cards from a player's hand to the kitty.
// Two player games throw two cards each, otherwise one.
// Once the kitty is full the cut is turned and play begins.
func (g *Game) GiveToKitty(name string, cards []deck.Card) (Result, error) {
	if g.stage == Finished {
		return Result{}, ErrGameOver
	}
	idx, ok := g.findPlayer(name)
	if !ok {
		return Result{}, ErrUnknownPlayer
	}
	if g.stage == NotStarted {
		return Result{}, ErrGameNotStarted
	}
	if g.stage == Playing || len(g.round.kitty) >= kittySize {
		return Result{}, ErrKittyFull
	}
	if err := g.checkThrow(idx, cards); err != nil {
		return Result{}, err
	}

	p := g.players[idx]
	for _, c := range cards {
		p.Hand, _ = deck.Remove(p.Hand, c)
		g.round.kitty = append(g.round.kitty, c)
	}
	g.round.thrown[idx] = true

	res := Result{Message: buildThrowMessage(name, kittySize-len(g.round.kitty))}
	if len(g.round.kitty) < kittySize {
		return res, nil
	}

	g.turnCut()
	g.stage = Playing
	g.resetLeg(g.round.dealer)
	res.Message = buildCutMessage(*g.round.cut, g.players[g.round.leg.next].Name)

	if g.round.cut.Rank == deck.Jack {
		dealer := g.players[g.round.dealer]
		res.Scorer = dealer.Name
		res.Points = heelsPoints
		if g.award(g.round.dealer, heelsPoints) {
			return g.gameOverResult(res), nil
		}
		res.Message = joinLines(res.Message, buildHeelsMessage(dealer.Name, g.teamOf(g.round.dealer)))
	}

	return res, nil
}

func (g *Game) checkThrow(idx int, cards []deck.Card) error {
	p := g.players[idx]

	for _, c := range cards {
		if !deck.Contains(p.Hand, c) {
			return fmt.Errorf("%w: %s", ErrCardNotHeld, c)
		}
	}
	if g.round.thrown[idx] {
		return ErrAlreadyThrown
	}

	switch len(g.players) {
	case 2:
		if len(cards) != 2 {
			return ErrWrongKittyCount
		}
		if cards[0] == cards[1] {
			return ErrDuplicateKittyCard
		}
		return nil
	case 5:
		if idx == g.round.dealer {
			return ErrInvalidThrower
		}
	case 6:
		if g.teamOf(g.round.dealer).HasPlayer(p.Name) {
			return ErrInvalidThrower
		}
	}

	if len(cards) != 1 {
		return ErrWrongKittyCount
	}
	return nil
}

// turnCut takes the cut from what's left of the deck
func (g *Game) turnCut() {
	c, ok := g.deck.Draw()
	if !ok {
		panic("no cards left to cut")
	}
	g.round.cut = &c
}

// PlayCard plays one card from the named player's hand onto the count
func (g *Game) PlayCard(name string, card deck.Card) (Result, error) {
	if g.stage == Finished {
		return Result{}, ErrGameOver
	}
	if g.stage != Playing {
		return Result{}, ErrKittyNotReady
	}
	idx, ok := g.findPlayer(name)
	if !ok {
		return Result{}, ErrUnknownPlayer
	}
	leg := &g.round.leg
	if idx != leg.next {
		return Result{}, fmt.Errorf("%w: waiting for %s", ErrNotYourTurn, g.players[leg.next].Name)
	}
	if leg.count+card.Value() > maxCount {
		return Result{}, ErrExceeds31
	}
	p := g.players[idx]
	hand, ok := deck.Remove(p.Hand, card)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrCardNotHeld, card)
	}

	p.Hand = hand
	p.Played = append(p.Played, card)
	leg.last = idx
	if len(p.Hand) == 0 {
		leg.inPlay[idx] = false
	}
	leg.count += card.Value()
	pegged, err := leg.sequence.Add(card)
	if err != nil {
		panic(err)
	}

	res := Result{Scorer: name}
	if g.award(idx, pegged) {
		res.Points = pegged
		return g.gameOverResult(res), nil
	}
	res.Points = pegged

	hit31 := leg.count == maxCount
	if leg.count == fifteen || hit31 {
		res.Points += countPoints
		if g.award(idx, countPoints) {
			return g.gameOverResult(res), nil
		}
	}

	switch {
	case g.roundOver():
		res.RoundOver = true
		res.LegOver = true
		if !hit31 {
			res.Points += goPoints
			if g.award(idx, goPoints) {
				return g.gameOverResult(res), nil
			}
		}
		if res.Points > 0 {
			res.Message = buildPegMessage(name, res.Points, leg.count, g.teamOf(idx))
		}
		return g.endRound(res), nil

	case hit31:
		res.LegOver = true
		g.resetLeg(idx)

	case !g.anyInPlay():
		res.LegOver = true
		res.Points += goPoints
		if g.award(idx, goPoints) {
			return g.gameOverResult(res), nil
		}
		g.resetLeg(idx)

	default:
		leg.next = g.nextInPlay(idx)
	}

	res.Message = buildPlayMessage(name, card, res.Points, g.teamOf(idx))
	if res.LegOver {
		res.Message = joinLines(res.Message, buildLegOverMessage(g.players[leg.next].Name))
	} else {
		res.Message = joinLines(res.Message, buildCountMessage(leg.count, g.players[leg.next].Name))
	}

	return res, nil
}

// Go is said by a player who holds no card that fits under 31
func (g *Game) Go(name string) (Result, error) {
	if g.stage == Finished {
		return Result{}, ErrGameOver
	}
	if g.stage != Playing {
		return Result{}, ErrKittyNotReady
	}
	idx, ok := g.findPlayer(name)
	if !ok {
		return Result{}, ErrUnknownPlayer
	}
	leg := &g.round.leg
	if g.players[idx].canPlay(leg.count) {
		return Result{}, ErrCanStillPlay
	}
	if !leg.inPlay[idx] {
		return Result{}, ErrAlreadyPassed
	}
	if idx != leg.next {
		return Result{}, fmt.Errorf("%w: waiting for %s", ErrNotYourTurn, g.players[leg.next].Name)
	}

	leg.inPlay[idx] = false
	if g.anyInPlay() {
		leg.next = g.nextInPlay(idx)
		return Result{Message: buildGoMessage(name, g.players[leg.next].Name)}, nil
	}

	res := Result{LegOver: true}
	if leg.last != -1 {
		last := leg.last
		res.Scorer = g.players[last].Name
		res.Points = goPoints
		if g.award(last, goPoints) {
			return g.gameOverResult(res), nil
		}
		res.Message = buildGoPointMessage(g.players[last].Name, g.teamOf(last))
	}

	if g.roundOver() {
		res.RoundOver = true
		return g.endRound(res), nil
	}

	g.resetLeg(idx)
	res.Message = joinLines(res.Message, buildLegOverMessage(g.players[leg.next].Name))
	return res, nil
}

// endRound runs the show and deals the next round if nobody has won
func (g *Game) endRound(res Result) Result {
	counts, over := g.countHands()
	res.Counts = counts
	res.Message = joinLines(res.Message, buildShowMessage(counts))
	if over {
		return g.gameOverResult(res)
	}

	g.nextRound()
	res.Message = joinLines(res.Message, buildNextRoundMessage(g.players[g.round.dealer].Name))
	return res
}

func (g *Game) gameOverResult(res Result) Result {
	res.GameOver = true
	res.Message = joinLines(res.Message, buildGameOverMessage(g.winner))
	return res
}
