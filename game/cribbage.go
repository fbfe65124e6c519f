// Package game runs the rounds of a cribbage game: dealing, throwing to
// the kitty, the play, the show and the scores.
//
// A Game is not safe for concurrent use. Callers must serialise calls
// against one game.
package game

import (
	"math/rand"
	"time"

	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/scoring"
)

const (
	minPlayers   = 2
	maxPlayers   = 6
	kittySize    = 4
	maxCount     = 31
	fifteen      = 15
	winningScore = 120

	countPoints = 2
	goPoints    = 1
	heelsPoints = 2
)

// Game is a game of cribbage between 2 to 6 players
type Game struct {
	players []*Player
	teams   []*Team
	deck    deck.Deck
	rng     *rand.Rand
	stage   Stage
	round   roundState
	winner  *Team
}

// roundState is everything that is reset by a deal
type roundState struct {
	dealer int
	cut    *deck.Card
	kitty  []deck.Card
	thrown []bool
	leg    legState
}

// legState is the play between resets of the count
type legState struct {
	count    int
	sequence *scoring.Sequence
	inPlay   []bool
	next     int
	last     int // -1 until someone plays
}

// GameOpts configures a new game
type GameOpts struct {
	Players []string
	Rand    *rand.Rand
}

// NewGame constructs a game which hasn't begun yet
func NewGame(opts GameOpts) (*Game, error) {
	g := &Game{
		players: []*Player{},
		rng:     opts.Rand,
		round: roundState{
			kitty: []deck.Card{},
			leg: legState{
				sequence: scoring.NewSequence(),
				last:     -1,
			},
		},
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for _, name := range opts.Players {
		if err := g.AddPlayer(name); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddPlayer seats a new player. Names must be unique.
func (g *Game) AddPlayer(name string) error {
	if _, ok := g.findPlayer(name); ok {
		return ErrPlayerExists
	}
	if g.stage != NotStarted {
		return ErrGameAlreadyBegun
	}

	g.players = append(g.players, newPlayer(name))
	return nil
}

// Begin makes the teams, cuts for the dealer and deals the first round
func (g *Game) Begin() error {
	if g.stage != NotStarted {
		return ErrGameAlreadyBegun
	}
	if err := g.initializeGame(); err != nil {
		return err
	}

	g.cutForDealer()
	g.deal()

	return nil
}

// Deal throws in the current round and deals again with the same dealer
func (g *Game) Deal() error {
	switch g.stage {
	case NotStarted:
		return ErrGameNotStarted
	case Finished:
		return ErrGameOver
	}
	if err := checkDealable(len(g.players)); err != nil {
		return err
	}

	g.deal()
	return nil
}

// Stage reports where the game is up to
func (g *Game) Stage() Stage {
	return g.stage
}

// WinningTeam is the team which crossed the winning score, or nil
func (g *Game) WinningTeam() *Team {
	return g.winner
}

// WonGame reports whether the named player is on the winning team
func (g *Game) WonGame(name string) bool {
	return g.winner != nil && g.winner.HasPlayer(name)
}

func checkDealable(numPlayers int) error {
	if numPlayers < minPlayers || numPlayers > maxPlayers {
		return ErrInvalidPlayerCount
	}
	if numPlayers == 5 {
		return ErrFivePlayerDeal
	}
	return nil
}

func (g *Game) initializeGame() error {
	if err := checkDealable(len(g.players)); err != nil {
		return err
	}

	g.winner = nil
	g.teams = makeTeams(g.players)
	return nil
}

func (g *Game) findPlayer(name string) (int, bool) {
	for i, p := range g.players {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (g *Game) teamOf(idx int) *Team {
	for _, t := range g.teams {
		if t.HasPlayer(g.players[idx].Name) {
			return t
		}
	}
	return nil
}

func (g *Game) nextInOrder(idx int) int {
	return (idx + 1) % len(g.players)
}

// cutForDealer draws a card for each player without replacement
func (g *Game) cutForDealer() {
	d := deck.New()
	d.Shuffle(g.rng)

	cuts := make([]deck.Card, len(g.players))
	for i := range cuts {
		cuts[i], _ = d.Draw()
	}

	g.round.dealer = lowestCut(cuts)
}

// lowestCut picks the lowest rank. The first to draw it wins a tie.
func lowestCut(cuts []deck.Card) int {
	lowest := 0
	for i, c := range cuts {
		if c.Rank < cuts[lowest].Rank {
			lowest = i
		}
	}
	return lowest
}

// deal assumes the dealer is already set
func (g *Game) deal() {
	g.round.kitty = []deck.Card{}
	g.round.cut = nil
	g.round.thrown = make([]bool, len(g.players))
	for _, p := range g.players {
		p.resetCards()
	}

	g.deck = deck.New()
	g.deck.Shuffle(g.rng)

	switch len(g.players) {
	case 2:
		g.dealAround(6, nil)
	case 3:
		g.dealAround(5, nil)
		c, _ := g.deck.Draw()
		g.round.kitty = append(g.round.kitty, c)
	case 4:
		g.dealAround(5, nil)
	case 6:
		dealingTeam := g.teamOf(g.round.dealer)
		g.dealAround(5, func(idx int) bool {
			return dealingTeam.HasPlayer(g.players[idx].Name)
		})
	default:
		panic(ErrFivePlayerDeal)
	}

	g.stage = Discarding
	g.resetLeg(g.round.dealer)
}

// dealAround deals one card at a time, starting left of the dealer,
// until every player that isn't skipped holds n cards
func (g *Game) dealAround(n int, skip func(idx int) bool) {
	for i := 0; i < n; i++ {
		idx := g.round.dealer
		for range g.players {
			idx = g.nextInOrder(idx)
			if skip != nil && skip(idx) {
				continue
			}
			c, _ := g.deck.Draw()
			g.players[idx].Hand = append(g.players[idx].Hand, c)
		}
	}
}

// resetLeg zeroes the count and hands the lead to the first player after
// `after` who still holds cards
func (g *Game) resetLeg(after int) {
	leg := &g.round.leg
	leg.count = 0
	leg.last = -1
	leg.sequence.Reset()
	leg.inPlay = make([]bool, len(g.players))
	for i, p := range g.players {
		leg.inPlay[i] = len(p.Hand) > 0
	}
	leg.next = g.nextInPlay(after)
}

// nextInPlay finds the first player after idx still in the leg.
// If nobody else is, idx keeps the turn.
func (g *Game) nextInPlay(idx int) int {
	for i := 1; i <= len(g.players); i++ {
		j := (idx + i) % len(g.players)
		if g.round.leg.inPlay[j] {
			return j
		}
	}
	return idx
}

func (g *Game) anyInPlay() bool {
	for _, in := range g.round.leg.inPlay {
		if in {
			return true
		}
	}
	return false
}

// roundOver is true once every player has played every card
func (g *Game) roundOver() bool {
	for _, p := range g.players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// award gives points to a player and reports whether it won the game
func (g *Game) award(idx, points int) bool {
	if points <= 0 {
		return false
	}

	g.players[idx].Points += points
	team := g.teamOf(idx)
	if team.Points() > winningScore {
		g.winner = team
		g.stage = Finished
		return true
	}
	return false
}

func (g *Game) nextRound() {
	g.round.dealer = g.nextInOrder(g.round.dealer)
	g.deal()
}
