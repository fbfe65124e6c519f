package game

import (
	"strings"

	"github.com/minaorangina/cribbage/deck"
)

// Player is a seat at the table, addressed by name
type Player struct {
	Name   string
	Hand   []deck.Card
	Played []deck.Card
	Points int
}

func newPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Hand:   []deck.Card{},
		Played: []deck.Card{},
	}
}

// Equals compares players by name
func (p *Player) Equals(other *Player) bool {
	return other != nil && p.Name == other.Name
}

// canPlay reports whether any card in hand keeps the count at or under 31
func (p *Player) canPlay(count int) bool {
	for _, c := range p.Hand {
		if count+c.Value() <= maxCount {
			return true
		}
	}
	return false
}

func (p *Player) resetCards() {
	p.Hand = []deck.Card{}
	p.Played = []deck.Card{}
}

// returnPlayedCards puts the cards played this round back in hand for the show
func (p *Player) returnPlayedCards() {
	p.Hand = append(p.Hand, p.Played...)
	p.Played = []deck.Card{}
}

// Team is one or two players who share a score
type Team struct {
	ID      int
	Members []*Player
}

// Points is the sum of the members' points
func (t *Team) Points() int {
	total := 0
	for _, p := range t.Members {
		total += p.Points
	}
	return total
}

// HasPlayer reports whether the named player is on the team
func (t *Team) HasPlayer(name string) bool {
	for _, p := range t.Members {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Names lists the members' names in seat order
func (t *Team) Names() []string {
	names := make([]string, 0, len(t.Members))
	for _, p := range t.Members {
		names = append(names, p.Name)
	}
	return names
}

func (t *Team) String() string {
	return strings.Join(t.Names(), ", ")
}

// makeTeams pairs players sitting opposite each other in four and six
// player games. Everyone else plays alone.
func makeTeams(ps []*Player) []*Team {
	switch len(ps) {
	case 4:
		return []*Team{
			{ID: 1, Members: []*Player{ps[0], ps[2]}},
			{ID: 2, Members: []*Player{ps[1], ps[3]}},
		}
	case 6:
		return []*Team{
			{ID: 1, Members: []*Player{ps[0], ps[3]}},
			{ID: 2, Members: []*Player{ps[1], ps[4]}},
			{ID: 3, Members: []*Player{ps[2], ps[5]}},
		}
	}

	teams := make([]*Team, 0, len(ps))
	for i, p := range ps {
		teams = append(teams, &Team{ID: i + 1, Members: []*Player{p}})
	}
	return teams
}
