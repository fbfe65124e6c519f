package game

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("invalid number of players, 2 to 6 required")
	ErrFivePlayerDeal     = errors.New("dealing for five players is not supported")
	ErrPlayerExists       = errors.New("player is already in the game")
	ErrUnknownPlayer      = errors.New("player is not part of the game")
	ErrGameAlreadyBegun   = errors.New("the game has already begun")
	ErrGameNotStarted     = errors.New("the game hasn't started")
	ErrGameOver           = errors.New("the game is already over")
	ErrKittyFull          = errors.New("the kitty already has all the cards it needs")
	ErrKittyNotReady      = errors.New("the kitty still needs people to throw to it")
	ErrWrongKittyCount    = errors.New("invalid number of cards given to the kitty")
	ErrDuplicateKittyCard = errors.New("you must throw two unique cards to the kitty")
	ErrInvalidThrower     = errors.New("you aren't allowed to throw any cards")
	ErrAlreadyThrown      = errors.New("you've already thrown to the kitty")
	ErrCardNotHeld        = errors.New("you don't have that card")
	ErrNotYourTurn        = errors.New("it isn't your turn")
	ErrExceeds31          = errors.New("that card would take the count past 31")
	ErrCanStillPlay       = errors.New("you have a card you can still play")
	ErrAlreadyPassed      = errors.New("you've already said go")
)
