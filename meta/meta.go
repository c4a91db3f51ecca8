// meta/meta.go
package meta

// GAME defines the game solved when none is configured.
const GAME = "tictactoe"

// COUNT defines the initial pile size of the take-away game.
const COUNT = 10

// TAKES defines the amounts a take-away player may remove.
var TAKES = []int{1, 2}

// WIDTH defines the board width of the k-in-a-row games.
const WIDTH = 3

// HEIGHT defines the board height of the k-in-a-row games.
const HEIGHT = 3

// K defines how many marks in a row end a board game.
const K = 3

// SYMMETRY defines the symmetry folding applied to board games.
const SYMMETRY = "none"

// VALUE defines the recursive value computed for every position.
const VALUE = "outcome"
