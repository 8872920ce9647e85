// Package game holds the pure data model of a snake match as the client
// sees it: points, directions, the static field and the server-reported
// game state.  Nothing in here touches the terminal or the network.
package game

import "fmt"

// Point is a cell coordinate, 1-based to match terminal cursor
// addressing: (1,1) is the top-left corner of the field.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Snake is an ordered body, head first.
type Snake []Point

// SnakeSet is every snake in the match.  A snake's index is its id.
type SnakeSet []Snake

// Valid reports whether id indexes a snake in the set.
func (ss SnakeSet) Valid(id int) bool { return id >= 0 && id < len(ss) }
