package valueobjects

import "fmt"

// VoteDirection selects which counter a vote increments.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) String() string {
	return string(d)
}

func (d VoteDirection) IsValid() bool {
	return d == VoteUp || d == VoteDown
}

func NewVoteDirection(s string) (VoteDirection, error) {
	d := VoteDirection(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid vote direction: %s", s)
	}
	return d, nil
}
