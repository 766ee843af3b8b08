package scoring

import (
	"aftas/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHuntingPoints(t *testing.T) {
	assert.Equal(t, 6, HuntingPoints(3, 2))
	assert.Equal(t, 0, HuntingPoints(10, 0))
}

func TestAssignRanks(t *testing.T) {
	a := &repository.Ranking{MemberNum: 1, Score: 11}
	b := &repository.Ranking{MemberNum: 2, Score: 10}
	c := &repository.Ranking{MemberNum: 3, Score: 20}

	ranked := AssignRanks([]*repository.Ranking{a, b, c})

	assert.Equal(t, []*repository.Ranking{c, a, b}, ranked)
	assert.Equal(t, 1, c.Rank)
	assert.Equal(t, 2, a.Rank)
	assert.Equal(t, 3, b.Rank)
}

func TestAssignRanksKeepsStoreOrderOnTies(t *testing.T) {
	first := &repository.Ranking{MemberNum: 5, Score: 4}
	second := &repository.Ranking{MemberNum: 1, Score: 4}
	third := &repository.Ranking{MemberNum: 3, Score: 4}

	ranked := AssignRanks([]*repository.Ranking{first, second, third})

	assert.Equal(t, []int{5, 1, 3}, []int{ranked[0].MemberNum, ranked[1].MemberNum, ranked[2].MemberNum})
	assert.Equal(t, []int{1, 2, 3}, []int{first.Rank, second.Rank, third.Rank})
}

func TestAssignRanksEmpty(t *testing.T) {
	assert.Empty(t, AssignRanks(nil))
}

func TestPodium(t *testing.T) {
	rankings := []*repository.Ranking{
		{MemberNum: 1, Rank: 3},
		{MemberNum: 2, Rank: 0},
		{MemberNum: 3, Rank: 1},
		{MemberNum: 4, Rank: 4},
		{MemberNum: 5, Rank: 2},
	}
	podium := Podium(rankings, 3)
	assert.Len(t, podium, 3)
	assert.Equal(t, 3, podium[0].MemberNum)
	assert.Equal(t, 5, podium[1].MemberNum)
	assert.Equal(t, 1, podium[2].MemberNum)

	assert.Empty(t, Podium([]*repository.Ranking{{MemberNum: 1}}, 3))
}
