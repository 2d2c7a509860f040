package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Feresey/matchstat/parse"
	"github.com/Feresey/matchstat/stats"
)

func TestWrite(t *testing.T) {
	r := require.New(t)

	root := parse.NewRecord()
	err := parse.ReadRecord(strings.NewReader(`config.games = 2
config.player1.depth = 5
config.player1.time_limit = 100
config.player2.depth = 5
`), root)
	r.NoError(err)

	config, ok := root.Child("config")
	r.True(ok)

	player1 := stats.PlayerStats{
		Wins:  1,
		Draws: 1,
		Averages: map[string]float64{
			"moves":     9,
			"explored":  90,
			"beta_cuts": 3,
			"tt_exact":  1.5,
			"tt_cuts":   0.5,
			"max_depth": 4.5,
		},
	}
	player2 := stats.PlayerStats{
		Draws:  1,
		Losses: 1,
		Averages: map[string]float64{
			"moves":     8.5,
			"explored":  87.5,
			"beta_cuts": 2.5,
			"tt_exact":  1,
			"tt_cuts":   0.5,
			"max_depth": 4,
		},
	}

	var buf bytes.Buffer
	r.NoError(Write(&buf, config, player1, player2))

	want := `
---- config
games =  2

player1 depth = 5
player1 time_limit = 100

player2 depth = 5

==== [ player1 ]

wins = 1
draws = 1
losses = 0
moves = 9
explored = 90
beta_cuts = 3
tt_exact = 1.5
tt_cuts = 0.5
max_depth = 4.5

==== [ player2 ]

wins = 0
draws = 1
losses = 1
moves = 8.5
explored = 87.5
beta_cuts = 2.5
tt_exact = 1
tt_cuts = 0.5
max_depth = 4

`
	r.Equal(want, buf.String())
}

func TestWriteNoConfig(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, nil, stats.PlayerStats{}, stats.PlayerStats{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "---- config")
	require.Contains(t, buf.String(), "==== [ player2 ]")
}
