package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Feresey/matchstat/parse"
	"github.com/Feresey/matchstat/stats"
)

// Write печатает эхо конфигурации и блоки статистики обоих игроков.
// Формат фиксированный, ничего не валидируется и не изменяется.
func Write(w io.Writer, config *parse.Node, player1, player2 stats.PlayerStats) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	writeConfig(bw, config)
	fmt.Fprintln(bw)

	writePlayer(bw, "player1", player1)
	writePlayer(bw, "player2", player2)

	return bw.Flush()
}

func writeConfig(bw *bufio.Writer, config *parse.Node) {
	fmt.Fprintln(bw, "---- config")
	fmt.Fprintf(bw, "games =  %s\n", childValue(config, "games"))
	fmt.Fprintln(bw)

	writeConfigPlayer(bw, config, "player1")
	fmt.Fprintln(bw)
	writeConfigPlayer(bw, config, "player2")
}

// writeConfigPlayer выводит пары ключ/значение игрока в порядке,
// в котором они встретились в логе.
func writeConfigPlayer(bw *bufio.Writer, config *parse.Node, player string) {
	if config == nil {
		return
	}
	section, ok := config.Child(player)
	if !ok {
		return
	}
	for _, key := range section.Keys() {
		fmt.Fprintf(bw, "%s %s = %s\n", player, key, childValue(section, key))
	}
}

func writePlayer(bw *bufio.Writer, player string, s stats.PlayerStats) {
	fmt.Fprintf(bw, "==== [ %s ]\n", player)
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "wins = %d\n", s.Wins)
	fmt.Fprintf(bw, "draws = %d\n", s.Draws)
	fmt.Fprintf(bw, "losses = %d\n", s.Losses)
	for _, name := range stats.Counters {
		fmt.Fprintf(bw, "%s = %v\n", name, s.Averages[name])
	}
	fmt.Fprintln(bw)
}

func childValue(n *parse.Node, key string) string {
	if n == nil {
		return ""
	}
	child, ok := n.Child(key)
	if !ok {
		return ""
	}
	return child.Value()
}
