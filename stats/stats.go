package stats

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Feresey/matchstat/parse"
	"go.uber.org/zap"
)

var (
	// ErrUnknownWinner значение winner вне трёх распознаваемых литералов
	ErrUnknownWinner = errors.New("unknown winner")
	// ErrBadCounter поле счётчика не является целым числом
	ErrBadCounter = errors.New("bad counter value")
	// ErrNoGames среднее по нулю игр не определено
	ErrNoGames = errors.New("no games")
)

// Counters перечисляет числовые поля игрока в порядке вывода отчёта.
var Counters = []string{"moves", "explored", "beta_cuts", "tt_exact", "tt_cuts", "max_depth"}

// Accumulator копит итоги одного игрока по всем сыгранным партиям.
type Accumulator struct {
	Wins   int
	Draws  int
	Losses int

	// суммы счётчиков по ключам из Counters
	Sums map[string]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{Sums: make(map[string]int)}
}

// PlayerStats это итог игрока после усреднения: исходы остаются целыми,
// счётчики становятся средним на партию.
type PlayerStats struct {
	Wins   int
	Draws  int
	Losses int

	Averages map[string]float64
}

// Walker прогоняет разобранные партии через аккумуляторы обоих игроков.
type Walker struct {
	logger *zap.Logger

	Player1 *Accumulator
	Player2 *Accumulator

	TotalGames int
}

func NewWalker(logger *zap.Logger) *Walker {
	return &Walker{
		logger:  logger,
		Player1: NewAccumulator(),
		Player2: NewAccumulator(),
	}
}

// Walk делает один проход по записи "game": классифицирует исход каждой
// партии и прибавляет счётчики обоих игроков. Порядок обхода не важен,
// все операции коммутативны.
func (w *Walker) Walk(games *parse.Node) error {
	for _, id := range games.Keys() {
		game, ok := games.Child(id)
		if !ok {
			continue
		}
		if err := w.walkGame(id, game); err != nil {
			return err
		}
		w.TotalGames++
	}
	return nil
}

func (w *Walker) walkGame(id string, game *parse.Node) error {
	winner := leafValue(game, "winner")

	switch winner {
	case "draw":
		w.Player1.Draws++
		w.Player2.Draws++
	case "player1":
		w.Player1.Wins++
		w.Player2.Losses++
	case "player2":
		w.Player2.Wins++
		w.Player1.Losses++
	default:
		return fmt.Errorf("game %s: %q: %w", id, winner, ErrUnknownWinner)
	}

	w.logger.Debug("game processed",
		zap.String("game", id),
		zap.String("winner", winner),
	)

	if err := w.Player1.add(game, "player1"); err != nil {
		return fmt.Errorf("game %s: %w", id, err)
	}
	if err := w.Player2.add(game, "player2"); err != nil {
		return fmt.Errorf("game %s: %w", id, err)
	}
	return nil
}

func (a *Accumulator) add(game *parse.Node, player string) error {
	stats, _ := game.Child(player)

	for _, name := range Counters {
		raw := leafValue(stats, name)
		num, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s.%s: %q: %w", player, name, raw, ErrBadCounter)
		}
		a.Sums[name] += num
	}
	return nil
}

// Average переводит накопленные суммы в среднее на партию. Возвращаемый
// тип отличается от Accumulator, так что повторное усреднение уже
// усреднённого результата не выражается.
func Average(a *Accumulator, totalGames int) (PlayerStats, error) {
	if totalGames == 0 {
		return PlayerStats{}, ErrNoGames
	}

	res := PlayerStats{
		Wins:     a.Wins,
		Draws:    a.Draws,
		Losses:   a.Losses,
		Averages: make(map[string]float64, len(Counters)),
	}
	for _, name := range Counters {
		res.Averages[name] = float64(a.Sums[name]) / float64(totalGames)
	}
	return res, nil
}

// leafValue достаёт строковое значение по ключу, пустая строка если нет.
func leafValue(n *parse.Node, key string) string {
	if n == nil {
		return ""
	}
	child, ok := n.Child(key)
	if !ok {
		return ""
	}
	return child.Value()
}
