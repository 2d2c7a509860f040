package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Feresey/matchstat/parse"
	"github.com/Feresey/matchstat/report"
	"github.com/Feresey/matchstat/stats"
)

type flags struct {
	outputFile string
	debug      bool

	// пути к логам, пустой список означает stdin
	inputs []string
}

func main() {
	var f flags

	flag.StringVar(&f.outputFile, "o", "", "Path to the output file (default stdout)")
	flag.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	flag.Parse()
	f.inputs = flag.Args()

	lc := zap.NewDevelopmentConfig()
	lc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	lc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if f.debug {
		lc.Level.SetLevel(zapcore.DebugLevel)
	}

	logger, err := lc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(1)
	}

	a := &Averager{
		f:      f,
		logger: logger,
	}

	output := io.Writer(os.Stdout)
	if f.outputFile != "" {
		file, err := os.Create(f.outputFile)
		if err != nil {
			logger.Fatal("create output file", zap.Error(err))
		}
		defer file.Close()
		output = file
	}

	if err := a.run(output); err != nil {
		logger.Fatal("", zap.Error(err))
	}
}

type Averager struct {
	f flags

	logger *zap.Logger
}

func (a *Averager) run(output io.Writer) error {
	record, err := a.readInputs()
	if err != nil {
		return err
	}
	a.logger.Debug("parsed record", zap.String("record", spew.Sdump(record)))

	walker := stats.NewWalker(a.logger)
	if games, ok := record.Child("game"); ok {
		if err := walker.Walk(games); err != nil {
			return fmt.Errorf("walk games: %w", err)
		}
	}
	a.logger.Info("games processed", zap.Int("total", walker.TotalGames))

	player1, err := stats.Average(walker.Player1, walker.TotalGames)
	if err != nil {
		return fmt.Errorf("average player1: %w", err)
	}
	player2, err := stats.Average(walker.Player2, walker.TotalGames)
	if err != nil {
		return fmt.Errorf("average player2: %w", err)
	}

	config, _ := record.Child("config")

	if err := report.Write(output, config, player1, player2); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// readInputs собирает запись из всех входных файлов по очереди,
// без аргументов читает stdin.
func (a *Averager) readInputs() (*parse.Node, error) {
	record := parse.NewRecord()

	if len(a.f.inputs) == 0 {
		a.logger.Debug("read stdin")
		if err := parse.ReadRecord(os.Stdin, record); err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return record, nil
	}

	for _, name := range a.f.inputs {
		a.logger.Debug("read input", zap.String("file", name))

		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}

		err = parse.ReadRecord(file, record)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("parse input: %s: %w", name, err)
		}
	}

	return record, nil
}
