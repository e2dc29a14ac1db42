// Command movesgen self-plays a game and prints the moves token the move service accepts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/selfplay"
)

func main() {
	var size entity.Size

	flag.TextVar(&size, "size", entity.DefaultSize, "board size: 3, 5 or 7")
	engineName := flag.String("engine", string(engine.KindRandom), "engine playing both sides: random or center")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random game")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Stdout, size, *engineName, *seed); err != nil {
		logger.Error("failed to generate moves", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer, size entity.Size, engineName string, seed uint64) error {
	kind, err := engine.ParseKind(engineName)
	if err != nil {
		return err
	}

	source := engine.DefaultSource()
	if seed != 0 {
		source = rand.New(rand.NewPCG(seed, seed))
	}

	game, err := selfplay.Play(size, kind, source)
	if err != nil {
		return fmt.Errorf("self-play failed: %w", err)
	}

	fmt.Fprintf(out, "Generating w/ size %s\n\n", size)
	fmt.Fprint(out, game.Board.String())
	fmt.Fprintf(out, "\nresult: %s\nmoves: %s\n", game.Result, game.Token())

	return nil
}
