package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/player"
)

// runInteractive plays one game in which at least one side is typed on in.
// Engine sides run in the background. Rejected input is reported on
// errOut; "quit" or the end of input abandons the game.
func runInteractive(ctx context.Context, cfg *config.Config, in io.Reader, errOut io.Writer) error {
	inputCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	selections := make(chan player.Selection)
	human := player.NewHuman(selections)

	white, err := interactivePolicy(cfg.Players.White, cfg.Players.Seed, human)
	if err != nil {
		return err
	}
	black, err := interactivePolicy(cfg.Players.Black, cfg.Players.Seed+1, human)
	if err != nil {
		return err
	}
	for _, p := range []player.Policy{white, black} {
		if bg, ok := p.(*player.BackgroundPolicy); ok {
			defer bg.Close()
		}
	}

	go readSelections(inputCtx, in, errOut, selections)

	gameCfg := *cfg
	if gameCfg.Verbosity < 2 {
		gameCfg.Verbosity = 2
	}
	res, err := game.NewMatch(white, black, &gameCfg).Run(ctx)
	if errors.Is(err, errors.ErrAborted) {
		fmt.Fprintf(cfg.OutputFile, "Game abandoned after %d plies\n%s\n", res.Ply, res.FinalFEN)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cfg.OutputFile, "%s %s\n%s\n", res.Outcome(), res.Status, res.FinalFEN)
	return nil
}

// interactivePolicy returns human for the human side and a background
// engine otherwise.
func interactivePolicy(name string, seed int64, human *player.Human) (player.Policy, error) {
	if name == player.HumanName {
		return human, nil
	}
	p, err := player.New(name, seed)
	if err != nil {
		return nil, err
	}
	return player.Background(p), nil
}

// readSelections turns each input line into a selection and waits for the
// verdict before reading the next one. The channel is closed on "quit" or
// at the end of input.
func readSelections(ctx context.Context, in io.Reader, errOut io.Writer, selections chan<- player.Selection) {
	defer close(selections)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}

		sel, err := parseSelection(line)
		if err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
			continue
		}
		result := make(chan error, 1)
		sel.Result = result

		select {
		case selections <- sel:
		case <-ctx.Done():
			return
		}
		if err := <-result; err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
		}
	}
}

// parseSelection reads a move typed in UCI form, e.g. "e2e4" or "e7e8q".
// Whether the move is legal is decided by the human policy.
func parseSelection(s string) (player.Selection, error) {
	if len(s) != 4 && len(s) != 5 {
		return player.Selection{}, errors.Wrapf(errors.ErrIllegalMove, "cannot read %q, want e.g. e2e4", s)
	}
	from, okFrom := chess.ParseSquare(s[0:2])
	to, okTo := chess.ParseSquare(s[2:4])
	if !okFrom || !okTo {
		return player.Selection{}, errors.Wrapf(errors.ErrIllegalMove, "cannot read %q, want e.g. e2e4", s)
	}

	promo := chess.NoKind
	if len(s) == 5 {
		promo = chess.KindFromLetter(s[4])
		if promo == chess.NoKind || promo == chess.Pawn || promo == chess.King {
			return player.Selection{}, errors.Wrapf(errors.ErrIllegalMove, "cannot promote to %q", s[4:])
		}
	}
	return player.Selection{From: from, To: to, Promotion: promo}, nil
}
