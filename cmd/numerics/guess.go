package main

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/cmd/flags"
	"github.com/prysmaticlabs/numerics/math"
	"github.com/urfave/cli/v2"
)

var au = aurora.NewAurora(true)

var guessSelections = []string{
	"Too high, my number is lower",
	"Correct",
	"Too low, my number is higher",
}

// Indexed like guessSelections.
var guessResponses = []int{math.GuessTooHigh, math.GuessCorrect, math.GuessTooLow}

// askOracle asks whoever holds the hidden number about a candidate.
type askOracle func(candidate int64) (int, error)

var promptOracle askOracle = selectGuessResponse

func guessCommand() *cli.Command {
	guessFlags := flags.WrapFlags([]cli.Flag{flags.SecretFlag})
	return &cli.Command{
		Name:      "guess",
		Usage:     "finds a hidden number in [1, N]; without --secret you hold the number and answer each guess",
		ArgsUsage: "N",
		Flags:     guessFlags,
		Before:    loadFlagsFromFile(guessFlags),
		Action: func(ctx *cli.Context) error {
			n, err := int64Arg(ctx, "N")
			if err != nil {
				return err
			}
			if ctx.IsSet(flags.SecretFlag.Name) {
				return guessSecret(ctx.App.Writer, n, int64(ctx.Int(flags.SecretFlag.Name)))
			}
			return playGuess(ctx.App.Writer, n, promptOracle)
		},
	}
}

func guessSecret(w io.Writer, n, secret int64) error {
	if n >= 1 && (secret < 1 || secret > n) {
		return errors.Errorf("secret %d is not within [1, %d]", secret, n)
	}
	calls := 0
	oracle := math.SecretOracle(secret)
	result, err := math.GuessNumber(n, math.OracleFunc(func(candidate int64) int {
		calls++
		return oracle.Guess(candidate)
	}))
	if err != nil {
		return errors.Wrap(err, "could not guess number")
	}
	log.WithField("oracleCalls", calls).Debug("Found hidden number")
	_, err = fmt.Fprintln(w, result)
	return err
}

// playGuess runs the search step by step, asking ask about every candidate.
func playGuess(w io.Writer, n int64, ask askOracle) error {
	search, err := math.NewBinarySearch(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Think of a number between 1 and %d. I need at most %d guesses.\n", n, math.MaxOracleCalls(n))
	for !search.Done() {
		candidate := search.Candidate()
		response, err := ask(candidate)
		if err != nil {
			return err
		}
		if _, err := search.Feed(response); err != nil {
			return errors.Wrap(err, "could not narrow down your number")
		}
	}
	fmt.Fprintf(w, "Your number is %s, found in %d guesses.\n", au.BrightGreen(search.Candidate()).Bold(), search.Calls())
	return nil
}

func selectGuessResponse(candidate int64) (int, error) {
	promptSelect := promptui.Select{
		Label: fmt.Sprintf("Is your number %d?", candidate),
		Items: guessSelections,
	}
	selection, _, err := promptSelect.Run()
	if err != nil {
		return 0, errors.Wrap(formatPromptError(err), "could not read answer")
	}
	return guessResponses[selection], nil
}

func formatPromptError(err error) error {
	switch err {
	case promptui.ErrAbort:
		return errors.New("guessing aborted, closing")
	case promptui.ErrInterrupt:
		return errors.New("keyboard interrupt, closing")
	case promptui.ErrEOF:
		return errors.New("no input received, closing")
	default:
		return err
	}
}
