// Package cli provides the interactive study session and deck listing.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hnakamura/decksched/internal/card"
)

//go:generate mockgen -source=study_session.go -destination=../mocks/cli/mock_backend.go -package=mock_cli Backend

// Backend is what a study session needs from the scheduler and the
// collection.
type Backend interface {
	GetNextCard(ctx context.Context) (*card.Card, error)
	Note(ctx context.Context, noteID int64) (*card.Note, error)
	Answer(ctx context.Context, cardID int64, quality int, takenMs int64) error
	Bury(ctx context.Context, cardID int64) error
	Suspend(ctx context.Context, cardID int64) error
}

var errEnd = errors.New("study session finished")

// StudySession runs the answer-then-fetch-next loop on the terminal.
type StudySession struct {
	backend      Backend
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	faint        *color.Color
	clock        func() time.Time

	reviewed int
}

// NewStudySession creates a StudySession over the given backend.
func NewStudySession(backend Backend) *StudySession {
	return &StudySession{
		backend:      backend,
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		faint:        color.New(color.Faint),
		clock:        time.Now,
	}
}

// Run shows cards until the scheduler reports nothing left, the user
// quits, or an interrupt arrives.
func (s *StudySession) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := s.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	fmt.Fprintf(s.stdoutWriter, "Reviewed %d cards.\n", s.reviewed)
	return nil
}

// Session shows one card and records the answer.
func (s *StudySession) Session(ctx context.Context) error {
	c, err := s.backend.GetNextCard(ctx)
	if err != nil {
		return fmt.Errorf("get next card > %w", err)
	}
	if c == nil {
		fmt.Fprintln(s.stdoutWriter, "Congratulations! Nothing left to study today.")
		return errEnd
	}

	note, err := s.backend.Note(ctx, c.NoteID)
	if err != nil {
		return fmt.Errorf("load note %d > %w", c.NoteID, err)
	}

	front, back := note.Front, note.Back
	if c.Ord == 1 {
		front, back = back, front
	}

	fmt.Fprintln(s.stdoutWriter)
	if _, err := s.bold.Fprintln(s.stdoutWriter, front); err != nil {
		return fmt.Errorf("write card front > %w", err)
	}
	if _, err := s.faint.Fprint(s.stdoutWriter, "(press enter to reveal) "); err != nil {
		return fmt.Errorf("write prompt > %w", err)
	}

	shownAt := s.clock()
	if _, err := s.stdinReader.ReadString('\n'); err != nil {
		return fmt.Errorf("read input > %w", err)
	}

	if _, err := s.italic.Fprintln(s.stdoutWriter, back); err != nil {
		return fmt.Errorf("write card back > %w", err)
	}

	for {
		fmt.Fprint(s.stdoutWriter, "Grade 1-5 (1=forgot, 5=perfect), [b]ury, [s]uspend, [q]uit: ")
		line, err := s.stdinReader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read input > %w", err)
		}

		switch input := strings.ToLower(strings.TrimSpace(line)); input {
		case "q", "quit":
			return errEnd
		case "b":
			if err := s.backend.Bury(ctx, c.ID); err != nil {
				return fmt.Errorf("bury card %d > %w", c.ID, err)
			}
			fmt.Fprintln(s.stdoutWriter, "Card buried until tomorrow.")
			return nil
		case "s":
			if err := s.backend.Suspend(ctx, c.ID); err != nil {
				return fmt.Errorf("suspend card %d > %w", c.ID, err)
			}
			fmt.Fprintln(s.stdoutWriter, "Card suspended.")
			return nil
		default:
			quality, err := strconv.Atoi(input)
			if err != nil || quality < 1 || quality > 5 {
				fmt.Fprintln(s.stdoutWriter, "Please enter a number between 1 and 5.")
				continue
			}
			takenMs := s.clock().Sub(shownAt).Milliseconds()
			if err := s.backend.Answer(ctx, c.ID, quality, takenMs); err != nil {
				return fmt.Errorf("answer card %d > %w", c.ID, err)
			}
			s.reviewed++
			return nil
		}
	}
}
