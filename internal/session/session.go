package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/display"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-log"
)

// Session drives one game over a line-oriented connection: read one
// line, process it to completion, prompt again. It implements
// service.Worker.
type Session struct {
	conn    io.ReadWriter
	world   *game.WorldState
	handler *commands.Handler
}

func NewSession(conn io.ReadWriter, world *game.WorldState, handler *commands.Handler) *Session {
	return &Session{
		conn:    conn,
		world:   world,
		handler: handler,
	}
}

// Start runs the game loop until a terminal condition: game over, end of
// input, or context cancellation. The last two are converted to a
// graceful farewell rather than an error.
func (s *Session) Start(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	// Read input lines into a channel so the loop can also notice
	// cancellation. The game itself stays single-threaded: all state
	// changes happen here.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	if err := s.handler.Greet(ctx); err != nil {
		return fmt.Errorf("greeting player: %w", err)
	}

	for !s.world.GameOver() {
		if err := s.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			// Interrupted: orderly shutdown, not a crash.
			if err := s.handler.Farewell(ctx); err != nil {
				logger.WithError(err).Warn("writing farewell")
			}
			return nil

		case line, ok := <-inputChan:
			if !ok {
				// Input stream ended. Say goodbye and exit
				// cleanly, same as quit.
				if err := s.handler.Farewell(ctx); err != nil {
					logger.WithError(err).Warn("writing farewell")
				}
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			err := s.handler.Exec(ctx, line)
			if err != nil {
				var userErr *commands.UserError
				if errors.As(err, &userErr) {
					if err := s.writeLine(userErr.Message); err != nil {
						return err
					}
					continue
				}
				return err
			}
		}
	}

	logger.Infof("session ended (won=%v)", s.world.GameWon())
	return nil
}

func (s *Session) prompt() error {
	_, err := fmt.Fprint(s.conn, "\n> ")
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := fmt.Fprintf(s.conn, "\n%s\n", display.Wrap(msg))
	return err
}
