package session

import (
	"fmt"
	"io"
	"os"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/display"
)

// Console joins the process's standard streams into the io.ReadWriter a
// session expects. The streams are held for the process lifetime.
type Console struct {
	io.Reader
	io.Writer
}

func NewConsole() *Console {
	return &Console{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// connPublisher delivers rendered messages over the session connection,
// word-wrapped and separated from the prompt by a blank line.
type connPublisher struct {
	w io.Writer
}

// NewPublisher wraps a writer for handler output.
func NewPublisher(w io.Writer) commands.Publisher {
	return &connPublisher{w: w}
}

func (p *connPublisher) Publish(data []byte) error {
	_, err := fmt.Fprintf(p.w, "\n%s\n", display.Wrap(string(data)))
	return err
}
