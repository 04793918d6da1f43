package regmon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader is where commands come from. *tty.TTY satisfies it.
type LineReader interface {
	ReadString() (string, error)
}

type scanLines struct {
	sc *bufio.Scanner
}

// Lines reads commands one per line from r.
func Lines(r io.Reader) LineReader {
	return &scanLines{sc: bufio.NewScanner(r)}
}

func (s *scanLines) ReadString() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Serve executes commands from in until quit or end of input. Command
// errors are reported on the monitor's output and do not stop the session.
// With prompt set, a prompt naming the current core precedes every line.
func (m *Monitor) Serve(in LineReader, prompt bool) error {
	for {
		if prompt {
			fmt.Fprintf(m.out, "%s> ", m.core)
		}
		line, err := in.ReadString()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		err = m.Exec(strings.TrimSpace(line))
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			m.log.Debugf("%q: %v", line, err)
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
	}
}
