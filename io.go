package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

func wrapWriteLn(s *GameState, text string) {
	const maxWidth = 79
	for utf8.RuneCountInString(text) > maxWidth {
		runes := []rune(text)
		spacePos := maxWidth
		for spacePos > 0 && runes[spacePos] != ' ' {
			spacePos--
		}
		if spacePos == 0 {
			spacePos = maxWidth
		}
		outPrintln(s, string(runes[:spacePos]))
		text = strings.TrimLeft(string(runes[spacePos:]), " ")
	}
	outPrintln(s, text)
}

func showStatus(s *GameState) {
	outPrintln(s)
	outPrintln(s, "=== STATUS ===")
	for _, h := range s.Party.Heroes {
		mark := ""
		if !h.Alive() {
			mark = " ✝"
		} else if h.Stress >= PanicThreshold {
			mark = " 😵"
		}
		outPrintf(s, "%-14s HP %2d/%d | Stress %3d%s\n", h.Name, h.HP, h.MaxHP, h.Stress, mark)
	}
	base := "Functional"
	if !s.Dungeon.BaseFunctional {
		base = "NOT functional"
	}
	outPrintf(s, "Relics: %d/%d | Base: %s\n", s.Dungeon.Relics, s.Dungeon.RequiredRelics, base)
	outPrintln(s, "==============")
}

func showMenu(s *GameState) {
	outPrintln(s)
	outPrintln(s, "Actions:")
	outPrintln(s, "  1) Explore")
	outPrintln(s, "  2) Fight (minor encounter)")
	outPrintln(s, "  3) Repair base")
	outPrintln(s, "  4) Face the boss (requires every relic)")
	outPrintln(s, "  5) Rest")
	outPrintln(s, "  6) Quit")
}

func promptFor(s *GameState) string {
	if s.inCombat() {
		return "Action (1/2/3): "
	}
	return "Choose: "
}

// Console reads operator input. On a terminal it edits lines in raw mode
// with an up/down history; otherwise it reads plain lines.
type Console struct {
	in       io.Reader
	fd       int
	headless bool
	reader   *bufio.Reader

	history      [MaxHistory]string
	historyCount int
}

func NewConsole(in io.Reader, headless bool) *Console {
	c := &Console{in: in, fd: -1, headless: headless}
	if f, ok := in.(*os.File); ok {
		c.fd = int(f.Fd())
	}
	if c.fd < 0 || !term.IsTerminal(c.fd) {
		c.headless = true
	}
	c.reader = bufio.NewReader(in)
	return c
}

// ReadLine prints the prompt and returns the next line. io.EOF is returned
// once input is exhausted.
func (c *Console) ReadLine(s *GameState, prompt string) (string, error) {
	outPrint(s, prompt)
	if c.headless {
		return c.readBuffered()
	}

	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		return c.readBuffered()
	}
	defer func() { _ = term.Restore(c.fd, oldState) }()
	return c.readRaw(s)
}

func (c *Console) readBuffered() (string, error) {
	line, err := c.reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func (c *Console) remember(line string) {
	if line == "" {
		return
	}
	if c.historyCount > 0 && c.history[(c.historyCount-1)%MaxHistory] == line {
		return
	}
	c.history[c.historyCount%MaxHistory] = line
	c.historyCount++
}

func (c *Console) readRaw(s *GameState) (string, error) {
	var lineRunes []rune
	histIdx := c.historyCount
	oldest := c.historyCount - MaxHistory
	if oldest < 0 {
		oldest = 0
	}

	erase := func() {
		for range lineRunes {
			outPrint(s, "\b \b")
		}
	}

	for {
		buf := make([]byte, 4)
		n, err := c.in.Read(buf)
		if err != nil || n == 0 {
			outPrint(s, "\r\n")
			if len(lineRunes) == 0 {
				return "", io.EOF
			}
			return string(lineRunes), nil
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			outPrint(s, "\r\n")
			line := string(lineRunes)
			c.remember(line)
			return line, nil

		case b == '\x04': // Ctrl-D
			outPrint(s, "\r\n")
			return "", io.EOF

		case b == '\x03': // Ctrl-C
			outPrint(s, "^C\r\n")
			return "QUIT", nil

		case b == '\x7f' || b == '\x08':
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		case b == '\x1b':
			seq := buf[1:n]
			if len(seq) < 2 {
				more := make([]byte, 2)
				m, _ := c.in.Read(more)
				seq = append(seq, more[:m]...)
			}
			if len(seq) < 2 || seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if histIdx > oldest {
					erase()
					histIdx--
					lineRunes = []rune(c.history[histIdx%MaxHistory])
					outPrint(s, string(lineRunes))
				}
			case 'B':
				if histIdx < c.historyCount {
					erase()
					histIdx++
					if histIdx < c.historyCount {
						lineRunes = []rune(c.history[histIdx%MaxHistory])
					} else {
						lineRunes = nil
					}
					outPrint(s, string(lineRunes))
				}
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}
