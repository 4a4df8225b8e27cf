package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type PromptOption func(*promptConfig)

func WithValidator(v promptValidator) PromptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) PromptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// A Prompter reads line-oriented answers from an interactive connection.
// It owns the connection's read buffer, so every read for a session must
// go through the same Prompter.
type Prompter struct {
	rw      io.ReadWriter
	scanner *bufio.Scanner
}

func NewPrompter(rw io.ReadWriter) *Prompter {
	return &Prompter{
		rw:      rw,
		scanner: bufio.NewScanner(rw),
	}
}

// ReadLine returns the next input line with surrounding whitespace
// trimmed. A closed connection reports io.EOF.
func (p *Prompter) ReadLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Prompt writes prompt and reads one line, re-asking until the validator
// accepts the input or the try limit is hit.
func (p *Prompter) Prompt(prompt string, opts ...PromptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		_, err := p.rw.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		input, err := p.ReadLine()
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if msg != "" {
					p.rw.Write([]byte(msg))
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					p.rw.Write([]byte("Too many tries.\n"))
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}

func (p *Prompter) PromptYN(prompt string) (bool, error) {
	str, err := p.Prompt(prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
