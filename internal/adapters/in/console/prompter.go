package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
)

var cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)

// CardExpiry is a month/year pair that is not in the past.
type CardExpiry struct {
	Month int
	Year  int
}

type line struct {
	text string
	err  error
}

// Prompter reads one answer per line and re-prompts until the answer is valid.
// Reading happens on a separate goroutine so that a cancelled context unblocks
// a prompt that is waiting for input.
type Prompter struct {
	out   io.Writer
	lines chan line
	done  chan struct{}
	once  sync.Once
}

// NewPrompter starts reading in. Call Close to release the reader goroutine.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *Prompter) Close() {
	p.once.Do(func() { close(p.done) })
}

func (p *Prompter) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- line{text: scanner.Text()}:
		case <-p.done:
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case p.lines <- line{err: err}:
	case <-p.done:
	}
}

func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// readLine returns io.EOF once input is exhausted, and keeps returning it.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case l := <-p.lines:
		if l.err != nil {
			p.Close()
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Optional prints prompt and returns the trimmed answer, which may be empty.
func (p *Prompter) Optional(ctx context.Context, prompt string) (string, error) {
	p.Printf("%s", prompt)
	return p.readLine(ctx)
}

// Text re-prompts until the answer is not blank.
func (p *Prompter) Text(ctx context.Context, prompt string) (string, error) {
	for {
		answer, err := p.Optional(ctx, prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.Println("❌ Input cannot be empty. Please try again.")
	}
}

// Number prints prompt once and re-reads until the answer is an integer.
func (p *Prompter) Number(ctx context.Context, prompt string) (int, error) {
	p.Printf("%s", prompt)
	for {
		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil {
			return n, nil
		}
		p.Printf("❌ Invalid input. Please enter a valid number: ")
	}
}

// Choice re-reads until the answer is a number in [1, maxChoice].
func (p *Prompter) Choice(ctx context.Context, prompt string, maxChoice int) (int, error) {
	p.Printf("%s", prompt)
	for {
		answer, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		switch {
		case convErr != nil:
			p.Printf("❌ Invalid input. Please enter a number: ")
		case n < 1 || n > maxChoice:
			p.Printf("❌ Invalid choice. Please enter a valid option (1-%d): ", maxChoice)
		default:
			return n, nil
		}
	}
}

// Pick lists items numbered from 1 and returns the chosen one.
func (p *Prompter) Pick(ctx context.Context, title string, items []string) (string, error) {
	p.Println(title)
	for i, item := range items {
		p.Printf("%d. %s\n", i+1, item)
	}
	n, err := p.Choice(ctx, fmt.Sprintf("💡 Enter your choice (1-%d): ", len(items)), len(items))
	if err != nil {
		return "", err
	}
	return items[n-1], nil
}

// PickMany reads a comma-separated list of item numbers. Entries that are not
// valid numbers are reported and skipped; duplicates are kept once.
func (p *Prompter) PickMany(ctx context.Context, title string, items []string) ([]string, error) {
	p.Println(title)
	for i, item := range items {
		p.Printf("%d. %s\n", i+1, item)
	}
	answer, err := p.Optional(ctx, "💡 Enter your choices: ")
	if err != nil {
		return nil, err
	}

	var picked []string
	seen := make(map[int]bool)
	for _, field := range strings.Split(answer, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, convErr := strconv.Atoi(field)
		switch {
		case convErr != nil:
			p.Println("❌ Invalid input. Please enter numbers separated by commas.")
		case n < 1 || n > len(items):
			p.Println("❌ Invalid topping number. Please try again.")
		case !seen[n]:
			seen[n] = true
			picked = append(picked, items[n-1])
		}
	}
	return picked, nil
}

// Contact re-prompts until the answer is a 10-digit contact number.
func (p *Prompter) Contact(ctx context.Context, prompt string) (string, error) {
	for {
		answer, err := p.Text(ctx, prompt)
		if err != nil {
			return "", err
		}
		if _, parseErr := kernel.NewContactNumber(answer); parseErr == nil {
			return answer, nil
		}
		p.Println("❌ Invalid contact number. Please enter a valid 10-digit number.")
	}
}

// CardNumber re-reads until the answer is exactly 16 digits. The number is
// only checked for shape and never stored.
func (p *Prompter) CardNumber(ctx context.Context) (string, error) {
	p.Printf("💳 Enter your card number (16 digits): ")
	for {
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if cardNumberPattern.MatchString(answer) {
			return answer, nil
		}
		p.Printf("❌ Invalid card number. It must be 16 digits. Please try again: ")
	}
}

// Expiry reads a month and a year and starts over while the pair lies before now.
func (p *Prompter) Expiry(ctx context.Context, now time.Time) (CardExpiry, error) {
	for {
		month, err := p.Number(ctx, "💳 Enter the expiration month (1-12): ")
		if err != nil {
			return CardExpiry{}, err
		}
		for month < 1 || month > 12 {
			month, err = p.Number(ctx, "❌ Invalid expiration month. It must be between 1 and 12. Please try again: ")
			if err != nil {
				return CardExpiry{}, err
			}
		}

		year, err := p.Number(ctx, fmt.Sprintf("💳 Enter the expiration year (e.g., %d): ", now.Year()))
		if err != nil {
			return CardExpiry{}, err
		}

		expiry := CardExpiry{Month: month, Year: year}
		if !expiry.Before(now) {
			return expiry, nil
		}
		p.Println("❌ Invalid expiration year or month. It cannot be in the past.")
	}
}

// Before reports whether the card expired before the month of now.
func (e CardExpiry) Before(now time.Time) bool {
	if e.Year != now.Year() {
		return e.Year < now.Year()
	}
	return e.Month < int(now.Month())
}
