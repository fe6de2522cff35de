package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCandidates collects candidate passwords one per line until a blank
// line follows at least one entry, or input ends. Blank lines before the
// first entry are skipped. Input past the terminating blank line stays in
// lines, so the session can continue on it.
func ReadCandidates(ctx context.Context, lines *LineReader, prompt io.Writer) ([]string, error) {
	fmt.Fprintln(prompt, "Enter candidate passwords. End with blank line.")
	var out []string
	for {
		fmt.Fprint(prompt, "> ")
		line, err := lines.ReadLine(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read candidates: %w", err)
		}
		pw := strings.TrimSpace(line)
		if pw != "" {
			out = append(out, pw)
		} else if len(out) > 0 {
			break
		}
		if err != nil {
			break
		}
	}
	fmt.Fprintln(prompt, "Candidate passwords accepted.")
	return out, nil
}

// LoadWordlist reads candidates from a file, one per line. Blank lines and
// lines starting with # are ignored.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return out, nil
}
