package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readKeys returns the keys given as arguments or, if there are none, the
// non-empty lines of r.
func readKeys(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			keys = append(keys, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keys: %w", err)
	}
	return keys, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("key %q is not an integer (use --strings for string keys)", s)
	}
	return n, nil
}

func parseAll[K any](raw []string, parse func(string) (K, error)) ([]K, error) {
	keys := make([]K, 0, len(raw))
	for _, s := range raw {
		k, err := parse(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
