package core

import (
	"sort"
	"strings"
)

// TransactionLog remembers which files were moved into which directory.
type TransactionLog struct {
	moves map[string][]string
}

func NewTransactionLog() *TransactionLog {
	return &TransactionLog{moves: make(map[string][]string)}
}

func (l *TransactionLog) Record(dest, file string) {
	l.moves[dest] = append(l.moves[dest], file)
}

// Destinations returns every recorded destination in lexicographic order.
func (l *TransactionLog) Destinations() []string {
	dests := make([]string, 0, len(l.moves))
	for d := range l.moves {
		dests = append(dests, d)
	}
	sort.Strings(dests)
	return dests
}

// Files returns the files moved into dest, in the order they were recorded.
func (l *TransactionLog) Files(dest string) []string {
	return append([]string(nil), l.moves[dest]...)
}

func (l *TransactionLog) Len() int {
	var n int
	for _, files := range l.moves {
		n += len(files)
	}
	return n
}

func (l *TransactionLog) Render() string {
	var sb strings.Builder
	for _, dest := range l.Destinations() {
		sb.WriteString("\n" + dest + ":")
		for _, f := range l.moves[dest] {
			sb.WriteString("\n    " + f)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
