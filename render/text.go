package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlabel/core"
)

// Labeling formats labels as a bracketed comma list: [0,8,1,5,2].
func Labeling(labels []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, l := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(l))
	}
	b.WriteByte(']')

	return b.String()
}

// Subset formats chosen elements in braces: { 1 3 }.
func Subset(members []int) string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, m := range members {
		b.WriteString(strconv.Itoa(m))
		b.WriteByte(' ')
	}
	b.WriteByte('}')

	return b.String()
}

// WriteLabelings writes one Labeling per line.
func WriteLabelings(w io.Writer, labelings [][]int) error {
	return writeLines(w, labelings, Labeling)
}

// WriteSubsets writes one Subset per line.
func WriteSubsets(w io.Writer, subsets [][]int) error {
	return writeLines(w, subsets, Subset)
}

func writeLines(w io.Writer, rows [][]int, format func([]int) string) error {
	for _, r := range rows {
		if _, err := io.WriteString(w, format(r)+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// AdjacencyList lists each vertex followed by its neighbors:
//
//	0: 1 3
//	1: 0 2
func AdjacencyList(g *core.Graph) string {
	var b strings.Builder
	for v := 0; v < g.Order(); v++ {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(':')
		for _, u := range g.Neighbors(v) {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(u))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
