// SPDX-License-Identifier: MIT
// Package report renders driver results for people and for tools.
//
// Text layout per vertex count:
//
//	------- n -------
//	<size>: <groups of that size>     (ascending size, per embedding)
//	   <name>: <implicated graphs>
//	overlap: <graphs implicated under every embedding>
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/treemap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphprint/collision"
	"github.com/katalvlaran/graphprint/driver"
)

// Bucket is one histogram line: Groups collision groups of Size graphs each.
type Bucket struct {
	Size   int `yaml:"size"`
	Groups int `yaml:"groups"`
}

// Histogram counts groups by size, ascending by size.
func Histogram(groups []collision.Group) []Bucket {
	counts := treemap.NewWithIntComparator()
	for _, size := range collision.Sizes(groups) {
		c, found := counts.Get(size)
		if !found {
			c = 0
		}
		counts.Put(size, c.(int)+1)
	}

	out := make([]Bucket, 0, counts.Size())
	it := counts.Iterator()
	for it.Next() {
		out = append(out, Bucket{Size: it.Key().(int), Groups: it.Value().(int)})
	}

	return out
}

// EmbeddingSummary is the per-embedding part of a Summary.
type EmbeddingSummary struct {
	Name       string   `yaml:"name"`
	Histogram  []Bucket `yaml:"histogram,omitempty"`
	Implicated int      `yaml:"implicated"`
}

// Summary is the machine-readable form of one driver.Result.
type Summary struct {
	N          int                `yaml:"n"`
	Connected  bool               `yaml:"connected"`
	Graphs     int                `yaml:"graphs"`
	Embeddings []EmbeddingSummary `yaml:"embeddings"`
	Overlap    int                `yaml:"overlap"`
	CacheHits  int                `yaml:"cache_hits,omitempty"`
}

// Summarize reduces res to counts.
func Summarize(res driver.Result) Summary {
	s := Summary{
		N:         res.N,
		Connected: res.Connected,
		Graphs:    res.Graphs,
		Overlap:   len(res.Overlap),
		CacheHits: res.CacheHits,
	}
	for _, o := range res.Outcomes {
		s.Embeddings = append(s.Embeddings, EmbeddingSummary{
			Name:       o.Name,
			Histogram:  Histogram(o.Groups),
			Implicated: len(o.Implicated),
		})
	}

	return s
}

// WriteText writes the console summary of res.
func WriteText(w io.Writer, res driver.Result) error {
	s := Summarize(res)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "------- %d -------\n", s.N)
	for _, e := range s.Embeddings {
		for _, b := range e.Histogram {
			fmt.Fprintf(bw, "%d: %d\n", b.Size, b.Groups)
		}
		fmt.Fprintf(bw, "%7s: %d\n", e.Name, e.Implicated)
	}
	fmt.Fprintf(bw, "overlap: %d\n", s.Overlap)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}

	return nil
}

// WriteYAML writes the summaries of results as one YAML sequence.
func WriteYAML(w io.Writer, results []driver.Result) error {
	summaries := make([]Summary, 0, len(results))
	for _, res := range results {
		summaries = append(summaries, Summarize(res))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return nil
}
