// Package report surfaces the representative words of each topic.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/bobonovski/gotopic/topic"
)

// Vocabulary maps word ids to words, the id being the line number.
type Vocabulary []string

// LoadVocabulary reads one word per line from fn.
func LoadVocabulary(fn string) (Vocabulary, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vocab Vocabulary
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		vocab = append(vocab, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab, nil
}

// Word returns the word for id, or "#id" if the vocabulary does not know it.
func (v Vocabulary) Word(id uint32) string {
	if int(id) < len(v) && v[id] != "" {
		return v[id]
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

type WordProb struct {
	WordId uint32
	Prob   float64
}

type Summary struct {
	Ident uint32
	Words []WordProb
}

// Summarize collects the n most probable words of every topic.
// n <= 0 keeps the whole vocabulary.
func Summarize(topics []*topic.Topic, n int) ([]Summary, error) {
	sums := make([]Summary, 0, len(topics))
	for _, tp := range topics {
		top, err := tp.TopN(n)
		if err != nil {
			return nil, err
		}
		s := Summary{
			Ident: tp.Ident(),
			Words: make([]WordProb, len(top)),
		}
		for i, w := range top {
			p, err := tp.ProbWord(w)
			if err != nil {
				return nil, err
			}
			s.Words[i] = WordProb{WordId: w, Prob: p}
		}
		sums = append(sums, s)
	}
	return sums, nil
}

// Render writes one table row per topic with its words and probabilities.
func Render(w io.Writer, sums []Summary, vocab Vocabulary) error {
	data := pterm.TableData{{"topic", "top words"}}
	for _, s := range sums {
		words := make([]string, len(s.Words))
		for i, wp := range s.Words {
			words[i] = fmt.Sprintf("%s(%.4f)", vocab.Word(wp.WordId), wp.Prob)
		}
		data = append(data, []string{
			strconv.FormatUint(uint64(s.Ident), 10),
			strings.Join(words, " "),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
