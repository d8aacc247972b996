package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/gotopic/topic"
)

func TestLoadVocabulary(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(fn, []byte("apple\nbanana\n\ncherry\n"), 0644))

	vocab, err := LoadVocabulary(fn)
	require.NoError(t, err)
	assert.Len(t, vocab, 4)
	assert.Equal(t, "banana", vocab.Word(uint32(1)))
	assert.Equal(t, "#2", vocab.Word(uint32(2)))
	assert.Equal(t, "#9", vocab.Word(uint32(9)))

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	a := topic.New(uint32(0))
	require.NoError(t, a.SetModel([]float64{1, 3, 0, 4}))
	b := topic.New(uint32(1))
	require.NoError(t, b.SetModel([]float64{2, 2, 4, 0}))

	sums, err := Summarize([]*topic.Topic{a, b}, 2)
	require.NoError(t, err)
	require.Len(t, sums, 2)

	assert.Equal(t, uint32(0), sums[0].Ident)
	assert.Equal(t, []WordProb{{WordId: 3, Prob: 0.5}, {WordId: 1, Prob: 0.375}}, sums[0].Words)
	assert.Equal(t, uint32(1), sums[1].Ident)
	assert.Equal(t, []WordProb{{WordId: 2, Prob: 0.5}, {WordId: 0, Prob: 0.25}}, sums[1].Words)
}

func TestSummarizeUnset(t *testing.T) {
	_, err := Summarize([]*topic.Topic{topic.New(uint32(0))}, 3)
	assert.ErrorIs(t, err, topic.ErrUninitializedModel)
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	sums := []Summary{
		{Ident: 0, Words: []WordProb{{WordId: 1, Prob: 0.75}, {WordId: 5, Prob: 0.25}}},
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sums, Vocabulary{"apple", "banana"}))

	out := buf.String()
	assert.Contains(t, out, "top words")
	assert.Contains(t, out, "banana(0.7500)")
	assert.Contains(t, out, "#5(0.2500)")
}
