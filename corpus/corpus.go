package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/bobonovski/gotopic/topic"
)

type Corpus struct {
	VocabSize uint32
	DocNum    uint32
	Docs      map[uint32][]*WordCount

	topics []*topic.Topic
}

type WordCount struct {
	WordId uint32
	Count  uint32
}

func ExpandWords(wcs []*WordCount) []uint32 {
	var words []uint32
	for _, wc := range wcs {
		for i := uint32(0); i < wc.Count; i += 1 {
			words = append(words, wc.WordId)
		}
	}
	return words
}

// load training data from file, the file format should be like:
// [docId wordId:wordCount wordId:wordCount ... wordId:wordCount]
// malformed documents and word counts are logged and skipped, numbers
// that cannot be parsed to uint32 abort the load
func (this *Corpus) Load(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if this.Docs == nil {
		this.Docs = make(map[uint32][]*WordCount)
	}
	vocabMaxId := uint32(0)
	seen := false

	lineIdx := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineIdx += 1
		doc := strings.TrimSpace(scanner.Text())
		vals := strings.Fields(doc)
		if len(vals) < 2 {
			log.Warningf("bad document at line %d: %s", lineIdx, doc)
			continue
		}

		docId, err := strconv.ParseUint(vals[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%s: line %d: bad doc id: %w", fn, lineIdx, err)
		}

		if _, ok := this.Docs[uint32(docId)]; !ok {
			this.DocNum += uint32(1)
		}

		for _, kv := range vals[1:] {
			wc := strings.Split(kv, ":")
			if len(wc) != 2 {
				log.Warningf("bad word count at line %d: %s", lineIdx, kv)
				continue
			}

			wordId, err := strconv.ParseUint(wc[0], 10, 32)
			if err != nil {
				return fmt.Errorf("%s: line %d: bad word id: %w", fn, lineIdx, err)
			}

			count, err := strconv.ParseUint(wc[1], 10, 32)
			if err != nil {
				return fmt.Errorf("%s: line %d: bad word count: %w", fn, lineIdx, err)
			}

			this.Docs[uint32(docId)] = append(this.Docs[uint32(docId)], &WordCount{
				WordId: uint32(wordId),
				Count:  uint32(count),
			})
			if uint32(wordId) > vocabMaxId || !seen {
				vocabMaxId = uint32(wordId)
				seen = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if seen && vocabMaxId+1 > this.VocabSize {
		this.VocabSize = vocabMaxId + 1
	}

	log.Infof("number of documents %d", this.DocNum)
	log.Infof("vocabulary size %d", this.VocabSize)
	return nil
}
