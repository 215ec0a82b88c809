package pathbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
	"github.com/chipsenkbeil/typed-path-sub000/internal/testutil"
)

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestGoldenCorpus(t *testing.T) {
	corpus := testutil.LoadCorpus(t)

	for _, cc := range corpus.Components {
		t.Run(cc.Grammar+"/components/"+cc.Path, func(t *testing.T) {
			p := []byte(cc.Path)
			switch cc.Grammar {
			case grammar.NameWindows:
				assert.Equal(t, nilIfEmpty(cc.Components), nilIfEmpty(componentNames[grammar.Windows](p)))
				assert.Equal(t, cc.Normalized, string(Normalize[grammar.Windows](p)))
			default:
				assert.Equal(t, nilIfEmpty(cc.Components), nilIfEmpty(componentNames[grammar.Posix](p)))
				assert.Equal(t, cc.Normalized, string(Normalize[grammar.Posix](p)))
			}
		})
	}

	for _, pc := range corpus.Push {
		t.Run(pc.Grammar+"/push/"+pc.Base+"+"+pc.Incoming, func(t *testing.T) {
			var got string
			if pc.Grammar == grammar.NameWindows {
				got = PushString[grammar.Windows](pc.Base, pc.Incoming)
			} else {
				got = PushString[grammar.Posix](pc.Base, pc.Incoming)
			}
			assert.Equal(t, pc.Want, got)
		})
	}
}
