package worddetail

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Reader returns a pronunciation aid for a translation, or "" when it has none.
type Reader interface {
	Reading(text string) string
}

// KanaReader gives the katakana reading of Japanese text using the IPA
// dictionary. It is safe for concurrent use.
type KanaReader struct {
	t *tokenizer.Tokenizer
}

func NewKanaReader() (*KanaReader, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KanaReader{t: t}, nil
}

// Reading concatenates the token readings. Tokens without a dictionary reading
// keep their surface form. It returns "" when the reading adds nothing.
func (r *KanaReader) Reading(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var sb strings.Builder
	for _, token := range r.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}
		// IPA features: 7 is the reading in katakana.
		features := token.Features()
		if len(features) > 7 && features[7] != "*" {
			sb.WriteString(features[7])
			continue
		}
		sb.WriteString(token.Surface)
	}
	reading := sb.String()
	if reading == text {
		return ""
	}
	return reading
}
