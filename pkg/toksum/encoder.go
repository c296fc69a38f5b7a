package toksum

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktokenloader "github.com/pkoukk/tiktoken-go-loader"
)

// Encoder converts text to token ids and back for one encoding scheme.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(text string) []int
	Decode(ids []int) string
	Name() string
}

// The embedded offline loader avoids fetching BPE data over the network on
// first use. Installed once, before the first GetEncoding call.
var installLoader sync.Once

type tiktokenEncoder struct {
	name string
	enc  *tiktoken.Tiktoken
}

// EncoderForName materializes the tiktoken encoder for an encoding name.
func EncoderForName(encoding string) (Encoder, error) {
	if !isValidEncoding(encoding) {
		return nil, &InvalidEncodingError{Encoding: encoding}
	}

	installLoader.Do(func() {
		tiktoken.SetBpeLoader(tiktokenloader.NewOfflineLoader())
	})

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("load encoding %q: %w", encoding, err)
	}
	return &tiktokenEncoder{name: encoding, enc: enc}, nil
}

func (t *tiktokenEncoder) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

func (t *tiktokenEncoder) Decode(ids []int) string {
	return t.enc.Decode(ids)
}

func (t *tiktokenEncoder) Name() string {
	return t.name
}
