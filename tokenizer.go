// Package kotodama provides text measurement and linguistic feature analysis
// for Japanese (and plain English word counting), built on the kagome
// morphological analyzer.
package kotodama

import (
	"context"
	"fmt"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/sync/singleflight"
)

// InitializationError reports a failed tokenizer construction, carrying the
// underlying dictionary-load cause. It is recoverable: the next Acquire call
// starts a fresh attempt.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("tokenizer initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }

// Handle is a ready-to-use tokenizer. Once obtained it is immutable and safe
// for unsynchronized use from any number of goroutines.
type Handle struct {
	t *tokenizer.Tokenizer
}

// Tokenize runs morphological analysis and returns the token stream.
func (h *Handle) Tokenize(text string) Tokens {
	raw := h.t.Tokenize(text)
	tokens := make(Tokens, 0, len(raw))
	for _, kt := range raw {
		tokens = append(tokens, fromKagome(kt))
	}
	return tokens
}

// fromKagome maps a kagome token onto the domain token. IPA dictionary
// features: POS()[0] is the top-level tag, POS()[1] the first sub-class.
func fromKagome(kt tokenizer.Token) Token {
	t := Token{Surface: kt.Surface}
	pos := kt.POS()
	if len(pos) > 0 {
		t.PartOfSpeech = pos[0]
	}
	if len(pos) > 1 {
		t.PartOfSpeechDetail = pos[1]
	}
	if r, ok := kt.Reading(); ok {
		t.Reading = r
	}
	if b, ok := kt.BaseForm(); ok && b != "" {
		t.BaseForm = b
	} else {
		t.BaseForm = kt.Surface
	}
	return t
}

// Provider owns the tokenizer lifecycle: at most one build is ever in flight,
// a successful handle is reused for the process lifetime, and a failed build
// leaves the provider ready to retry on the next Acquire.
type Provider struct {
	build func() (*Handle, error)

	group  singleflight.Group
	mu     sync.Mutex
	handle *Handle
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithBuilder replaces the default kagome construction. Used by tests and by
// callers that want a different dictionary.
func WithBuilder(build func() (*Handle, error)) ProviderOption {
	return func(p *Provider) {
		p.build = build
	}
}

// NewProvider creates an uninitialized provider. No dictionary is loaded
// until the first Acquire call.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{build: buildIPATokenizer}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// buildIPATokenizer loads the embedded IPA dictionary. This is the one
// expensive operation of the package.
func buildIPATokenizer() (*Handle, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	return &Handle{t: t}, nil
}

// Acquire returns the ready tokenizer handle, building it on first use.
// Concurrent callers during initialization are attached to the same build and
// receive its outcome. Cancelling ctx abandons the wait but not the build;
// a build that later succeeds is kept for subsequent callers.
func (p *Provider) Acquire(ctx context.Context) (*Handle, error) {
	p.mu.Lock()
	h := p.handle
	p.mu.Unlock()
	if h != nil {
		return h, nil
	}

	ch := p.group.DoChan("init", func() (interface{}, error) {
		// Ready is terminal: a flight that lost the race to a completed one
		// must not rebuild.
		p.mu.Lock()
		if h := p.handle; h != nil {
			p.mu.Unlock()
			return h, nil
		}
		p.mu.Unlock()

		Logger.Debug().Msg("loading tokenizer dictionary")
		h, err := p.build()
		if err != nil {
			Logger.Error().Err(err).Msg("tokenizer initialization failed")
			return nil, err
		}
		p.mu.Lock()
		p.handle = h
		p.mu.Unlock()
		Logger.Debug().Msg("tokenizer ready")
		return h, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Handle), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ready reports whether a handle has been built.
func (p *Provider) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle != nil
}

var (
	defaultProvider     *Provider
	defaultProviderOnce sync.Once
)

// DefaultProvider returns the process-wide provider shared by the
// package-level convenience functions.
func DefaultProvider() *Provider {
	defaultProviderOnce.Do(func() {
		defaultProvider = NewProvider()
	})
	return defaultProvider
}

// Acquire returns the default provider's tokenizer handle.
func Acquire(ctx context.Context) (*Handle, error) {
	return DefaultProvider().Acquire(ctx)
}

// Tokenize analyzes text with the default provider's tokenizer.
func Tokenize(ctx context.Context, text string) (Tokens, error) {
	h, err := Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return h.Tokenize(text), nil
}
