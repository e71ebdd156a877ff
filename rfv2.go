// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

// SumV2 computes the rfv2 digest of msg with the default seed.
//
// rb is the working rambox; it may be nil, in which case a private one is
// allocated for this call (96 MiB, expensive) and discarded. tmpl is an
// optional pre-initialized read-only rambox used to restore rb after the
// hash instead of rewinding or re-initializing it; it may be nil.
func SumV2(msg []byte, rb, tmpl *Rambox) ([Size]byte, error) {
	return SumV2Seed(msg, rb, tmpl, V2Seed)
}

// SumV2Seed computes the rfv2 digest of msg with an explicit seed.
func SumV2Seed(msg []byte, rb, tmpl *Rambox, seed uint32) ([Size]byte, error) {
	return sumV2(msg, rb, tmpl, seed, false)
}

func sumV2(msg []byte, rb, tmpl *Rambox, seed uint32, readOnly bool) ([Size]byte, error) {
	var out [Size]byte

	if tmpl != nil && len(tmpl.words) != V2RamboxWords {
		return out, ErrTemplateSize
	}

	owned := false
	if rb == nil {
		if tmpl != nil {
			rb = tmpl.Clone()
		} else {
			rb = NewRambox()
		}
		owned = true
	}
	if len(rb.words) != V2RamboxWords {
		return out, ErrRamboxSize
	}

	ctx := newV2Context(rb, msg, seed, readOnly)

	for pass := 0; pass < 2; pass++ {
		ctx.update(msg)
		ctx.pad256()
	}
	ctx.finalV2(&out)

	if !owned && !readOnly {
		rewind(rb, tmpl, ctx)
	}
	return out, nil
}

// newV2Context builds a v2 context over rb: the state is reset, and the
// region window is derived from the CRC of the whole message. It starts at
// an offset below half the rambox and is twice the distance from that
// offset to the middle long, so it ends as far before the rambox end as it
// starts after the beginning: the whole rambox for offset 0, down to two
// words for the largest offset.
func newV2Context(rb *Rambox, msg []byte, seed uint32, readOnly bool) *context {
	ctx := new(context)
	ctx.init(rb.words, seed, true)

	msgh := crc32Mem(seed, msg)
	half := uint64(V2RamboxWords / 2)
	ctx.rbO = uint64(msgh) % half
	ctx.rbL = 2 * (half - ctx.rbO)
	if readOnly {
		ctx.changes = changesReadOnly
	}
	return ctx
}

// rewind undoes the rambox writes recorded in ctx. When the change list
// overflowed only a full restore is sound; otherwise the touched cells are
// replaced from the template in ascending order, or from the recorded
// previous values in reverse order when no template exists (reverse order
// makes repeated writes to one cell unwind correctly).
func rewind(rb, tmpl *Rambox, ctx *context) {
	switch {
	case ctx.changes == 0:
	case ctx.changes >= ramboxHist:
		if tmpl != nil {
			copy(rb.words, tmpl.words)
		} else {
			raminit(rb.words)
		}
	case tmpl != nil:
		for i := 0; i < ctx.changes; i++ {
			idx := ctx.hist[i]
			rb.words[idx] = tmpl.words[idx]
		}
	default:
		for i := ctx.changes - 1; i >= 0; i-- {
			rb.words[ctx.hist[i]] = ctx.prev[i]
		}
	}
}

// Hasher is a configured rfv2 hasher. Implementations are safe for
// sequential reuse; a Hasher whose rambox is writable must not be shared
// between goroutines.
type Hasher interface {
	// Sum computes the rfv2 digest of msg.
	Sum(msg []byte) ([Size]byte, error)

	// Seed returns the rolling-CRC seed the hasher was built with.
	Seed() uint32
}

// Option configures a Hasher.
type Option func(*ConfigOptions)

// ConfigOptions holds the configurable options for a Hasher.
type ConfigOptions struct {
	// Seed is the rolling-CRC seed. Defaults to V2Seed.
	Seed uint32

	// Rambox is the working rambox. When nil, the hasher allocates and
	// initializes its own (or clones Template if one is given).
	Rambox *Rambox

	// Template is an optional pristine rambox used to restore the working
	// rambox after each hash.
	Template *Rambox

	// ReadOnlyRambox marks the working rambox as shared: the hasher never
	// writes to it, so one rambox may serve many concurrent hashers.
	ReadOnlyRambox bool
}

// WithSeed sets the rolling-CRC seed.
func WithSeed(seed uint32) Option {
	return func(c *ConfigOptions) {
		c.Seed = seed
	}
}

// WithRambox binds an existing working rambox.
func WithRambox(rb *Rambox) Option {
	return func(c *ConfigOptions) {
		c.Rambox = rb
	}
}

// WithTemplate binds a pristine template rambox for post-hash restores.
func WithTemplate(tmpl *Rambox) Option {
	return func(c *ConfigOptions) {
		c.Template = tmpl
	}
}

// WithReadOnlyRambox makes the hasher treat its rambox as shared and
// immutable.
func WithReadOnlyRambox() Option {
	return func(c *ConfigOptions) {
		c.ReadOnlyRambox = true
	}
}

// hasher implements Hasher.
type hasher struct {
	seed     uint32
	rambox   *Rambox
	template *Rambox
	readOnly bool
}

// NewHasher creates a Hasher. Allocating the rambox here rather than per
// call is what makes repeated v2 hashing affordable.
func NewHasher(options ...Option) (Hasher, error) {
	opts := &ConfigOptions{Seed: V2Seed}
	for _, opt := range options {
		opt(opts)
	}

	if opts.Template != nil && opts.Template.Words() != V2RamboxWords {
		return nil, ErrTemplateSize
	}

	rb := opts.Rambox
	if rb == nil {
		if opts.Template != nil {
			rb = opts.Template.Clone()
		} else {
			rb = NewRambox()
		}
	}
	if rb.Words() != V2RamboxWords {
		return nil, ErrRamboxSize
	}

	return &hasher{
		seed:     opts.Seed,
		rambox:   rb,
		template: opts.Template,
		readOnly: opts.ReadOnlyRambox,
	}, nil
}

func (h *hasher) Sum(msg []byte) ([Size]byte, error) {
	return sumV2(msg, h.rambox, h.template, h.seed, h.readOnly)
}

func (h *hasher) Seed() uint32 { return h.seed }
