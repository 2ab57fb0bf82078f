package airlock

// codecProbe adapts a Codec into a Probe: a marshal attempt stands in for
// the channel's clone operation.
type codecProbe struct {
	codec  Codec
	native bool
}

// NewProbe adapts a codec into a clone capability probe. Pass native=true
// when the codec is the host's own boundary primitive rather than a
// stand-in for a remote one; the flag feeds quirk handling.
func NewProbe(c Codec, native bool) Probe {
	return &codecProbe{codec: c, native: native}
}

// ContentType returns the adapted codec's MIME type.
func (p *codecProbe) ContentType() string {
	return p.codec.ContentType()
}

// Native reports whether the adapted codec is the host's own primitive.
func (p *codecProbe) Native() bool {
	return p.native
}

// Check attempts to marshal v. The encoded bytes are discarded; only the
// success of the attempt matters.
func (p *codecProbe) Check(v any) error {
	_, err := p.codec.Marshal(v)
	return err
}
