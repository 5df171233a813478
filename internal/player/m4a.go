package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

const alacFrameSize = 4096

var errUnknownCodec = errors.New("unknown codec in mp4 container")

// m4aStream decodes the samples of an MP4 container one at a time with the
// AAC or ALAC decoder matching its codec. The file stays owned by the caller.
type m4aStream struct {
	container *m4a.Reader
	codec     m4a.CodecType
	aac       *faad2.Decoder
	alac      *alac.Alac
	channels  int
	bits      int
	length    int
	next      int
	err       error

	pending [][2]float64
	offset  int
}

func decodeM4A(r io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	container, err := m4a.Open(r)
	if err != nil {
		return nil, beep.Format{}, err
	}

	rate := int(container.SampleRate())
	s := &m4aStream{
		container: container,
		codec:     container.Codec(),
		channels:  int(container.Channels()),
		bits:      int(container.SampleSize()),
		length:    int(container.Duration().Seconds() * float64(rate)),
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}

	switch s.codec {
	case m4a.CodecAAC:
		ctx := context.Background()
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, container.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		s.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  rate,
			SampleSize:  s.bits,
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		s.alac = dec
		if s.bits == 24 {
			format.Precision = 3
		}
	default:
		return nil, beep.Format{}, errUnknownCodec
	}
	return s, format, nil
}

func (s *m4aStream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	n := 0
	for n < len(samples) {
		if s.offset < len(s.pending) {
			c := copy(samples[n:], s.pending[s.offset:])
			s.offset += c
			n += c
			continue
		}
		if s.next >= s.container.SampleCount() {
			return n, n > 0
		}
		if err := s.decodeNext(); err != nil {
			s.err = err
			return n, n > 0
		}
	}
	return n, true
}

// decodeNext fills the pending buffer with the next container sample.
func (s *m4aStream) decodeNext() error {
	data, err := s.container.ReadSample(s.next)
	if err != nil {
		return err
	}
	s.next++

	switch s.codec {
	case m4a.CodecAAC:
		pcm, err := s.aac.Decode(context.Background(), data)
		if err != nil {
			return err
		}
		s.pending = int16Frames(pcm, s.channels)
	case m4a.CodecALAC:
		s.pending = pcmFrames(s.alac.Decode(data), s.channels, s.bits)
	default:
		return errUnknownCodec
	}
	s.offset = 0
	return nil
}

func (s *m4aStream) Err() error { return s.err }

func (s *m4aStream) Len() int { return s.length }

func (s *m4aStream) Position() int {
	at := s.container.SampleTime(s.next)
	return int(at.Seconds() * float64(s.container.SampleRate()))
}

func (s *m4aStream) Seek(p int) error {
	p = max(0, min(p, s.length))
	at := time.Duration(float64(p) / float64(s.container.SampleRate()) * float64(time.Second))
	s.next = s.container.SeekToTime(at)
	s.pending = nil
	s.offset = 0
	s.err = nil
	return nil
}

func (s *m4aStream) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return nil
}

// aacStream reads AAC audio through the faad2 MP4 reader, which handles
// both demuxing and decoding.
type aacStream struct {
	reader *faad2.M4AReader
	buf    []int16
	length int
	err    error
}

func decodeAAC(r io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	reader, err := faad2.OpenM4A(context.Background(), r)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := int(reader.SampleRate())
	s := &aacStream{
		reader: reader,
		length: int(reader.Duration().Seconds() * float64(rate)),
	}
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	return s, format, nil
}

func (s *aacStream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	channels := int(s.reader.Channels())
	want := len(samples) * channels
	if cap(s.buf) < want {
		s.buf = make([]int16, want)
	}
	got, err := s.reader.Read(context.Background(), s.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = fmt.Errorf("aac read: %w", err)
		return 0, false
	}
	if got == 0 {
		return 0, false
	}
	return copy(samples, int16Frames(s.buf[:got], channels)), true
}

func (s *aacStream) Err() error { return s.err }

func (s *aacStream) Len() int { return s.length }

func (s *aacStream) Position() int {
	return int(s.reader.Position().Seconds() * float64(s.reader.SampleRate()))
}

func (s *aacStream) Seek(p int) error {
	p = max(0, min(p, s.length))
	at := time.Duration(float64(p) / float64(s.reader.SampleRate()) * float64(time.Second))
	if err := s.reader.Seek(at); err != nil {
		return err
	}
	s.err = nil
	return nil
}

func (s *aacStream) Close() error {
	return s.reader.Close(context.Background())
}

// int16Frames turns interleaved 16-bit PCM into stereo frames. Mono input is
// copied to both channels.
func int16Frames(pcm []int16, channels int) [][2]float64 {
	if channels < 1 {
		return nil
	}
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		left := float64(pcm[i*channels]) / (1 << 15)
		right := left
		if channels > 1 {
			right = float64(pcm[i*channels+1]) / (1 << 15)
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// pcmFrames turns little-endian 16 or 24-bit PCM bytes into stereo frames.
func pcmFrames(data []byte, channels, bits int) [][2]float64 {
	width := bits / 8
	if channels < 1 || (width != 2 && width != 3) {
		return nil
	}
	frame := width * channels
	frames := make([][2]float64, len(data)/frame)
	for i := range frames {
		at := i * frame
		left := pcmSample(data[at:], width)
		right := left
		if channels > 1 {
			right = pcmSample(data[at+width:], width)
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// pcmSample reads one signed little-endian sample scaled to [-1, 1).
func pcmSample(b []byte, width int) float64 {
	if width == 3 {
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		v = v << 8 >> 8
		return float64(v) / (1 << 23)
	}
	return float64(int16(uint16(b[0])|uint16(b[1])<<8)) / (1 << 15)
}
