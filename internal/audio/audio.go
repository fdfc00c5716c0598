package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/window"
)

const (
	SampleRate = 44100
	BufferSize = 512

	// NoteLength is how long a single tone rings.
	NoteLength = 100 * time.Millisecond
	// MaxVoices caps simultaneous tones; the oldest is dropped first.
	MaxVoices = 16
	// releaseLen is the tail of each note tapered by a half Hann window.
	releaseLen = 64
)

// Stream is the part of a portaudio stream the synth drives.
type Stream interface {
	Start() error
	Stop() error
	Close() error
}

// Opener opens an output stream that calls process for every buffer.
type Opener func(process func(in []float32, out [][]float32)) (Stream, error)

type Options struct {
	// Volume is the starting gain of each note; it decays to a tenth of that.
	Volume float64
	// Muted starts the synth muted; the stream stays closed until a note
	// is played unmuted.
	Muted bool
	Open  Opener
	Log   *slog.Logger
}

type voice struct {
	freq  float64
	phase float64
	age   int
}

// Synth plays short sine blips. The output stream opens on the first Play;
// if that fails the synth logs once and stays silent. Play never blocks on
// the audio device.
type Synth struct {
	volume float64
	open   Opener
	log    *slog.Logger

	mu      sync.Mutex
	voices  []voice
	stream  Stream
	opening bool
	failed  bool
	closed  bool
	muted   bool
	release []float64
	length  int
	filter  [2]float64
}

func New(opts Options) *Synth {
	if opts.Open == nil {
		opts.Open = openDefault
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.Volume <= 0 {
		opts.Volume = 0.1
	}

	// Second half of a Hann window falls from 1 to 0.
	hann := window.Hann(2 * releaseLen)
	return &Synth{
		volume:  opts.Volume,
		muted:   opts.Muted,
		open:    opts.Open,
		log:     opts.Log,
		release: hann[releaseLen:],
		length:  int(NoteLength.Seconds() * SampleRate),
	}
}

// Play starts a note at freq Hz.
func (s *Synth) Play(freq float64) {
	if freq <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.failed || s.muted {
		return
	}
	if s.stream == nil {
		// Another caller is opening the device; drop this note.
		if s.opening {
			return
		}
		// The device callback takes mu, so the stream is started unlocked.
		s.opening = true
		s.mu.Unlock()
		stream, err := s.start()
		s.mu.Lock()
		s.opening = false
		if err != nil {
			s.failed = true
			s.log.Warn("audio unavailable, continuing silently", "err", err)
			return
		}
		if s.closed {
			go closeStream(stream)
			return
		}
		s.stream = stream
		s.log.Debug("audio stream started", "sample_rate", SampleRate, "buffer", BufferSize)
	}
	if len(s.voices) >= MaxVoices {
		s.voices = s.voices[1:]
	}
	s.voices = append(s.voices, voice{freq: freq})
}

func (s *Synth) start() (Stream, error) {
	stream, err := s.open(s.Process)
	if err != nil {
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, err
	}
	return stream, nil
}

// SetMuted silences new notes; ringing ones fade out on their own.
func (s *Synth) SetMuted(muted bool) {
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Active reports whether the output stream is open.
func (s *Synth) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream != nil
}

// Voices returns the number of notes still ringing.
func (s *Synth) Voices() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

// Close stops the stream. Further Play calls are ignored.
func (s *Synth) Close() error {
	s.mu.Lock()
	stream := s.stream
	s.stream = nil
	s.closed = true
	s.voices = nil
	s.mu.Unlock()

	if stream == nil {
		return nil
	}
	return closeStream(stream)
}

func closeStream(stream Stream) error {
	if err := stream.Stop(); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

// envelope is the gain of a note age samples in: an exponential fall from
// volume to volume/10 over the note length, with a tapered release.
func (s *Synth) envelope(age int) float64 {
	if age >= s.length {
		return 0
	}
	g := s.volume * math.Pow(0.1, float64(age)/float64(s.length))
	if tail := s.length - age; tail <= len(s.release) {
		g *= s.release[len(s.release)-tail]
	}
	return g
}

// Process renders the voice mix into out. It is the portaudio callback and
// also usable offline.
func (s *Synth) Process(_ []float32, out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dt := 1.0 / SampleRate
	n := len(out[0])
	for i := 0; i < n; i++ {
		sample := 0.0
		for v := range s.voices {
			vc := &s.voices[v]
			sample += math.Sin(2*math.Pi*vc.phase) * s.envelope(vc.age)
			vc.phase += vc.freq * dt
			vc.phase -= math.Floor(vc.phase)
			vc.age++
		}
		// A light one-pole low pass rounds off the edges where voices overlap.
		var l, r float64
		l, s.filter[0] = lpf(sample, 8000, dt, s.filter[0])
		r, s.filter[1] = lpf(sample, 8000, dt, s.filter[1])
		for ch := range out {
			if ch%2 == 0 {
				out[ch][i] = float32(l)
			} else {
				out[ch][i] = float32(r)
			}
		}
	}

	live := s.voices[:0]
	for _, vc := range s.voices {
		if vc.age < s.length {
			live = append(live, vc)
		}
	}
	s.voices = live
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

type paStream struct {
	*portaudio.Stream
}

func (p paStream) Close() error {
	err := p.Stream.Close()
	portaudio.Terminate()
	return err
}

func openDefault(process func(in []float32, out [][]float32)) (Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	return paStream{stream}, nil
}
