package media

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/iburimskiy/drift/internal/config"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const levelWindow = 2048

// ErrUnsupported is returned for files with an unknown extension.
var ErrUnsupported = errors.New("media: unsupported file type")

// Player plays randomly chosen background tracks one after another and
// exposes a smoothed loudness level for the visuals.
type Player struct {
	sources []string
	rng     *rand.Rand

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *Tap
	current     string

	initDone bool
	paused   bool
	level    float64

	// Set from the speaker goroutine when a track runs out.
	mu    sync.Mutex
	ended bool
}

// NewPlayer creates a player picking from sources. A nil rng uses the global
// random source.
func NewPlayer(sources []string, rng *rand.Rand) *Player {
	return &Player{
		sources: sources,
		rng:     rng,
	}
}

// PlayRandom starts a random source from the configured list.
func (p *Player) PlayRandom() error {
	src, err := PickSource(p.rng, p.sources)
	if err != nil {
		return err
	}
	return p.Play(src)
}

// Play stops the current track and starts path.
func (p *Player) Play(path string) error {
	f, streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}

	t := NewTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		p.initDone = true
	} else if p.format.SampleRate != format.SampleRate {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to re-init speaker: %w", err)
		}
	} else {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.closeCurrent()

	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.current = path
	p.paused = false
	p.mu.Lock()
	p.ended = false
	p.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.mu.Lock()
		p.ended = true
		p.mu.Unlock()
	})))

	log.Printf("[MediaPlayer] Playing %s", path)
	return nil
}

// Update refreshes the loudness level and moves on to another random track
// once the current one has ended. It must be called from the game loop.
func (p *Player) Update() error {
	if p.tap != nil && !p.paused {
		rms := RMS(p.tap.Snapshot(levelWindow))
		p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*math.Pow(rms, 0.3)
	}

	p.mu.Lock()
	ended := p.ended
	p.ended = false
	p.mu.Unlock()
	if !ended {
		return nil
	}

	p.closeCurrent()
	p.level = 0
	if len(p.sources) == 0 {
		return nil
	}
	return p.PlayRandom()
}

// Level returns the smoothed loudness in [0, 1].
func (p *Player) Level() float64 { return p.level }

// Current returns the path of the playing track, or "".
func (p *Player) Current() string { return p.current }

// Paused reports whether playback is paused.
func (p *Player) Paused() bool { return p.paused }

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Position returns the elapsed and total time of the current track.
func (p *Player) Position() (elapsed, total time.Duration) {
	if p.streamer == nil {
		return 0, 0
	}
	speaker.Lock()
	pos, length := p.streamer.Position(), p.streamer.Len()
	speaker.Unlock()
	return p.format.SampleRate.D(pos), p.format.SampleRate.D(length)
}

// Close stops playback and releases the current file.
func (p *Player) Close() {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	p.closeCurrent()
}

func (p *Player) closeCurrent() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.current = ""
}

func decodeFile(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("failed to open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return f, streamer, format, nil
}
