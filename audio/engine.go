// Package audio is a thin lifecycle wrapper over the beep speaker:
// init, load, play, tick, shutdown. It is a collaborator of scene
// composition, not part of it; mixing lives inside beep.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const engineRate = beep.SampleRate(48000)

var (
	// ErrNotInitialized is returned when playing before Init
	ErrNotInitialized = errors.New("audio: engine not initialized")

	// ErrUnknownSound is returned when playing a name never loaded
	ErrUnknownSound = errors.New("audio: unknown sound")
)

// sound is one decoded, memory-resident clip
type sound struct {
	buffer *beep.Buffer
	loop   bool
}

// Engine owns the speaker lifecycle and a registry of loaded sounds.
// When no output device is available it degrades to silent mode:
// loading and playing succeed but produce nothing.
type Engine struct {
	mu          sync.Mutex
	root        string
	sounds      map[string]*sound
	initialized bool
	silent      bool
}

// NewEngine creates an audio engine resolving sound paths under root
func NewEngine(root string) *Engine {
	return &Engine{
		root:   root,
		sounds: make(map[string]*sound),
	}
}

// Init opens the output device. A missing or failing device switches
// the engine to silent mode rather than failing the caller; audio is
// never worth aborting a scene build over.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(engineRate, engineRate.N(time.Millisecond*100)); err != nil {
		e.silent = true
	}
	e.initialized = true
	return nil
}

// LoadSound decodes a WAV file into memory and registers it under its
// path. The loop flag makes later playback repeat until shutdown. The
// stream flag is accepted for interface parity and ignored: clips this
// layer plays are short enough to keep resident.
func (e *Engine) LoadSound(path string, loop, _ bool) error {
	f, err := os.Open(filepath.Join(e.root, path))
	if err != nil {
		return fmt.Errorf("audio: load %q: %w", path, err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("audio: decode %q: %w", path, err)
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	streamer.Close()

	e.mu.Lock()
	e.sounds[path] = &sound{buffer: buffer, loop: loop}
	e.mu.Unlock()
	return nil
}

// Play starts a loaded sound by name
func (e *Engine) Play(name string) error {
	e.mu.Lock()
	snd, ok := e.sounds[name]
	initialized, silent := e.initialized, e.silent
	e.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
	if !initialized {
		return ErrNotInitialized
	}
	if silent {
		return nil
	}

	streamer := beep.Streamer(snd.buffer.Streamer(0, snd.buffer.Len()))
	if snd.loop {
		streamer = beep.Loop(-1, snd.buffer.Streamer(0, snd.buffer.Len()))
	}
	format := snd.buffer.Format()
	if format.SampleRate != engineRate {
		streamer = beep.Resample(4, format.SampleRate, engineRate, streamer)
	}
	speaker.Play(streamer)
	return nil
}

// Update is the engine's per-frame hook. beep mixes on its own
// goroutine, so there is nothing to pump; the hook exists so the
// layer's lifecycle matches the other per-frame collaborators.
func (e *Engine) Update() {}

// Shutdown stops playback and drops the device
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if !e.silent {
		speaker.Clear()
	}
	e.initialized = false
}

// Silent reports whether the engine degraded to silent mode
func (e *Engine) Silent() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.silent
}
