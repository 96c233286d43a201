package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton. oto allows one context per process.
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player plays the finish chime a fixed number of times and can be stopped early
type Player struct {
	stopChan chan struct{}
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
}

func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayChime plays the chime repeats times in the background.
// It returns nil when no audio device is available.
func PlayChime(repeats int) *Player {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready, skipping chime")
		return nil
	}
	if repeats < 1 {
		repeats = 1
	}

	p := &Player{
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.playLoop(Chime(), repeats)
	return p
}

func (p *Player) playLoop(pcm []byte, repeats int) {
	defer close(p.done)

	for i := 0; i < repeats; i++ {
		player := globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
		player.Play()

		for player.IsPlaying() {
			select {
			case <-p.stopChan:
				player.Pause()
				player.Close()
				return
			case <-time.After(10 * time.Millisecond):
			}
		}

		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}

		select {
		case <-p.stopChan:
			return
		case <-time.After(chimeGap):
		}
	}
}

// Stop interrupts playback. Safe on a nil Player and safe to call twice.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)
		log.Println("Chime stopped")
	}
}

// Done is closed once playback has ended
func (p *Player) Done() <-chan struct{} {
	return p.done
}
